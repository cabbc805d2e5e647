package domain

import (
	"strings"
)

// AssetClass is the coarse security categorization after label cleanup.
type AssetClass string

const (
	AssetClassEquity       AssetClass = "equity"
	AssetClassCommodities  AssetClass = "commodities"
	AssetClassFixedIncome  AssetClass = "fixed_income"
	AssetClassAlternatives AssetClass = "alternatives"
)

// MajorAssetClasses returns the canonical classes in presentation order.
// The correlation cross-table uses this ordering for both axes.
func MajorAssetClasses() []AssetClass {
	return []AssetClass{
		AssetClassEquity,
		AssetClassCommodities,
		AssetClassFixedIncome,
		AssetClassAlternatives,
	}
}

// the security master carries hand-entered class labels. known
// misspellings and variants collapse to the canonical classes here;
// anything unrecognized passes through untouched.
var assetClassRemap = map[string]AssetClass{
	"equity":                  AssetClassEquity,
	"equty":                   AssetClassEquity,
	"eqty":                    AssetClassEquity,
	"equities":                AssetClassEquity,
	"fixed_income":            AssetClassFixedIncome,
	"fixed income":            AssetClassFixedIncome,
	"fixed income corporate":  AssetClassFixedIncome,
	"fixed income government": AssetClassFixedIncome,
	"fixed_income corporate":  AssetClassFixedIncome,
	"commodities":             AssetClassCommodities,
	"alternatives":            AssetClassAlternatives,
}

func NormalizeAssetClass(raw string) AssetClass {
	key := strings.ToLower(strings.TrimSpace(raw))
	if normalized, ok := assetClassRemap[key]; ok {
		return normalized
	}
	return AssetClass(raw)
}

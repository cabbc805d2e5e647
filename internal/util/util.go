package util

import (
	"encoding/json"
	"fmt"
)

func FloatPtr(f float64) *float64 {
	return &f
}

func Pprint(v interface{}) {
	bytes, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(bytes))
}

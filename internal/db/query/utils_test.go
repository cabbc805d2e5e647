package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetTx(t *testing.T) {
	t.Run("returns the tx carried by the context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), "tx", (*sql.Tx)(nil))

		_, err := GetTx(ctx)
		require.NoError(t, err)
	})

	t.Run("no tx associated with request", func(t *testing.T) {
		_, err := GetTx(context.Background())
		require.Error(t, err)
	})

	t.Run("context value is not a transaction", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), "tx", "definitely not a tx")

		_, err := GetTx(ctx)
		require.Error(t, err)
	})
}

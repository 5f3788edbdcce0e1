// Package repokit holds the shared repository surface: querier aliases,
// binders and transaction helpers
package repokit

import (
	"context"

	"mathgate/internal/platform/store"
)

// Queryer is the read/write surface repos bind against
type Queryer = store.RowQuerier

// RowQuerier mirrors Queryer for callers that prefer the store name
type RowQuerier = store.RowQuerier

// TxRunner runs a function inside one transaction
type TxRunner = store.TxRunner

type (
	// Rows is a query result set
	Rows = store.Rows

	// Row is a single row result
	Row = store.Row

	// CommandTag reports the outcome of a write
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}

// PG passes a RowQuerier through without importing a driver
func PG(_ context.Context, q store.RowQuerier) store.RowQuerier { return q }

// TX passes a TxRunner through without importing a driver
func TX(_ context.Context, tx store.TxRunner) store.TxRunner { return tx }

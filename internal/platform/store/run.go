package store

import "context"

// RunInSession stamps the session id on ctx and runs fn inside tx,
// so the session reaches any begin hooks
func RunInSession(
	ctx context.Context,
	tx TxRunner,
	sessionID string,
	fn func(ctx context.Context, q RowQuerier) error,
) error {
	ctx = WithSession(ctx, sessionID)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}

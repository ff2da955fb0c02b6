package domain

import "context"

// TxManager runs fn inside a single storage transaction. Repository calls
// made with the ctx passed to fn join that transaction; either all writes
// commit or none do.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("not found")

// Repos groups the repositories bound to one transaction
type Repos struct {
	Users    UserRepository
	Feedback FeedbackRepository
}

// TxOptions tunes a unit of work
type TxOptions struct {
	// ReadOnly runs the work as a read-only snapshot.
	ReadOnly bool
}

// Store hands out transaction-scoped repositories.
// WithTx commits when fn returns nil and rolls back on error or panic.
type Store interface {
	WithTx(ctx context.Context, opts TxOptions, fn func(r Repos) error) error
}

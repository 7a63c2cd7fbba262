package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command. Stock mutations,
// order writes and history rows either all commit or none do.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	// MenuRepository is bound to the transaction started by Begin.
	MenuRepository() MenuRepository

	// OrderRepository is bound to the transaction started by Begin.
	OrderRepository() OrderRepository
}

// Package commands contains the operations that change orders and menu stock.
// Every handler validates its command, runs inside one unit of work and only
// then triggers notifications and event publication.
package commands

import (
	"context"

	"catering/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// OrderUoW is enough for commands that never touch menu stock.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans orders and menus, for commands that reserve or release stock.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   m, err := uow.MenuRepository().GetForUpdate(ctx, menuID)
	//   // ... reserve a unit, add the order
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		MenuRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

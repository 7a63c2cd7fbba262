package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"
)

// MenuRepository exposes the menu fields order placement reads and the stock it mutates.
type MenuRepository interface {
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Update persists the stock of a menu. A reservation that would drive stock
	// below zero is rejected with menu.ErrOutOfStock.
	Update(ctx context.Context, aggregate *menu.Menu) error

	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// GetForUpdate loads a menu and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*menu.Menu, error)
}

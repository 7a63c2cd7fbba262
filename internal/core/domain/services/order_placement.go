package services

import (
	"time"

	"catering/internal/core/domain/model/menu"
	"catering/internal/core/domain/model/order"
)

// OrderPlacement runs the menu-side preconditions of placing or revising an
// order and prices it. Checks run in a fixed order and the first failure wins,
// so the caller always learns the most fundamental reason a request was refused.
type OrderPlacement struct {
	pricing PricingEngine
}

func NewOrderPlacement(pricing PricingEngine) OrderPlacement {
	return OrderPlacement{pricing: pricing}
}

// CheckPlacement validates a new order against m, in this order:
// menu active, event date after today, headcount at least the minimum, stock left.
func (p OrderPlacement) CheckPlacement(m *menu.Menu, details order.Details, now time.Time) (order.Quote, error) {
	if err := m.Validate(); err != nil {
		return order.Quote{}, err
	}
	if !m.IsActive() {
		return order.Quote{}, menu.ErrMenuInactive
	}
	if err := details.CheckScheduledAfter(now); err != nil {
		return order.Quote{}, err
	}
	if err := m.CheckHeadcount(details.Headcount()); err != nil {
		return order.Quote{}, err
	}
	if m.Stock() <= 0 {
		return order.Quote{}, menu.ErrOutOfStock
	}

	return p.pricing.Quote(m.BasePrice(), details.Headcount(), details.DistanceKm(), m.MinHeadcount())
}

// CheckRevision validates revised details of an existing order and re-prices them
// at the current menu price. Activity and stock are not re-checked: the unit was
// reserved when the order was placed.
func (p OrderPlacement) CheckRevision(m *menu.Menu, details order.Details, now time.Time) (order.Quote, error) {
	if err := m.Validate(); err != nil {
		return order.Quote{}, err
	}
	if err := details.CheckScheduledAfter(now); err != nil {
		return order.Quote{}, err
	}
	if err := m.CheckHeadcount(details.Headcount()); err != nil {
		return order.Quote{}, err
	}

	return p.pricing.Quote(m.BasePrice(), details.Headcount(), details.DistanceKm(), m.MinHeadcount())
}

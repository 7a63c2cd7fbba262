// Package queries contains read-only operations over orders. Handlers query the
// tables with raw SQL through GORM and never load aggregates.
package queries

import (
	"database/sql"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSummary is the read model of one order row, joined with its menu title.
type OrderSummary struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	CustomerName    string
	MenuID          kernel.UUID
	MenuTitle       string
	Address         string
	City            string
	EventDate       time.Time
	EventTime       string
	DistanceKm      decimal.Decimal
	Headcount       int
	LoanedEquipment bool
	DeliveryFee     kernel.Money
	MenuPrice       kernel.Money
	Discount        kernel.Money
	TotalPrice      kernel.Money
	Status          order.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const orderSummarySelect = `
	SELECT
		o.id,
		o.customer_id,
		o.customer_name,
		o.menu_id,
		COALESCE(m.title, ''),
		o.event_address,
		o.event_city,
		o.event_date,
		o.event_time,
		o.delivery_km,
		o.headcount,
		o.loaned_equipment,
		o.delivery_fee,
		o.menu_price,
		o.discount,
		o.total_price,
		o.status,
		o.created_at,
		o.updated_at
	FROM orders o
	LEFT JOIN menus m ON m.id = o.menu_id`

func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		summary, err := scanOrderSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func scanOrderSummary(rows *sql.Rows) (OrderSummary, error) {
	var (
		s                                    OrderSummary
		id, customerID, menuID               uuid.UUID
		fee, menuPrice, discount, totalPrice decimal.Decimal
		status                               string
	)

	err := rows.Scan(
		&id,
		&customerID,
		&s.CustomerName,
		&menuID,
		&s.MenuTitle,
		&s.Address,
		&s.City,
		&s.EventDate,
		&s.EventTime,
		&s.DistanceKm,
		&s.Headcount,
		&s.LoanedEquipment,
		&fee,
		&menuPrice,
		&discount,
		&totalPrice,
		&status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return OrderSummary{}, err
	}

	if s.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderSummary{}, err
	}
	if s.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderSummary{}, err
	}
	if s.MenuID, err = kernel.UUIDFromBytes(menuID[:]); err != nil {
		return OrderSummary{}, err
	}
	if s.Status, err = order.ParseStatus(status); err != nil {
		return OrderSummary{}, err
	}

	if s.DeliveryFee, err = kernel.NewMoney(fee); err != nil {
		return OrderSummary{}, err
	}
	if s.MenuPrice, err = kernel.NewMoney(menuPrice); err != nil {
		return OrderSummary{}, err
	}
	if s.Discount, err = kernel.NewMoney(discount); err != nil {
		return OrderSummary{}, err
	}
	if s.TotalPrice, err = kernel.NewMoney(totalPrice); err != nil {
		return OrderSummary{}, err
	}

	return s, nil
}

// Package orderrepo maps the order aggregate onto the orders, order_status_history
// and order_cancellations tables.
package orderrepo

import (
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Prices are stored as numeric(10,2)
// snapshots and never recomputed on read.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName    string          `gorm:"type:varchar(255);not null;default:''"`
	MenuID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	EventAddress    string          `gorm:"type:varchar(255);not null"`
	EventCity       string          `gorm:"type:varchar(120);not null"`
	EventDate       time.Time       `gorm:"type:date;not null"`
	EventTime       string          `gorm:"type:varchar(5);not null"`
	DeliveryKm      decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	DeliveryFee     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Headcount       int             `gorm:"not null"`
	MenuPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Discount        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	LoanedEquipment bool            `gorm:"not null;default:false"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// StatusHistoryDTO is an append-only ledger row. ActorID is NULL for system changes.
type StatusHistoryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_history_order_recorded,priority:1"`
	Status     string     `gorm:"type:varchar(20);not null"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	Note       string     `gorm:"type:text;not null;default:''"`
	RecordedAt time.Time  `gorm:"not null;index:idx_history_order_recorded,priority:2"`
}

func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// CancellationDTO holds the single cancellation record of an order.
type CancellationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ActorID     uuid.UUID `gorm:"type:uuid;not null"`
	ContactMode string    `gorm:"type:varchar(10);not null"`
	Reason      string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (CancellationDTO) TableName() string {
	return "order_cancellations"
}

func fromDomain(o *order.Order) OrderDTO {
	details, quote := o.Details(), o.Quote()

	return OrderDTO{
		ID:              o.ID().Bytes(),
		CustomerID:      o.CustomerID().Bytes(),
		CustomerName:    o.CustomerName(),
		MenuID:          o.MenuID().Bytes(),
		EventAddress:    details.Address().Line(),
		EventCity:       details.Address().City(),
		EventDate:       details.EventDate(),
		EventTime:       details.EventTime(),
		DeliveryKm:      details.DistanceKm(),
		DeliveryFee:     quote.DeliveryFee().Amount(),
		Headcount:       details.Headcount(),
		MenuPrice:       quote.MenuPrice().Amount(),
		Discount:        quote.Discount().Amount(),
		TotalPrice:      quote.Total().Amount(),
		Status:          o.Status().String(),
		LoanedEquipment: details.LoanedEquipment(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func historyFromDomain(entries []order.StatusHistoryEntry) []StatusHistoryDTO {
	dtos := make([]StatusHistoryDTO, 0, len(entries))
	for _, e := range entries {
		var actorID *uuid.UUID
		if id := e.ActorID(); id != nil {
			raw := id.Bytes()
			actorID = &raw
		}

		dtos = append(dtos, StatusHistoryDTO{
			ID:         e.ID().Bytes(),
			OrderID:    e.OrderID().Bytes(),
			Status:     e.Status().String(),
			ActorID:    actorID,
			Note:       e.Note(),
			RecordedAt: e.RecordedAt(),
		})
	}
	return dtos
}

func cancellationFromDomain(c *order.Cancellation) CancellationDTO {
	return CancellationDTO{
		ID:          c.ID().Bytes(),
		OrderID:     c.OrderID().Bytes(),
		ActorID:     c.ActorID().Bytes(),
		ContactMode: c.ContactMode().String(),
		Reason:      c.Reason(),
		CreatedAt:   c.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.EventAddress, dto.EventCity)
	if err != nil {
		return nil, err
	}

	details, err := order.NewDetails(
		address,
		dto.EventDate,
		dto.EventTime,
		dto.DeliveryKm,
		dto.Headcount,
		dto.LoanedEquipment,
	)
	if err != nil {
		return nil, err
	}

	quote, err := quoteFromDTO(dto)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.CustomerName,
		menuID,
		details,
		quote,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func quoteFromDTO(dto OrderDTO) (order.Quote, error) {
	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return order.Quote{}, err
	}
	price, err := kernel.NewMoney(dto.MenuPrice)
	if err != nil {
		return order.Quote{}, err
	}
	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return order.Quote{}, err
	}
	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return order.Quote{}, err
	}

	return order.NewQuote(fee, price, discount, total), nil
}

package http

import (
	"time"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	MenuID          string  `json:"menu_id" validate:"required,uuid"`
	Address         string  `json:"address" validate:"required,max=255"`
	City            string  `json:"city" validate:"required,max=120"`
	EventDate       string  `json:"event_date" validate:"required,datetime=2006-01-02"`
	EventTime       string  `json:"event_time" validate:"required"`
	DistanceKm      float64 `json:"distance_km" validate:"gte=0"`
	Headcount       int     `json:"headcount" validate:"required,gt=0"`
	LoanedEquipment bool    `json:"loaned_equipment"`
}

func (r CreateOrderRequest) details() (order.Details, error) {
	addr, err := kernel.NewAddress(r.Address, r.City)
	if err != nil {
		return order.Details{}, err
	}
	eventDate, err := time.Parse(time.DateOnly, r.EventDate)
	if err != nil {
		return order.Details{}, errs.NewValueIsInvalidErrorWithCause("event date", err)
	}

	return order.NewDetails(
		addr,
		eventDate,
		r.EventTime,
		decimal.NewFromFloat(r.DistanceKm),
		r.Headcount,
		r.LoanedEquipment,
	)
}

// UpdateOrderRequest changes only the fields that are present.
type UpdateOrderRequest struct {
	Address         *string  `json:"address" validate:"omitempty,max=255"`
	City            *string  `json:"city" validate:"omitempty,max=120"`
	EventDate       *string  `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	EventTime       *string  `json:"event_time"`
	DistanceKm      *float64 `json:"distance_km" validate:"omitempty,gte=0"`
	Headcount       *int     `json:"headcount" validate:"omitempty,gt=0"`
	LoanedEquipment *bool    `json:"loaned_equipment"`
}

func (r UpdateOrderRequest) patch() (order.DetailsPatch, error) {
	p := order.DetailsPatch{
		AddressLine:     r.Address,
		City:            r.City,
		EventTime:       r.EventTime,
		Headcount:       r.Headcount,
		LoanedEquipment: r.LoanedEquipment,
	}

	if r.EventDate != nil {
		eventDate, err := time.Parse(time.DateOnly, *r.EventDate)
		if err != nil {
			return order.DetailsPatch{}, errs.NewValueIsInvalidErrorWithCause("event date", err)
		}
		p.EventDate = &eventDate
	}
	if r.DistanceKm != nil {
		km := decimal.NewFromFloat(*r.DistanceKm)
		p.DistanceKm = &km
	}

	return p, nil
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note" validate:"max=1000"`
}

// CancelOrderRequest is checked by the domain so that a terminal order is
// reported before a malformed contact mode.
type CancelOrderRequest struct {
	ContactMode string `json:"contact_mode"`
	Reason      string `json:"reason" validate:"max=1000"`
}

type OrderResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	MenuID          string    `json:"menu_id"`
	MenuTitle       string    `json:"menu_title"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	EventDate       string    `json:"event_date"`
	EventTime       string    `json:"event_time"`
	DistanceKm      string    `json:"distance_km"`
	Headcount       int       `json:"headcount"`
	LoanedEquipment bool      `json:"loaned_equipment"`
	DeliveryFee     string    `json:"delivery_fee"`
	MenuPrice       string    `json:"menu_price"`
	Discount        string    `json:"discount"`
	TotalPrice      string    `json:"total_price"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type HistoryEntryResponse struct {
	Status     string    `json:"status"`
	ActorID    *string   `json:"actor_id"`
	Note       string    `json:"note"`
	RecordedAt time.Time `json:"recorded_at"`
}

type CancellationResponse struct {
	ActorID     string    `json:"actor_id"`
	ContactMode string    `json:"contact_mode"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderDetailResponse struct {
	OrderResponse
	History      []HistoryEntryResponse `json:"history"`
	Cancellation *CancellationResponse  `json:"cancellation,omitempty"`
}

func orderResponse(s queries.OrderSummary) OrderResponse {
	return OrderResponse{
		ID:              s.ID.String(),
		CustomerID:      s.CustomerID.String(),
		CustomerName:    s.CustomerName,
		MenuID:          s.MenuID.String(),
		MenuTitle:       s.MenuTitle,
		Address:         s.Address,
		City:            s.City,
		EventDate:       s.EventDate.Format(time.DateOnly),
		EventTime:       s.EventTime,
		DistanceKm:      s.DistanceKm.String(),
		Headcount:       s.Headcount,
		LoanedEquipment: s.LoanedEquipment,
		DeliveryFee:     s.DeliveryFee.String(),
		MenuPrice:       s.MenuPrice.String(),
		Discount:        s.Discount.String(),
		TotalPrice:      s.TotalPrice.String(),
		Status:          s.Status.String(),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func orderListResponse(summaries []queries.OrderSummary) []OrderResponse {
	resp := make([]OrderResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = orderResponse(s)
	}
	return resp
}

func orderDetailResponse(d queries.OrderDetail) OrderDetailResponse {
	resp := OrderDetailResponse{
		OrderResponse: orderResponse(d.OrderSummary),
		History:       make([]HistoryEntryResponse, len(d.History)),
	}

	for i, h := range d.History {
		entry := HistoryEntryResponse{
			Status:     h.Status.String(),
			Note:       h.Note,
			RecordedAt: h.RecordedAt,
		}
		if h.ActorID != nil {
			id := h.ActorID.String()
			entry.ActorID = &id
		}
		resp.History[i] = entry
	}

	if c := d.Cancellation; c != nil {
		resp.Cancellation = &CancellationResponse{
			ActorID:     c.ActorID.String(),
			ContactMode: c.ContactMode.String(),
			Reason:      c.Reason,
			CreatedAt:   c.CreatedAt,
		}
	}

	return resp
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListMyOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListMyOrdersQueryHandler(db *gorm.DB) ListMyOrdersQueryHandler {
	return ListMyOrdersQueryHandler{db: db}
}

func (h ListMyOrdersQueryHandler) Handle(ctx context.Context, query ListMyOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSummarySelect+`
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC, o.id
	`, query.Actor().ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderSummaries(rows)
}

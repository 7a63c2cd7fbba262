package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for unknown ids and ForbiddenError when a
// customer asks for someone else's order.
func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID()

	rows, err := db.Raw(orderSummarySelect+`
		WHERE o.id = ?
	`, id.Bytes()).Rows()
	if err != nil {
		return OrderDetail{}, err
	}
	summaries, err := scanOrderSummaries(rows)
	if err != nil {
		return OrderDetail{}, err
	}
	if len(summaries) == 0 {
		return OrderDetail{}, errs.NewObjectNotFoundError("order", id.String())
	}

	detail := OrderDetail{OrderSummary: summaries[0]}
	actor := query.Actor()
	if !actor.IsStaff() && !detail.CustomerID.IsEqual(actor.ID()) {
		return OrderDetail{}, errs.NewForbiddenError("read order", "order belongs to another customer")
	}

	if detail.History, err = h.history(db, id); err != nil {
		return OrderDetail{}, err
	}
	if detail.Cancellation, err = h.cancellation(db, id); err != nil {
		return OrderDetail{}, err
	}

	return detail, nil
}

func (h GetOrderDetailQueryHandler) history(db *gorm.DB, id kernel.UUID) ([]HistoryEntry, error) {
	rows, err := db.Raw(`
		SELECT
			status,
			actor_id,
			note,
			recorded_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY recorded_at, id
	`, id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]HistoryEntry, 0)
	for rows.Next() {
		var (
			entry   HistoryEntry
			status  string
			actorID uuid.NullUUID
		)
		if err = rows.Scan(&status, &actorID, &entry.Note, &entry.RecordedAt); err != nil {
			return nil, err
		}

		if entry.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if actorID.Valid {
			aid, idErr := kernel.UUIDFromBytes(actorID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			entry.ActorID = &aid
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h GetOrderDetailQueryHandler) cancellation(db *gorm.DB, id kernel.UUID) (*CancellationSummary, error) {
	var row struct {
		ActorID     uuid.UUID
		ContactMode string
		Reason      string
		CreatedAt   time.Time
	}

	err := db.Raw(`
		SELECT
			actor_id,
			contact_mode,
			reason,
			created_at
		FROM order_cancellations
		WHERE order_id = ?
	`, id.Bytes()).Row().Scan(&row.ActorID, &row.ContactMode, &row.Reason, &row.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(row.ActorID[:])
	if err != nil {
		return nil, err
	}
	mode, err := order.ParseContactMode(row.ContactMode)
	if err != nil {
		return nil, err
	}

	return &CancellationSummary{
		ActorID:     actorID,
		ContactMode: mode,
		Reason:      row.Reason,
		CreatedAt:   row.CreatedAt,
	}, nil
}

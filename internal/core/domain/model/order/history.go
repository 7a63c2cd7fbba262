package order

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
)

// StatusHistoryEntry is one row of the append-only status ledger of an order.
// ActorID is nil for system-initiated changes.
type StatusHistoryEntry struct {
	id         kernel.UUID
	orderID    kernel.UUID
	status     Status
	actorID    *kernel.UUID
	note       string
	recordedAt time.Time
}

func newStatusHistoryEntry(orderID kernel.UUID, status Status, actorID *kernel.UUID, note string, at time.Time) StatusHistoryEntry {
	return StatusHistoryEntry{
		id:         kernel.NewUUID(),
		orderID:    orderID,
		status:     status,
		actorID:    actorID,
		note:       note,
		recordedAt: at.UTC(),
	}
}

// RestoreStatusHistoryEntry rebuilds an entry read back from storage.
func RestoreStatusHistoryEntry(
	id, orderID kernel.UUID,
	status Status,
	actorID *kernel.UUID,
	note string,
	recordedAt time.Time,
) (StatusHistoryEntry, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return StatusHistoryEntry{}, err
	}

	return StatusHistoryEntry{
		id:         id,
		orderID:    orderID,
		status:     status,
		actorID:    actorID,
		note:       note,
		recordedAt: recordedAt,
	}, nil
}

func (e StatusHistoryEntry) ID() kernel.UUID { return e.id }
func (e StatusHistoryEntry) OrderID() kernel.UUID { return e.orderID }
func (e StatusHistoryEntry) Status() Status { return e.status }
func (e StatusHistoryEntry) ActorID() *kernel.UUID { return e.actorID }
func (e StatusHistoryEntry) Note() string { return e.note }
func (e StatusHistoryEntry) RecordedAt() time.Time { return e.recordedAt }

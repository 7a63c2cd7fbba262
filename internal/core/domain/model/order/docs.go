// Package order implements the Order aggregate of the catering domain:
// its details and agreed price, the status state machine, the append-only
// status history and the cancellation record.
//
// Key business rules:
//   - the transition table is a pure function of (current status, requested status, loaned equipment)
//   - DELIVERED -> WAITING_RETURN requires loaned equipment
//   - only PLACED orders may be revised, and only by their owner
//   - any non-terminal order may be cancelled; the menu unit is refunded only before dispatch
//   - price fields are frozen except on revision
package order

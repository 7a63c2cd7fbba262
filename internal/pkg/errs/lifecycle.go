package errs

import (
	"errors"
	"fmt"
)

var (
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrIllegalTransition  = errors.New("illegal transition")
	ErrConflict           = errors.New("conflict")
	ErrForbidden          = errors.New("forbidden")
)

// PreconditionFailedError reports a business rule that rejected a request.
// Rule is a stable machine-readable code, Message is meant for humans.
type PreconditionFailedError struct {
	Rule    string
	Message string
	Cause   error
}

func NewPreconditionFailedError(rule, message string) *PreconditionFailedError {
	return &PreconditionFailedError{
		Rule:    rule,
		Message: message,
	}
}

func NewPreconditionFailedErrorWithCause(rule, message string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{
		Rule:    rule,
		Message: message,
		Cause:   cause,
	}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPreconditionFailed, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPreconditionFailed, e.Message)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// Is matches another PreconditionFailedError carrying the same rule.
func (e *PreconditionFailedError) Is(target error) bool {
	other, ok := target.(*PreconditionFailedError)
	return ok && other.Rule == e.Rule
}

// IllegalTransitionError reports a status change the state machine refuses.
type IllegalTransitionError struct {
	From   string
	To     string
	Reason string
}

func NewIllegalTransitionError(from, to fmt.Stringer) *IllegalTransitionError {
	return &IllegalTransitionError{
		From: from.String(),
		To:   to.String(),
	}
}

func NewIllegalTransitionErrorWithReason(from, to fmt.Stringer, reason string) *IllegalTransitionError {
	return &IllegalTransitionError{
		From:   from.String(),
		To:     to.String(),
		Reason: reason,
	}
}

func (e *IllegalTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: cannot transition from %s to %s (%s)", ErrIllegalTransition, e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("%s: cannot transition from %s to %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// ConflictError reports a write rejected by a storage-level uniqueness rule.
type ConflictError struct {
	Resource string
	Message  string
	Cause    error
}

func NewConflictError(resource, message string) *ConflictError {
	return &ConflictError{
		Resource: resource,
		Message:  message,
	}
}

func NewConflictErrorWithCause(resource, message string, cause error) *ConflictError {
	return &ConflictError{
		Resource: resource,
		Message:  message,
		Cause:    cause,
	}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConflict, e.Resource, e.Message)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// ForbiddenError reports an actor lacking the right to perform an action.
type ForbiddenError struct {
	Action string
	Reason string
}

func NewForbiddenError(action, reason string) *ForbiddenError {
	return &ForbiddenError{
		Action: action,
		Reason: reason,
	}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrForbidden, e.Action, e.Reason)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

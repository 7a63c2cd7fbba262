// Package errs defines the error kinds of the catering service.
//
// Validation errors (ValueIsRequiredError, ValueIsInvalidError,
// ValueIsOutOfRangeError) come from constructors and value objects.
// ObjectNotFoundError comes from repositories and queries. The lifecycle
// errors in lifecycle.go (PreconditionFailedError, IllegalTransitionError,
// ConflictError, ForbiddenError) come from the order and menu aggregates and
// the command handlers.
//
// Every type unwraps to a sentinel, so callers test with errors.Is:
//
//	if errors.Is(err, errs.ErrObjectNotFound) { ... }
//
// or let KindOf classify the error, as the HTTP layer does to pick a status code.
package errs

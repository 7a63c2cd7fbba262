package kernel

import (
	"fmt"

	"catering/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies orders, menus, history entries and actors. It is an
// immutable value object; the zero value and the nil UUID are invalid.
//
// UUID wraps google/uuid so the domain never depends on the library type,
// except through Bytes at the persistence boundary.
type UUID struct {
	// id is the wrapped value; uuid.Nil means not constructed
	id uuid.UUID
}

// NewUUID returns a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced, urn or compact forms.
// Ids arriving from path parameters and token subjects go through here.
//
// Parameters:
//   - s: the textual id
//
// Returns:
//   - UUID: the parsed id; the nil UUID parses but fails Validate
//   - error: a ValueIsInvalidError wrapping the parse failure
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("invalid UUID format: %w", err))
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes rebuilds an identifier read back from a uuid column.
//
// Parameters:
//   - b: exactly 16 bytes
//
// Returns:
//   - UUID: the id if b has the right length and is not all zeros
//   - error: a format error, or ErrUUIDIsNotConstructed for the nil UUID
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google/uuid value, which is what GORM DTOs store.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

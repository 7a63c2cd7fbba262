package kernel

import (
	"errors"
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

// Role is the authorization level carried by an Actor.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleEmployee
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "CUSTOMER"
	case RoleEmployee:
		return "EMPLOYEE"
	case RoleAdmin:
		return "ADMIN"
	case RoleUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// ParseRole accepts the upper-case names used in tokens. USER is an alias of CUSTOMER.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CUSTOMER", "USER":
		return RoleCustomer, nil
	case "EMPLOYEE":
		return RoleEmployee, nil
	case "ADMIN":
		return RoleAdmin, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("actor must be created via NewActor constructor")

// Actor is the authenticated identity on whose behalf an operation runs.
type Actor struct { //nolint:recvcheck //using for validation
	id    UUID
	name  string
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id UUID, name string, role Role) (Actor, error) {
	a := Actor{guard: guard.NewConstructorGuard()}

	if err := errors.Join(a.setID(id), a.setRole(role)); err != nil {
		return Actor{}, err
	}
	a.name = strings.TrimSpace(name)

	return a, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() UUID {
	return a.id
}

// Name is the display name used as the customer name snapshot on orders.
func (a Actor) Name() string {
	return a.name
}

func (a Actor) Role() Role {
	return a.role
}

// IsStaff reports whether the actor works for the caterer.
func (a Actor) IsStaff() bool {
	return a.role == RoleEmployee || a.role == RoleAdmin
}

func (a *Actor) setID(id UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if role == RoleUnknown || role > RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", role))
	}
	a.role = role
	return nil
}

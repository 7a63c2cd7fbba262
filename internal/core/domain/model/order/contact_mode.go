package order

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// ErrInvalidContactMode matches any rejection of a contact mode.
var ErrInvalidContactMode = errs.NewPreconditionFailedError("invalid_contact_mode", "contact mode must be EMAIL or PHONE")

// ContactMode is how the customer was told about a cancellation.
type ContactMode int

const (
	ContactModeUnknown ContactMode = iota
	ContactModeEmail
	ContactModePhone
)

func ParseContactMode(s string) (ContactMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EMAIL":
		return ContactModeEmail, nil
	case "PHONE":
		return ContactModePhone, nil
	default:
		return ContactModeUnknown, errs.NewPreconditionFailedErrorWithCause(
			ErrInvalidContactMode.Rule,
			ErrInvalidContactMode.Message,
			fmt.Errorf("got %q", s),
		)
	}
}

func (m ContactMode) Validate() error {
	if m != ContactModeEmail && m != ContactModePhone {
		return ErrInvalidContactMode
	}
	return nil
}

func (m ContactMode) String() string {
	switch m {
	case ContactModeEmail:
		return "EMAIL"
	case ContactModePhone:
		return "PHONE"
	case ContactModeUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

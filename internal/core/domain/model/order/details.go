package order

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// EventTimeLayout is the wall-clock format of the event start time.
const EventTimeLayout = "15:04"

var (
	ErrDetailsIsNotConstructed = errors.New("Details must be created via NewDetails constructor")
	ErrEventDateNotFuture      = errs.NewPreconditionFailedError("event_date_not_future", "event date must be in the future")
)

// Details is what the customer asked for: where and when the event happens,
// how far it is, how many guests attend and whether equipment is lent.
type Details struct { //nolint:recvcheck //using for validation
	address         kernel.Address
	eventDate       time.Time
	eventTime       string
	distanceKm      decimal.Decimal
	headcount       int
	loanedEquipment bool

	guard guard.ConstructorGuard
}

// NewDetails validates every field. eventDate keeps only its calendar day.
func NewDetails(
	address kernel.Address,
	eventDate time.Time,
	eventTime string,
	distanceKm decimal.Decimal,
	headcount int,
	loanedEquipment bool,
) (Details, error) {
	d := Details{
		loanedEquipment: loanedEquipment,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setAddress(address),
		d.setEventDate(eventDate),
		d.setEventTime(eventTime),
		d.setDistanceKm(distanceKm),
		d.setHeadcount(headcount),
	); err != nil {
		return Details{}, err
	}

	return d, nil
}

// DetailsPatch carries the fields of an update; nil means unchanged.
type DetailsPatch struct {
	AddressLine     *string
	City            *string
	EventDate       *time.Time
	EventTime       *string
	DistanceKm      *decimal.Decimal
	Headcount       *int
	LoanedEquipment *bool
}

// Apply returns a new Details with the patch applied and re-validated.
func (d Details) Apply(p DetailsPatch) (Details, error) {
	line, city := d.address.Line(), d.address.City()
	if p.AddressLine != nil {
		line = *p.AddressLine
	}
	if p.City != nil {
		city = *p.City
	}
	address, err := kernel.NewAddress(line, city)
	if err != nil {
		return Details{}, err
	}

	eventDate, eventTime := d.eventDate, d.eventTime
	if p.EventDate != nil {
		eventDate = *p.EventDate
	}
	if p.EventTime != nil {
		eventTime = *p.EventTime
	}

	distance, headcount, loaned := d.distanceKm, d.headcount, d.loanedEquipment
	if p.DistanceKm != nil {
		distance = *p.DistanceKm
	}
	if p.Headcount != nil {
		headcount = *p.Headcount
	}
	if p.LoanedEquipment != nil {
		loaned = *p.LoanedEquipment
	}

	return NewDetails(address, eventDate, eventTime, distance, headcount, loaned)
}

func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsIsNotConstructed)
}

func (d Details) Address() kernel.Address {
	return d.address
}

// EventDate is the event day at midnight UTC.
func (d Details) EventDate() time.Time {
	return d.eventDate
}

func (d Details) EventTime() string {
	return d.eventTime
}

func (d Details) DistanceKm() decimal.Decimal {
	return d.distanceKm
}

func (d Details) Headcount() int {
	return d.headcount
}

func (d Details) LoanedEquipment() bool {
	return d.loanedEquipment
}

// CheckScheduledAfter rejects events that are not strictly after the calendar day of now.
func (d Details) CheckScheduledAfter(now time.Time) error {
	today := truncateToDay(now)
	if !d.eventDate.After(today) {
		return errs.NewPreconditionFailedErrorWithCause(
			ErrEventDateNotFuture.Rule,
			ErrEventDateNotFuture.Message,
			fmt.Errorf("%s is not after %s", d.eventDate.Format(time.DateOnly), today.Format(time.DateOnly)),
		)
	}
	return nil
}

func (d *Details) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.address = address
	return nil
}

func (d *Details) setEventDate(eventDate time.Time) error {
	if eventDate.IsZero() {
		return errs.NewValueIsRequiredError("event date")
	}
	d.eventDate = truncateToDay(eventDate)
	return nil
}

func (d *Details) setEventTime(eventTime string) error {
	if eventTime == "" {
		return errs.NewValueIsRequiredError("event time")
	}

	for _, layout := range []string{EventTimeLayout, time.TimeOnly} {
		if t, err := time.Parse(layout, eventTime); err == nil {
			d.eventTime = t.Format(EventTimeLayout)
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause("event time", fmt.Errorf("%q is not HH:MM", eventTime))
}

func (d *Details) setDistanceKm(distanceKm decimal.Decimal) error {
	if distanceKm.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("delivery distance", fmt.Errorf("%s is negative", distanceKm))
	}
	d.distanceKm = distanceKm
	return nil
}

func (d *Details) setHeadcount(headcount int) error {
	if headcount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("headcount", fmt.Errorf("%d is not greater than 0", headcount))
	}
	d.headcount = headcount
	return nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

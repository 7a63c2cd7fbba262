package menu

import (
	"errors"
	"fmt"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu or RestoreMenu constructor")

// Precondition rules raised by menus. They match any PreconditionFailedError with the same rule.
var (
	ErrMenuInactive = errs.NewPreconditionFailedError("menu_inactive", "menu is not active")
	ErrOutOfStock   = errs.NewPreconditionFailedError("out_of_stock", "menu is out of stock")
	ErrBelowMinimum = errs.NewPreconditionFailedError("headcount_below_minimum", "headcount is below the menu minimum")
)

// Menu is the aggregate root for an orderable menu.
//
// Invariants:
//   - minHeadcount is at least 1
//   - stock never goes below 0
//   - basePrice is a non-negative amount with two fraction digits
type Menu struct {
	// id is the unique identifier of the menu
	id kernel.UUID

	// title is the display name, trimmed and non-empty
	title string

	// active menus accept new orders
	active bool

	// basePrice is the price per guest
	basePrice kernel.Money

	// minHeadcount is the smallest headcount an order may have
	minHeadcount int

	// stock is the number of orders the kitchen can still accept
	stock int

	// isConstructed ensures the menu was created via NewMenu or RestoreMenu
	isConstructed bool
}

// NewMenu creates an active menu.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - title: display name, trimmed before validation
//   - basePrice: price per guest
//   - minHeadcount: at least 1
//   - stock: at least 0
//
// Returns:
//   - *Menu: the active menu if every argument is valid
//   - error: the joined validation errors otherwise
func NewMenu(id kernel.UUID, title string, basePrice kernel.Money, minHeadcount, stock int) (*Menu, error) {
	return RestoreMenu(id, title, true, basePrice, minHeadcount, stock)
}

// RestoreMenu rebuilds a menu read back from storage.
func RestoreMenu(
	id kernel.UUID,
	title string,
	active bool,
	basePrice kernel.Money,
	minHeadcount, stock int,
) (*Menu, error) {
	m := &Menu{
		active:        active,
		basePrice:     basePrice,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setTitle(title),
		m.setMinHeadcount(minHeadcount),
		m.setStock(stock),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

func (m *Menu) ID() kernel.UUID {
	return m.id
}

func (m *Menu) Title() string {
	return m.title
}

func (m *Menu) IsActive() bool {
	return m.active
}

func (m *Menu) BasePrice() kernel.Money {
	return m.basePrice
}

func (m *Menu) MinHeadcount() int {
	return m.minHeadcount
}

func (m *Menu) Stock() int {
	return m.stock
}

// CheckHeadcount rejects party sizes smaller than the menu minimum.
func (m *Menu) CheckHeadcount(headcount int) error {
	if headcount < m.minHeadcount {
		return errs.NewPreconditionFailedErrorWithCause(
			ErrBelowMinimum.Rule,
			ErrBelowMinimum.Message,
			fmt.Errorf("%d guests requested, minimum is %d", headcount, m.minHeadcount),
		)
	}
	return nil
}

// ReserveUnit takes one unit of stock for a new order.
func (m *Menu) ReserveUnit() error {
	if m.stock <= 0 {
		return ErrOutOfStock
	}
	m.stock--
	return nil
}

// ReleaseUnit gives back the unit reserved by a cancelled order.
func (m *Menu) ReleaseUnit() {
	m.stock++
}

// Deactivate withdraws the menu from sale; existing orders are unaffected.
func (m *Menu) Deactivate() {
	m.active = false
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	m.title = title
	return nil
}

func (m *Menu) setMinHeadcount(minHeadcount int) error {
	if minHeadcount < 1 {
		return errs.NewValueIsInvalidErrorWithCause("min headcount", fmt.Errorf("%d is not greater than 0", minHeadcount))
	}
	m.minHeadcount = minHeadcount
	return nil
}

func (m *Menu) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	m.stock = stock
	return nil
}

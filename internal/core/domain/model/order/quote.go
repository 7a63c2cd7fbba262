package order

import (
	"fmt"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Quote is the price agreed for an order. It is frozen on the order row
// and only recomputed by a revision while the order is still PLACED.
type Quote struct {
	deliveryFee kernel.Money
	menuPrice   kernel.Money
	discount    kernel.Money
	total       kernel.Money
}

func NewQuote(deliveryFee, menuPrice, discount, total kernel.Money) Quote {
	return Quote{
		deliveryFee: deliveryFee,
		menuPrice:   menuPrice,
		discount:    discount,
		total:       total,
	}
}

func (q Quote) DeliveryFee() kernel.Money {
	return q.deliveryFee
}

// MenuPrice is the per-person price snapshot.
func (q Quote) MenuPrice() kernel.Money {
	return q.menuPrice
}

func (q Quote) Discount() kernel.Money {
	return q.discount
}

func (q Quote) Total() kernel.Money {
	return q.total
}

// CheckConsistency verifies total == round2(menuPrice*headcount + deliveryFee - discount).
func (q Quote) CheckConsistency(headcount int) error {
	expected := kernel.Round2(
		q.menuPrice.Amount().Mul(decimal.NewFromInt(int64(headcount))).
			Add(q.deliveryFee.Amount()).
			Sub(q.discount.Amount()),
	)
	if !expected.Equal(q.total.Amount()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total price",
			fmt.Errorf("%s does not match computed %s", q.total, expected.StringFixed(kernel.MoneyScale)),
		)
	}
	return nil
}

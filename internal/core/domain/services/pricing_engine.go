package services

import (
	"errors"
	"fmt"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// BaseDeliveryFee is charged on every order regardless of distance.
	BaseDeliveryFee = decimal.RequireFromString("5.00")
	// PerKmRate is charged per kilometre of delivery distance.
	PerKmRate = decimal.RequireFromString("0.59")
	// VolumeDiscountRate applies once headcount reaches the menu minimum plus VolumeDiscountMargin.
	VolumeDiscountRate = decimal.RequireFromString("0.10")
)

const VolumeDiscountMargin = 5

// PricingEngine prices an order. It is stateless; every amount is rounded
// once with kernel.Round2, the discount before it is subtracted and the
// total at the very end.
//
// Example:
//
//	q, err := services.NewPricingEngine().Quote(kernel.MustMoney("50.00"), 15, decimal.NewFromInt(5), 10)
//	// q.DeliveryFee() = 7.95, q.Discount() = 75.00, q.Total() = 682.95
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// DeliveryFee returns round2(BaseDeliveryFee + distanceKm × PerKmRate).
func (PricingEngine) DeliveryFee(distanceKm decimal.Decimal) (kernel.Money, error) {
	if distanceKm.IsNegative() {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery distance",
			fmt.Errorf("%s is negative", distanceKm),
		)
	}
	return kernel.NewMoney(BaseDeliveryFee.Add(distanceKm.Mul(PerKmRate)))
}

// Discount returns 10% of menuPrice × headcount, rounded, when headcount is at
// least minHeadcount + 5, and zero otherwise.
func (PricingEngine) Discount(menuPrice kernel.Money, headcount, minHeadcount int) (kernel.Money, error) {
	if headcount < minHeadcount+VolumeDiscountMargin {
		return kernel.ZeroMoney(), nil
	}
	subtotal := menuPrice.Amount().Mul(decimal.NewFromInt(int64(headcount)))
	return kernel.NewMoney(subtotal.Mul(VolumeDiscountRate))
}

// Quote prices headcount guests of a menu at basePrice delivered distanceKm away.
func (e PricingEngine) Quote(
	basePrice kernel.Money,
	headcount int,
	distanceKm decimal.Decimal,
	minHeadcount int,
) (order.Quote, error) {
	if headcount <= 0 {
		return order.Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"headcount",
			fmt.Errorf("%d is not greater than 0", headcount),
		)
	}

	fee, feeErr := e.DeliveryFee(distanceKm)
	menuPrice, priceErr := kernel.NewMoney(basePrice.Amount())
	if err := errors.Join(feeErr, priceErr); err != nil {
		return order.Quote{}, err
	}

	discount, err := e.Discount(menuPrice, headcount, minHeadcount)
	if err != nil {
		return order.Quote{}, err
	}

	total, err := kernel.NewMoney(
		menuPrice.Amount().Mul(decimal.NewFromInt(int64(headcount))).
			Add(fee.Amount()).
			Sub(discount.Amount()),
	)
	if err != nil {
		return order.Quote{}, err
	}

	return order.NewQuote(fee, menuPrice, discount, total), nil
}

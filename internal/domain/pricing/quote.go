package pricing

import (
	"errors"
	"math"
)

var (
	ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")
	ErrNegativeRate      = errors.New("daily rate cannot be negative")
)

// Percent is a validated value in [0,100]. Callers construct it through
// NewPercent so the composer stays total over its inputs.
type Percent float64

func NewPercent(value float64) (Percent, error) {
	if value < 0 || value > 100 {
		return 0, ErrInvalidPercentage
	}
	return Percent(value), nil
}

func (p Percent) Fraction() float64 {
	return float64(p) / 100
}

func (p Percent) Value() float64 {
	return float64(p)
}

// Money is a whole-đồng amount; VND has no decimal subunits.
type Money int64

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return 0, ErrNegativeRate
	}
	return Money(amount), nil
}

func (m Money) VND() int64 {
	return int64(m)
}

type PricingInput struct {
	DailyRate                 Money
	SalePercent               Percent
	MembershipDiscountPercent Percent
}

// Breakdown is recomputed on every quote; nothing here is persisted.
type Breakdown struct {
	SalePrice     Money // effective per-day rate after sale and membership discount
	BaseTotal     Money
	Deposit       Money
	DayMultiplier float64
	ShiftLabel    string
}

// ComposePrice stacks the promotional sale first, then the membership
// discount, multiplies by the shift's day multiplier and derives the deposit.
// Each step rounds half-up to whole đồng.
func ComposePrice(in PricingInput, shift Shift, depositPercent Percent) Breakdown {
	priceAfterSale := roundVND(float64(in.DailyRate) * (1 - in.SalePercent.Fraction()))
	salePrice := roundVND(float64(priceAfterSale) * (1 - in.MembershipDiscountPercent.Fraction()))
	baseTotal := roundVND(float64(salePrice) * shift.DayMultiplier)
	deposit := roundVND(float64(baseTotal) * depositPercent.Fraction())

	return Breakdown{
		SalePrice:     Money(salePrice),
		BaseTotal:     Money(baseTotal),
		Deposit:       Money(deposit),
		DayMultiplier: shift.DayMultiplier,
		ShiftLabel:    shift.Label,
	}
}

func roundVND(v float64) int64 {
	return int64(math.Round(v))
}

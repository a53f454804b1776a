//go:build unit

package pricing_test

import (
	"testing"

	"ev-rental-pricing/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPercent(t *testing.T, v float64) pricing.Percent {
	t.Helper()
	p, err := pricing.NewPercent(v)
	require.NoError(t, err)
	return p
}

func TestNewPercent(t *testing.T) {
	cases := []struct {
		name  string
		value float64
		errIs error
	}{
		{name: "zero", value: 0},
		{name: "hundred", value: 100},
		{name: "middle", value: 33.5},
		{name: "negative", value: -1, errIs: pricing.ErrInvalidPercentage},
		{name: "above hundred", value: 100.01, errIs: pricing.ErrInvalidPercentage},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := pricing.NewPercent(c.value)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := pricing.NewMoney(-1)
		require.ErrorIs(t, err, pricing.ErrNegativeRate)
	})

	t.Run("accepts zero", func(t *testing.T) {
		m, err := pricing.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.VND())
	})
}

func TestComposePrice(t *testing.T) {
	cases := []struct {
		name          string
		dailyRate     int64
		salePercent   float64
		memberPercent float64
		deposit       float64
		start, end    string
		wantSalePrice int64
		wantBaseTotal int64
		wantDeposit   int64
		wantLabel     string
	}{
		{
			name:      "morning shift at list price",
			dailyRate: 1_000_000, deposit: 30,
			start: "2024-01-01T06:00", end: "2024-01-01T12:00",
			wantSalePrice: 1_000_000, wantBaseTotal: 400_000, wantDeposit: 120_000,
			wantLabel: "Ca sáng (06:00–12:00)",
		},
		{
			name:      "afternoon shift at list price",
			dailyRate: 1_000_000, deposit: 30,
			start: "2024-01-01T12:30", end: "2024-01-01T22:00",
			wantSalePrice: 1_000_000, wantBaseTotal: 600_000, wantDeposit: 180_000,
			wantLabel: "Ca chiều (12:30–22:00)",
		},
		{
			name:      "two day rental",
			dailyRate: 1_000_000, deposit: 30,
			start: "2024-01-01T08:00", end: "2024-01-03T08:00",
			wantSalePrice: 1_000_000, wantBaseTotal: 2_000_000, wantDeposit: 600_000,
			wantLabel: "2 ngày",
		},
		{
			name:      "sale then membership discount stack multiplicatively",
			dailyRate: 1_000_000, salePercent: 20, memberPercent: 10, deposit: 30,
			start: "2024-01-01T07:00", end: "2024-01-01T18:00",
			wantSalePrice: 720_000, wantBaseTotal: 720_000, wantDeposit: 216_000,
			wantLabel: "Trọn ngày",
		},
		{
			name:      "free car quotes to zero",
			dailyRate: 0, deposit: 30,
			start: "2024-01-01T06:00", end: "2024-01-01T12:00",
			wantSalePrice: 0, wantBaseTotal: 0, wantDeposit: 0,
			wantLabel: "Ca sáng (06:00–12:00)",
		},
		{
			name:      "odd amounts round half up per step",
			dailyRate: 333_333, salePercent: 10, deposit: 15,
			start: "2024-01-01T06:00", end: "2024-01-01T12:00",
			// 333333*0.9 = 300000 (after round 299999.7 -> 300000)
			wantSalePrice: 300_000, wantBaseTotal: 120_000, wantDeposit: 18_000,
			wantLabel: "Ca sáng (06:00–12:00)",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rate, err := pricing.NewMoney(c.dailyRate)
			require.NoError(t, err)

			in := pricing.PricingInput{
				DailyRate:                 rate,
				SalePercent:               mustPercent(t, c.salePercent),
				MembershipDiscountPercent: mustPercent(t, c.memberPercent),
			}
			shift := pricing.ClassifyShift(window(t, c.start, c.end))

			got := pricing.ComposePrice(in, shift, mustPercent(t, c.deposit))

			assert.Equal(t, c.wantSalePrice, got.SalePrice.VND())
			assert.Equal(t, c.wantBaseTotal, got.BaseTotal.VND())
			assert.Equal(t, c.wantDeposit, got.Deposit.VND())
			assert.Equal(t, c.wantLabel, got.ShiftLabel)
		})
	}

	t.Run("sale price never exceeds daily rate", func(t *testing.T) {
		rates := []int64{0, 1, 999, 450_000, 1_000_000, 5_000_001}
		percents := []float64{0, 1, 12.5, 50, 99, 100}
		shift := pricing.ClassifyShift(window(t, "2024-01-01T07:00", "2024-01-01T18:00"))

		for _, r := range rates {
			for _, sale := range percents {
				for _, member := range percents {
					rate, err := pricing.NewMoney(r)
					require.NoError(t, err)
					in := pricing.PricingInput{
						DailyRate:                 rate,
						SalePercent:               mustPercent(t, sale),
						MembershipDiscountPercent: mustPercent(t, member),
					}
					got := pricing.ComposePrice(in, shift, mustPercent(t, 30))

					assert.LessOrEqual(t, got.SalePrice.VND(), r)
					assert.LessOrEqual(t, got.Deposit.VND(), got.BaseTotal.VND())
				}
			}
		}
	})
}

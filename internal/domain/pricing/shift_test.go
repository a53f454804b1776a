//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"ev-rental-pricing/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(t *testing.T, start, end string) pricing.RentalWindow {
	t.Helper()
	w, err := pricing.ParseRentalWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestParseRentalWindow(t *testing.T) {
	t.Run("accepts minute precision", func(t *testing.T) {
		w, err := pricing.ParseRentalWindow("2024-01-01T06:00", "2024-01-01T12:00")
		require.NoError(t, err)
		assert.Equal(t, 6*time.Hour, w.Duration())
	})

	t.Run("accepts second precision", func(t *testing.T) {
		_, err := pricing.ParseRentalWindow("2024-01-01T06:00:00", "2024-01-01T12:00:00")
		require.NoError(t, err)
	})

	t.Run("rejects malformed timestamps", func(t *testing.T) {
		cases := []struct {
			name       string
			start, end string
		}{
			{name: "garbage start", start: "not-a-date", end: "2024-01-01T12:00"},
			{name: "garbage end", start: "2024-01-01T06:00", end: "12 o'clock"},
			{name: "date only", start: "2024-01-01", end: "2024-01-02"},
			{name: "empty", start: "", end: ""},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := pricing.ParseRentalWindow(c.start, c.end)
				require.ErrorIs(t, err, pricing.ErrInvalidTimestamp)
			})
		}
	})
}

func TestClassifyShift(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		tier       pricing.Tier
		multiplier float64
		days       int
		label      string
	}{
		{
			name:  "morning shift",
			start: "2024-01-01T06:00", end: "2024-01-01T12:00",
			tier: pricing.TierMorningHalfDay, multiplier: 0.4, days: 1,
			label: "Ca sáng (06:00–12:00)",
		},
		{
			name:  "morning shift inside the window",
			start: "2024-01-01T08:00", end: "2024-01-01T11:30",
			tier: pricing.TierMorningHalfDay, multiplier: 0.4, days: 1,
			label: "Ca sáng (06:00–12:00)",
		},
		{
			name:  "afternoon shift",
			start: "2024-01-01T12:30", end: "2024-01-01T22:00",
			tier: pricing.TierAfternoonHalfDay, multiplier: 0.6, days: 1,
			label: "Ca chiều (12:30–22:00)",
		},
		{
			name:  "morning into afternoon is a full day",
			start: "2024-01-01T07:00", end: "2024-01-01T18:00",
			tier: pricing.TierFullDay, multiplier: 1, days: 1,
			label: "Trọn ngày",
		},
		{
			name:  "zero-length window floors to one day",
			start: "2024-01-01T12:00", end: "2024-01-01T12:00",
			tier: pricing.TierMultiDay, multiplier: 1, days: 1,
			label: "1 ngày",
		},
		{
			name:  "start at 12:30 is afternoon",
			start: "2024-01-01T12:30", end: "2024-01-01T20:00",
			tier: pricing.TierAfternoonHalfDay, multiplier: 0.6, days: 1,
			label: "Ca chiều (12:30–22:00)",
		},
		{
			name:  "48h spanning dates",
			start: "2024-01-01T08:00", end: "2024-01-03T08:00",
			tier: pricing.TierMultiDay, multiplier: 2, days: 2,
			label: "2 ngày",
		},
		{
			name:  "49h rounds up to three days",
			start: "2024-01-01T08:00", end: "2024-01-03T09:00",
			tier: pricing.TierMultiDay, multiplier: 3, days: 3,
			label: "3 ngày",
		},
		{
			name:  "overnight short booking is one day",
			start: "2024-01-01T21:00", end: "2024-01-02T02:00",
			tier: pricing.TierMultiDay, multiplier: 1, days: 1,
			label: "1 ngày",
		},
		{
			name:  "same day but outside both shifts is one day",
			start: "2024-01-01T05:00", end: "2024-01-01T11:00",
			tier: pricing.TierMultiDay, multiplier: 1, days: 1,
			label: "1 ngày",
		},
		{
			name:  "same day running past shift close is one day",
			start: "2024-01-01T08:00", end: "2024-01-01T23:00",
			tier: pricing.TierMultiDay, multiplier: 1, days: 1,
			label: "1 ngày",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			shift := pricing.ClassifyShift(window(t, c.start, c.end))

			assert.Equal(t, c.tier, shift.Tier)
			assert.InDelta(t, c.multiplier, shift.DayMultiplier, 1e-9)
			assert.Equal(t, c.days, shift.Days)
			assert.Equal(t, c.label, shift.Label)
		})
	}

	t.Run("degenerate window floors to one day", func(t *testing.T) {
		w := pricing.NewRentalWindow(
			time.Date(2024, 1, 2, 10, 0, 0, 0, time.Local),
			time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local),
		)
		shift := pricing.ClassifyShift(w)

		assert.Equal(t, pricing.TierMultiDay, shift.Tier)
		assert.Equal(t, 1, shift.Days)
		assert.Equal(t, "1 ngày", shift.Label)
	})

	t.Run("idempotent", func(t *testing.T) {
		w := window(t, "2024-01-01T06:00", "2024-01-01T12:00")
		first := pricing.ClassifyShift(w)
		second := pricing.ClassifyShift(w)
		assert.Equal(t, first, second)
	})
}

package pricing

import (
	"fmt"
	"math"
	"time"
)

type Tier string

const (
	TierMorningHalfDay   Tier = "morning_half_day"
	TierAfternoonHalfDay Tier = "afternoon_half_day"
	TierFullDay          Tier = "full_day"
	TierMultiDay         Tier = "multi_day"
)

// Provider-wide shift windows, minutes from midnight. Both ends are closed:
// a booking starting exactly at 12:00 still counts as morning, 12:30 as
// afternoon.
const (
	morningStartMin   = 6 * 60
	morningEndMin     = 12 * 60
	afternoonStartMin = 12*60 + 30
	afternoonEndMin   = 22 * 60

	morningWeight   = 0.4
	afternoonWeight = 0.6
)

const (
	labelMorning   = "Ca sáng (06:00–12:00)"
	labelAfternoon = "Ca chiều (12:30–22:00)"
	labelFullDay   = "Trọn ngày"
)

// Shift is the pricing tier a rental window maps to. Days is the calendar
// day count used for distance allowances; half-day tiers still occupy one day.
type Shift struct {
	Tier          Tier
	DayMultiplier float64
	Days          int
	Label         string
}

// ClassifyShift maps a rental window onto the provider's pricing tiers.
// Pure and idempotent; a degenerate window (end <= start) floors to a
// one-day charge so a caller never gets a free rental.
func ClassifyShift(w RentalWindow) Shift {
	elapsedHours := w.Duration().Hours()
	if elapsedHours <= 0 {
		return multiDayShift(1)
	}

	if w.SameCalendarDate() {
		startMin := minutesOfDay(w.Start())
		endMin := minutesOfDay(w.End())

		inMorning := func(m int) bool { return m >= morningStartMin && m <= morningEndMin }
		inAfternoon := func(m int) bool { return m >= afternoonStartMin && m <= afternoonEndMin }

		switch {
		case inMorning(startMin) && inMorning(endMin):
			return Shift{
				Tier:          TierMorningHalfDay,
				DayMultiplier: morningWeight,
				Days:          1,
				Label:         labelMorning,
			}
		case inAfternoon(startMin) && inAfternoon(endMin):
			return Shift{
				Tier:          TierAfternoonHalfDay,
				DayMultiplier: afternoonWeight,
				Days:          1,
				Label:         labelAfternoon,
			}
		case inMorning(startMin) && inAfternoon(endMin):
			return Shift{
				Tier:          TierFullDay,
				DayMultiplier: 1,
				Days:          1,
				Label:         labelFullDay,
			}
		}
	}

	days := int(math.Ceil(elapsedHours / 24))
	if days < 1 {
		days = 1
	}
	return multiDayShift(days)
}

func multiDayShift(days int) Shift {
	return Shift{
		Tier:          TierMultiDay,
		DayMultiplier: float64(days),
		Days:          days,
		Label:         fmt.Sprintf("%d ngày", days),
	}
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

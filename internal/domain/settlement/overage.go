package settlement

import "math"

// Warning flags surfaced on the settlement paperwork. Missing readings never
// abort the computation; the value is taken as zero and the flag lets the UI
// warn the staff member.
type Warning string

const (
	WarnOdometerHandoverMissing Warning = "odometer_at_handover_missing"
	WarnOdometerReturnMissing   Warning = "odometer_at_return_missing"
	WarnBatteryHandoverMissing  Warning = "battery_at_handover_missing"
	WarnBatteryReturnMissing    Warning = "battery_at_return_missing"
	WarnNegativeDistanceClamped Warning = "negative_distance_clamped"
)

type OverageInput struct {
	OdometerAtHandover *float64 // km
	OdometerAtReturn   *float64 // km
	BatteryAtHandover  *float64 // percent
	BatteryAtReturn    *float64 // percent
	DailyKmAllowance   float64
	RentalDays         int
	RatePerExcessKm    int64 // đồng
}

type OverageBreakdown struct {
	DistanceTraveled  float64
	BatteryConsumed   float64
	PermittedDistance float64
	ExcessDistance    float64
	ExcessFee         int64
	Warnings          []Warning
}

// ComputeOverage derives the excess-distance fee for a completed rental.
// Battery consumption is informational only; no fee derives from it here.
func ComputeOverage(in OverageInput) OverageBreakdown {
	var warnings []Warning

	odoHandover, w := readingOrZero(in.OdometerAtHandover, WarnOdometerHandoverMissing)
	warnings = append(warnings, w...)
	odoReturn, w := readingOrZero(in.OdometerAtReturn, WarnOdometerReturnMissing)
	warnings = append(warnings, w...)
	batHandover, w := readingOrZero(in.BatteryAtHandover, WarnBatteryHandoverMissing)
	warnings = append(warnings, w...)
	batReturn, w := readingOrZero(in.BatteryAtReturn, WarnBatteryReturnMissing)
	warnings = append(warnings, w...)

	distance := odoReturn - odoHandover
	if distance < 0 {
		// A negative reading is a data-entry error, not a negative fee.
		distance = 0
		warnings = append(warnings, WarnNegativeDistanceClamped)
	}

	days := in.RentalDays
	if days < 1 {
		days = 1
	}
	permitted := in.DailyKmAllowance * float64(days)

	excess := distance - permitted
	if excess < 0 {
		excess = 0
	}

	return OverageBreakdown{
		DistanceTraveled:  distance,
		BatteryConsumed:   batHandover - batReturn,
		PermittedDistance: permitted,
		ExcessDistance:    excess,
		ExcessFee:         int64(math.Round(excess * float64(in.RatePerExcessKm))),
		Warnings:          warnings,
	}
}

func (b OverageBreakdown) HasWarnings() bool {
	return len(b.Warnings) > 0
}

func readingOrZero(v *float64, missing Warning) (float64, []Warning) {
	if v == nil {
		return 0, []Warning{missing}
	}
	return *v, nil
}

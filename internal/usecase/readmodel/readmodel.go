// Package readmodel holds the flat structures usecases return to handlers.
package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CarRM struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DailyRateVND int64     `json:"daily_rate_vnd"`
	SalePercent  float64   `json:"sale_percent"`
}

type RenterRM struct {
	ID                        uuid.UUID `json:"id"`
	FullName                  string    `json:"full_name"`
	MembershipDiscountPercent float64   `json:"membership_discount_percent"`
}

type RentalRM struct {
	ID                 uuid.UUID `json:"id"`
	CarID              uuid.UUID `json:"car_id"`
	RenterID           uuid.UUID `json:"renter_id"`
	StartAt            time.Time `json:"start_at"`
	EndAt              time.Time `json:"end_at"`
	DailyKmAllowance   float64   `json:"daily_km_allowance"`
	RatePerExcessKmVND int64     `json:"rate_per_excess_km_vnd"`
}

type InspectionRM struct {
	RentalID       uuid.UUID `json:"rental_id"`
	Phase          string    `json:"phase"` // handover | return
	OdometerKm     *float64  `json:"odometer_km,omitempty"`
	BatteryPercent *float64  `json:"battery_percent,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
}

type QuoteRM struct {
	CarID                     uuid.UUID `json:"car_id"`
	CarName                   string    `json:"car_name"`
	ShiftLabel                string    `json:"shift_label"`
	DayMultiplier             float64   `json:"day_multiplier"`
	DailyRateVND              int64     `json:"daily_rate_vnd"`
	SalePercent               float64   `json:"sale_percent"`
	MembershipDiscountPercent float64   `json:"membership_discount_percent"`
	DepositPercent            float64   `json:"deposit_percent"`
	SalePriceVND              int64     `json:"sale_price_vnd"`
	BaseTotalVND              int64     `json:"base_total_vnd"`
	DepositVND                int64     `json:"deposit_vnd"`
}

type SettlementRM struct {
	ID                     uuid.UUID `json:"id"`
	RentalID               uuid.UUID `json:"rental_id"`
	DistanceTraveledKm     float64   `json:"distance_traveled_km"`
	BatteryConsumedPercent float64   `json:"battery_consumed_percent"`
	PermittedDistanceKm    float64   `json:"permitted_distance_km"`
	ExcessDistanceKm       float64   `json:"excess_distance_km"`
	ExcessFeeVND           int64     `json:"excess_fee_vnd"`
	Warnings               []string  `json:"warnings,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

type SystemConfigRM struct {
	DepositPercent float64   `json:"deposit_percent"`
	LoadedAt       time.Time `json:"loaded_at"`
}

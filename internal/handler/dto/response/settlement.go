package response

import (
	"time"

	"ev-rental-pricing/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SettlementResponse struct {
	ID                     uuid.UUID `json:"id,omitempty"`
	RentalID               uuid.UUID `json:"rentalId"`
	DistanceTraveledKm     float64   `json:"distanceTraveledKm"`
	BatteryConsumedPercent float64   `json:"batteryConsumedPercent"`
	PermittedDistanceKm    float64   `json:"permittedDistanceKm"`
	ExcessDistanceKm       float64   `json:"excessDistanceKm"`
	ExcessFeeVND           int64     `json:"excessFeeVnd"`
	Warnings               []string  `json:"warnings,omitempty"`
	CreatedAt              time.Time `json:"createdAt,omitzero"`
}

func FromSettlementRM(rm *readmodel.SettlementRM) *SettlementResponse {
	var resp SettlementResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

package response

import (
	"time"

	"ev-rental-pricing/internal/usecase/readmodel"
)

type SystemConfigResponse struct {
	DepositPercent float64   `json:"depositPercent"`
	LoadedAt       time.Time `json:"loadedAt"`
}

func FromSystemConfigRM(rm *readmodel.SystemConfigRM) *SystemConfigResponse {
	return &SystemConfigResponse{
		DepositPercent: rm.DepositPercent,
		LoadedAt:       rm.LoadedAt,
	}
}

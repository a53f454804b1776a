package request

import (
	"ev-rental-pricing/internal/usecase"

	"github.com/google/uuid"
)

type CreateQuoteRequest struct {
	CarID uuid.UUID `json:"carId" binding:"required"`
	// Wall-clock local datetimes, e.g. "2024-01-01T06:00"; parsing and
	// validation happen in the pricing domain.
	StartTime string     `json:"startTime" binding:"required"`
	EndTime   string     `json:"endTime" binding:"required"`
	RenterID  *uuid.UUID `json:"renterId,omitempty"`
}

func (r CreateQuoteRequest) ToParams() usecase.QuoteParams {
	return usecase.QuoteParams{
		CarID:     r.CarID,
		RenterID:  r.RenterID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

package response

import (
	"ev-rental-pricing/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type QuoteResponse struct {
	CarID                     uuid.UUID `json:"carId"`
	CarName                   string    `json:"carName"`
	ShiftLabel                string    `json:"shiftLabel"`
	DayMultiplier             float64   `json:"dayMultiplier"`
	DailyRateVND              int64     `json:"dailyRateVnd"`
	SalePercent               float64   `json:"salePercent"`
	MembershipDiscountPercent float64   `json:"membershipDiscountPercent"`
	DepositPercent            float64   `json:"depositPercent"`
	SalePriceVND              int64     `json:"salePriceVnd"`
	BaseTotalVND              int64     `json:"baseTotalVnd"`
	DepositVND                int64     `json:"depositVnd"`
}

func FromQuoteRM(rm *readmodel.QuoteRM) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

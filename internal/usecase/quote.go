package usecase

import (
	"context"
	"errors"

	"ev-rental-pricing/internal/domain/pricing"
	"ev-rental-pricing/internal/infra"
	"ev-rental-pricing/internal/pkg/errs"
	"ev-rental-pricing/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound    = errors.New("car not found")
	ErrRenterNotFound = errors.New("renter not found")
	ErrInvalidWindow  = errors.New("invalid rental window")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type CarRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CarRM, error)
}

type RenterRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RenterRM, error)
}

type QuoteParams struct {
	CarID     uuid.UUID
	RenterID  *uuid.UUID
	StartTime string
	EndTime   string
}

type QuoteUseCase interface {
	Quote(ctx context.Context, params QuoteParams) (*readmodel.QuoteRM, error)
}

type quoteUseCaseImpl struct {
	carRepo    CarRepository
	renterRepo RenterRepository
	sysConfig  SystemConfigUseCase
}

func NewQuoteUseCase(
	carRepo CarRepository,
	renterRepo RenterRepository,
	sysConfig SystemConfigUseCase,
) QuoteUseCase {
	return &quoteUseCaseImpl{
		carRepo:    carRepo,
		renterRepo: renterRepo,
		sysConfig:  sysConfig,
	}
}

func (u *quoteUseCaseImpl) Quote(ctx context.Context, params QuoteParams) (*readmodel.QuoteRM, error) {
	window, err := pricing.ParseRentalWindow(params.StartTime, params.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}
	shift := pricing.ClassifyShift(window)

	car, err := u.findCar(ctx, params.CarID)
	if err != nil {
		return nil, err
	}

	memberPercent, err := u.membershipDiscount(ctx, params.RenterID)
	if err != nil {
		return nil, err
	}

	depositPercent, err := u.sysConfig.DepositPercent(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	dailyRate, err := pricing.NewMoney(car.DailyRateVND)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	salePercent, err := pricing.NewPercent(car.SalePercent)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	breakdown := pricing.ComposePrice(pricing.PricingInput{
		DailyRate:                 dailyRate,
		SalePercent:               salePercent,
		MembershipDiscountPercent: memberPercent,
	}, shift, depositPercent)

	return &readmodel.QuoteRM{
		CarID:                     car.ID,
		CarName:                   car.Name,
		ShiftLabel:                breakdown.ShiftLabel,
		DayMultiplier:             breakdown.DayMultiplier,
		DailyRateVND:              car.DailyRateVND,
		SalePercent:               car.SalePercent,
		MembershipDiscountPercent: memberPercent.Value(),
		DepositPercent:            depositPercent.Value(),
		SalePriceVND:              breakdown.SalePrice.VND(),
		BaseTotalVND:              breakdown.BaseTotal.VND(),
		DepositVND:                breakdown.Deposit.VND(),
	}, nil
}

func (u *quoteUseCaseImpl) findCar(ctx context.Context, id uuid.UUID) (*readmodel.CarRM, error) {
	car, err := u.carRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Wrap(err, "failed to find car")
	}
	return car, nil
}

func (u *quoteUseCaseImpl) membershipDiscount(ctx context.Context, renterID *uuid.UUID) (pricing.Percent, error) {
	if renterID == nil {
		return 0, nil
	}

	renter, err := u.renterRepo.FindByID(ctx, *renterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrRenterNotFound
		}
		return 0, errs.Wrap(err, "failed to find renter")
	}

	percent, err := pricing.NewPercent(renter.MembershipDiscountPercent)
	if err != nil {
		return 0, errs.Mark(err, ErrDomainValidationFailed)
	}
	return percent, nil
}

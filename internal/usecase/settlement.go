package usecase

import (
	"context"
	"errors"

	"ev-rental-pricing/internal/domain/pricing"
	"ev-rental-pricing/internal/domain/settlement"
	"ev-rental-pricing/internal/infra"
	"ev-rental-pricing/internal/pkg/clock"
	"ev-rental-pricing/internal/pkg/errs"
	"ev-rental-pricing/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrRentalNotFound     = errors.New("rental not found")
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrSettlementExists   = errors.New("rental already settled")
)

const (
	InspectionPhaseHandover = "handover"
	InspectionPhaseReturn   = "return"
)

type RentalRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RentalRM, error)
}

type InspectionRepository interface {
	FindByRental(ctx context.Context, rentalID uuid.UUID) ([]*readmodel.InspectionRM, error)
}

type SettlementRepository interface {
	Create(ctx context.Context, rm *readmodel.SettlementRM) (*readmodel.SettlementRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.SettlementRM, error)
	FindByRentalID(ctx context.Context, rentalID uuid.UUID) (*readmodel.SettlementRM, error)
}

type SettlementUseCase interface {
	Preview(ctx context.Context, rentalID uuid.UUID) (*readmodel.SettlementRM, error)
	Finalize(ctx context.Context, rentalID uuid.UUID) (*readmodel.SettlementRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.SettlementRM, error)
}

type settlementUseCaseImpl struct {
	rentalRepo     RentalRepository
	inspectionRepo InspectionRepository
	settlementRepo SettlementRepository
	clock          clock.Clock
}

func NewSettlementUseCase(
	rentalRepo RentalRepository,
	inspectionRepo InspectionRepository,
	settlementRepo SettlementRepository,
	clk clock.Clock,
) SettlementUseCase {
	return &settlementUseCaseImpl{
		rentalRepo:     rentalRepo,
		inspectionRepo: inspectionRepo,
		settlementRepo: settlementRepo,
		clock:          clk,
	}
}

func (u *settlementUseCaseImpl) Preview(ctx context.Context, rentalID uuid.UUID) (*readmodel.SettlementRM, error) {
	return u.compute(ctx, rentalID)
}

func (u *settlementUseCaseImpl) Finalize(ctx context.Context, rentalID uuid.UUID) (*readmodel.SettlementRM, error) {
	existing, err := u.settlementRepo.FindByRentalID(ctx, rentalID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing != nil {
		return nil, ErrSettlementExists
	}

	rm, err := u.compute(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	rm.CreatedAt = u.clock.Now()

	created, err := u.settlementRepo.Create(ctx, rm)
	if err != nil {
		// Two staff members settling concurrently race on the unique index.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSettlementExists
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return created, nil
}

func (u *settlementUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.SettlementRM, error) {
	rm, err := u.settlementRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSettlementNotFound
		}
		return nil, errs.Wrap(err, "failed to find settlement")
	}
	return rm, nil
}

func (u *settlementUseCaseImpl) compute(ctx context.Context, rentalID uuid.UUID) (*readmodel.SettlementRM, error) {
	rental, err := u.rentalRepo.FindByID(ctx, rentalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, errs.Wrap(err, "failed to find rental")
	}

	// Missing inspection rows are not fatal; the paperwork still renders
	// with zeroed readings and warning flags.
	handover, ret, err := u.findInspections(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	days := pricing.ClassifyShift(pricing.NewRentalWindow(rental.StartAt, rental.EndAt)).Days

	input := settlement.OverageInput{
		DailyKmAllowance: rental.DailyKmAllowance,
		RentalDays:       days,
		RatePerExcessKm:  rental.RatePerExcessKmVND,
	}
	if handover != nil {
		input.OdometerAtHandover = handover.OdometerKm
		input.BatteryAtHandover = handover.BatteryPercent
	}
	if ret != nil {
		input.OdometerAtReturn = ret.OdometerKm
		input.BatteryAtReturn = ret.BatteryPercent
	}

	breakdown := settlement.ComputeOverage(input)

	warnings := make([]string, 0, len(breakdown.Warnings))
	for _, w := range breakdown.Warnings {
		warnings = append(warnings, string(w))
	}

	return &readmodel.SettlementRM{
		RentalID:               rentalID,
		DistanceTraveledKm:     breakdown.DistanceTraveled,
		BatteryConsumedPercent: breakdown.BatteryConsumed,
		PermittedDistanceKm:    breakdown.PermittedDistance,
		ExcessDistanceKm:       breakdown.ExcessDistance,
		ExcessFeeVND:           breakdown.ExcessFee,
		Warnings:               warnings,
	}, nil
}

func (u *settlementUseCaseImpl) findInspections(ctx context.Context, rentalID uuid.UUID) (handover, ret *readmodel.InspectionRM, err error) {
	inspections, err := u.inspectionRepo.FindByRental(ctx, rentalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, nil
		}
		return nil, nil, errs.Wrap(err, "failed to find inspections")
	}

	for _, ins := range inspections {
		switch ins.Phase {
		case InspectionPhaseHandover:
			handover = ins
		case InspectionPhaseReturn:
			ret = ins
		}
	}
	return handover, ret, nil
}

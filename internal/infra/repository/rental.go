package repository

import (
	"context"
	"errors"

	"ev-rental-pricing/internal/infra"
	"ev-rental-pricing/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RentalRepository struct {
	pool *pgxpool.Pool
}

func NewRentalRepository(pool *pgxpool.Pool) *RentalRepository {
	return &RentalRepository{pool: pool}
}

func (r *RentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RentalRM, error) {
	const query = `
		SELECT id, car_id, renter_id, start_at, end_at, daily_km_allowance, rate_per_excess_km_vnd
		FROM rentals
		WHERE id = $1`

	var rm readmodel.RentalRM
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rm.ID,
		&rm.CarID,
		&rm.RenterID,
		&rm.StartAt,
		&rm.EndAt,
		&rm.DailyKmAllowance,
		&rm.RatePerExcessKmVND,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by id", err)
	}

	return &rm, nil
}

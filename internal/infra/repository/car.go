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

type CarRepository struct {
	pool *pgxpool.Pool
}

func NewCarRepository(pool *pgxpool.Pool) *CarRepository {
	return &CarRepository{pool: pool}
}

func (r *CarRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CarRM, error) {
	const query = `
		SELECT id, name, daily_rate_vnd, sale_percent
		FROM cars
		WHERE id = $1`

	var rm readmodel.CarRM
	err := r.pool.QueryRow(ctx, query, id).Scan(&rm.ID, &rm.Name, &rm.DailyRateVND, &rm.SalePercent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by id", err)
	}

	return &rm, nil
}

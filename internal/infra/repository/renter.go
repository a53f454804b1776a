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

type RenterRepository struct {
	pool *pgxpool.Pool
}

func NewRenterRepository(pool *pgxpool.Pool) *RenterRepository {
	return &RenterRepository{pool: pool}
}

func (r *RenterRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RenterRM, error) {
	const query = `
		SELECT id, full_name, membership_discount_percent
		FROM renters
		WHERE id = $1`

	var rm readmodel.RenterRM
	err := r.pool.QueryRow(ctx, query, id).Scan(&rm.ID, &rm.FullName, &rm.MembershipDiscountPercent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("renter not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find renter by id", err)
	}

	return &rm, nil
}

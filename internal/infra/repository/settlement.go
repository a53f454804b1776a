package repository

import (
	"context"
	"errors"

	"ev-rental-pricing/internal/infra"
	"ev-rental-pricing/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type SettlementRepository struct {
	pool *pgxpool.Pool
}

func NewSettlementRepository(pool *pgxpool.Pool) *SettlementRepository {
	return &SettlementRepository{pool: pool}
}

func (r *SettlementRepository) Create(ctx context.Context, rm *readmodel.SettlementRM) (*readmodel.SettlementRM, error) {
	const query = `
		INSERT INTO settlements (
			rental_id, distance_traveled_km, battery_consumed_percent,
			permitted_distance_km, excess_distance_km, excess_fee_vnd, warnings, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	created := *rm
	err := r.pool.QueryRow(ctx, query,
		rm.RentalID,
		rm.DistanceTraveledKm,
		rm.BatteryConsumedPercent,
		rm.PermittedDistanceKm,
		rm.ExcessDistanceKm,
		rm.ExcessFeeVND,
		rm.Warnings,
		rm.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, infra.WrapRepoErr("settlement already exists for rental", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create settlement", err)
	}

	return &created, nil
}

func (r *SettlementRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.SettlementRM, error) {
	const query = `
		SELECT id, rental_id, distance_traveled_km, battery_consumed_percent,
		       permitted_distance_km, excess_distance_km, excess_fee_vnd, warnings, created_at
		FROM settlements
		WHERE id = $1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id), "settlement not found")
}

func (r *SettlementRepository) FindByRentalID(ctx context.Context, rentalID uuid.UUID) (*readmodel.SettlementRM, error) {
	const query = `
		SELECT id, rental_id, distance_traveled_km, battery_consumed_percent,
		       permitted_distance_km, excess_distance_km, excess_fee_vnd, warnings, created_at
		FROM settlements
		WHERE rental_id = $1`

	return r.scanOne(r.pool.QueryRow(ctx, query, rentalID), "settlement not found for rental")
}

func (r *SettlementRepository) scanOne(row pgx.Row, notFoundMsg string) (*readmodel.SettlementRM, error) {
	var rm readmodel.SettlementRM
	err := row.Scan(
		&rm.ID,
		&rm.RentalID,
		&rm.DistanceTraveledKm,
		&rm.BatteryConsumedPercent,
		&rm.PermittedDistanceKm,
		&rm.ExcessDistanceKm,
		&rm.ExcessFeeVND,
		&rm.Warnings,
		&rm.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan settlement", err)
	}
	return &rm, nil
}

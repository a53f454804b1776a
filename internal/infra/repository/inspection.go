package repository

import (
	"context"

	"ev-rental-pricing/internal/infra"
	"ev-rental-pricing/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InspectionRepository struct {
	pool *pgxpool.Pool
}

func NewInspectionRepository(pool *pgxpool.Pool) *InspectionRepository {
	return &InspectionRepository{pool: pool}
}

// FindByRental returns whatever inspection rows exist for the rental;
// an empty slice is not an error, settlement paperwork tolerates gaps.
func (r *InspectionRepository) FindByRental(ctx context.Context, rentalID uuid.UUID) ([]*readmodel.InspectionRM, error) {
	const query = `
		SELECT rental_id, phase, odometer_km, battery_percent, recorded_at
		FROM inspections
		WHERE rental_id = $1
		ORDER BY recorded_at`

	rows, err := r.pool.Query(ctx, query, rentalID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query inspections", err)
	}
	defer rows.Close()

	var inspections []*readmodel.InspectionRM
	for rows.Next() {
		var rm readmodel.InspectionRM
		if err := rows.Scan(&rm.RentalID, &rm.Phase, &rm.OdometerKm, &rm.BatteryPercent, &rm.RecordedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inspection row", err)
		}
		inspections = append(inspections, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read inspection rows", err)
	}

	return inspections, nil
}

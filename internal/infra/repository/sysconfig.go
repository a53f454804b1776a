package repository

import (
	"context"
	"errors"
	"strconv"

	"ev-rental-pricing/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SystemConfigRepository struct {
	pool *pgxpool.Pool
}

func NewSystemConfigRepository(pool *pgxpool.Pool) *SystemConfigRepository {
	return &SystemConfigRepository{pool: pool}
}

// FindFloat reads a numeric config value. Values are stored as text so the
// back office can manage heterogeneous settings in one table.
func (r *SystemConfigRepository) FindFloat(ctx context.Context, key string) (float64, error) {
	const query = `
		SELECT value
		FROM system_configs
		WHERE key = $1`

	var raw string
	err := r.pool.QueryRow(ctx, query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr("system config not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to find system config", err)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, infra.WrapRepoErr("system config value is not numeric", err)
	}

	return value, nil
}

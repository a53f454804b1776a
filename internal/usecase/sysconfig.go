package usecase

import (
	"context"
	"sync"
	"time"

	"ev-rental-pricing/internal/domain/pricing"
	"ev-rental-pricing/internal/infra"
	"ev-rental-pricing/internal/pkg/clock"
	"ev-rental-pricing/internal/pkg/config"
	"ev-rental-pricing/internal/pkg/errs"
	"ev-rental-pricing/internal/usecase/readmodel"
)

type SystemConfigRepository interface {
	FindFloat(ctx context.Context, key string) (float64, error)
}

// SystemConfigUseCase serves the deposit-percent snapshot. The value is
// loaded once from the backend table and then read as an immutable snapshot;
// a slightly stale percent after a refresh elsewhere is accepted behavior.
type SystemConfigUseCase interface {
	DepositPercent(ctx context.Context) (pricing.Percent, error)
	Snapshot(ctx context.Context) (*readmodel.SystemConfigRM, error)
	Refresh(ctx context.Context) (*readmodel.SystemConfigRM, error)
}

type systemConfigUseCaseImpl struct {
	repo     SystemConfigRepository
	clock    clock.Clock
	key      string
	fallback pricing.Percent

	mu       sync.RWMutex
	loaded   bool
	value    pricing.Percent
	loadedAt time.Time
}

func NewSystemConfigUseCase(
	repo SystemConfigRepository,
	clk clock.Clock,
	cfg config.PricingConfig,
) (SystemConfigUseCase, error) {
	fallback, err := pricing.NewPercent(cfg.FallbackDepositPercent)
	if err != nil {
		return nil, errs.Wrap(err, "invalid fallback deposit percent")
	}

	return &systemConfigUseCaseImpl{
		repo:     repo,
		clock:    clk,
		key:      cfg.DepositConfigKey,
		fallback: fallback,
	}, nil
}

func (u *systemConfigUseCaseImpl) DepositPercent(ctx context.Context) (pricing.Percent, error) {
	u.mu.RLock()
	if u.loaded {
		v := u.value
		u.mu.RUnlock()
		return v, nil
	}
	u.mu.RUnlock()

	return u.load(ctx)
}

func (u *systemConfigUseCaseImpl) Snapshot(ctx context.Context) (*readmodel.SystemConfigRM, error) {
	percent, err := u.DepositPercent(ctx)
	if err != nil {
		return nil, err
	}

	u.mu.RLock()
	loadedAt := u.loadedAt
	u.mu.RUnlock()

	return &readmodel.SystemConfigRM{
		DepositPercent: percent.Value(),
		LoadedAt:       loadedAt,
	}, nil
}

func (u *systemConfigUseCaseImpl) Refresh(ctx context.Context) (*readmodel.SystemConfigRM, error) {
	percent, err := u.load(ctx)
	if err != nil {
		return nil, err
	}

	u.mu.RLock()
	loadedAt := u.loadedAt
	u.mu.RUnlock()

	return &readmodel.SystemConfigRM{
		DepositPercent: percent.Value(),
		LoadedAt:       loadedAt,
	}, nil
}

func (u *systemConfigUseCaseImpl) load(ctx context.Context) (pricing.Percent, error) {
	raw, err := u.repo.FindFloat(ctx, u.key)

	var percent pricing.Percent
	switch {
	case err == nil:
		percent, err = pricing.NewPercent(raw)
		if err != nil {
			return 0, errs.Wrap(err, "deposit percent out of range in system config")
		}
	case infra.IsKind(err, infra.KindNotFound):
		// Table not seeded yet; operate on the configured fallback.
		percent = u.fallback
	default:
		return 0, errs.Wrap(err, "failed to load deposit percent")
	}

	u.mu.Lock()
	u.value = percent
	u.loaded = true
	u.loadedAt = u.clock.Now()
	u.mu.Unlock()

	return percent, nil
}

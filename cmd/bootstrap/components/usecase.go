package components

import (
	"ev-rental-pricing/internal/pkg/clock"
	"ev-rental-pricing/internal/pkg/config"
	"ev-rental-pricing/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		func(repo usecase.SystemConfigRepository, clk clock.Clock, cfg config.Config) (usecase.SystemConfigUseCase, error) {
			return usecase.NewSystemConfigUseCase(repo, clk, cfg.Pricing)
		},
		usecase.NewQuoteUseCase,
		usecase.NewSettlementUseCase,
	),
)

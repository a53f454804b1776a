package components

import (
	"ev-rental-pricing/internal/infra/repository"
	"ev-rental-pricing/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCarRepository,
			fx.As(new(usecase.CarRepository)),
		),
		fx.Annotate(
			repository.NewRenterRepository,
			fx.As(new(usecase.RenterRepository)),
		),
		fx.Annotate(
			repository.NewRentalRepository,
			fx.As(new(usecase.RentalRepository)),
		),
		fx.Annotate(
			repository.NewInspectionRepository,
			fx.As(new(usecase.InspectionRepository)),
		),
		fx.Annotate(
			repository.NewSettlementRepository,
			fx.As(new(usecase.SettlementRepository)),
		),
		fx.Annotate(
			repository.NewSystemConfigRepository,
			fx.As(new(usecase.SystemConfigRepository)),
		),
	),
)

package components

import (
	"ev-rental-pricing/internal/handler"
	"ev-rental-pricing/internal/handler/api"
	"ev-rental-pricing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewSettlementHandler,
		api.NewSystemConfigHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

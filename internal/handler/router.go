package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ev-rental-pricing/internal/handler/api"
	"ev-rental-pricing/internal/handler/middleware"
	"ev-rental-pricing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	quoteHandler *api.QuoteHandler,
	settlementHandler *api.SettlementHandler,
	sysConfigHandler *api.SystemConfigHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, quoteHandler, settlementHandler, sysConfigHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	quoteHandler *api.QuoteHandler,
	settlementHandler *api.SettlementHandler,
	sysConfigHandler *api.SystemConfigHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Quotes power the public booking flow; no auth required.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/quotes", Handler: quoteHandler.CreateQuote},
		})

		staff := apiGroup.Group("")
		staff.Use(authMiddleware.RequireAuth())
		staff.Use(authMiddleware.RequireRoleAtLeast(middleware.RoleStaff))
		{
			addRoutes(staff, []route{
				{Method: http.MethodPost, Path: "/rentals/:id/settlement/preview", Handler: settlementHandler.PreviewSettlement},
				{Method: http.MethodPost, Path: "/rentals/:id/settlement", Handler: settlementHandler.FinalizeSettlement},
				{Method: http.MethodGet, Path: "/settlements/:id", Handler: settlementHandler.GetSettlement},
				{Method: http.MethodGet, Path: "/system-config", Handler: sysConfigHandler.GetSystemConfig},
				{Method: http.MethodPost, Path: "/system-config/refresh", Handler: sysConfigHandler.RefreshSystemConfig},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"olive-mill/internal/handler/api"
	"olive-mill/internal/handler/middleware"
	"olive-mill/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Batch   *api.BatchHandler
	Mapping *api.MappingHandler
	Tank    *api.TankHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.RequireActor())
	{
		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.Update},
			{Method: http.MethodPost, Path: "/:id/correct-end", Handler: h.Booking.CorrectEnd},
			{Method: http.MethodPost, Path: "/:id/close", Handler: h.Booking.Close},
		})

		addRoutes(apiGroup.Group("/lines"), []route{
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Booking.ListByLine},
		})

		addRoutes(apiGroup.Group("/batches"), []route{
			{Method: http.MethodPost, Path: "/plan", Handler: h.Batch.Plan},
			{Method: http.MethodPost, Path: "", Handler: h.Batch.Commit},
		})

		addRoutes(apiGroup.Group("/mappings"), []route{
			{Method: http.MethodPut, Path: "/default", Handler: h.Mapping.SetDefault},
			{Method: http.MethodGet, Path: "/:input/resolve", Handler: h.Mapping.Resolve},
		})

		addRoutes(apiGroup.Group("/tanks"), []route{
			{Method: http.MethodPost, Path: "/:id/check", Handler: h.Tank.Check},
		})
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

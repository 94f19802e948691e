package middleware

import (
	"log/slog"
	"slices"

	"olive-mill/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always allows the actor headers, whatever the configured
// header list says.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowHeaders := slices.Clone(cfg.AllowHeaders)
	for _, h := range []string{HeaderActorID, HeaderActorRole} {
		if !slices.Contains(allowHeaders, h) {
			allowHeaders = append(allowHeaders, h)
		}
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "AllowHeaders", allowHeaders)
	return cors.New(corsCfg)
}

package middleware

import (
	"log/slog"
	"slices"

	"fieldservice/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// exposedAlways lists headers the API sets on created bookings and product
// requests; browsers hide them unless exposed.
var exposedAlways = []string{"Location"}

// NewCORSMiddleware builds the CORS policy. A "*" origin switches to
// allow-all and drops credentials, since browsers reject that combination.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range exposedAlways {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}

	slog.Info("CORS configured",
		"allow_origins", cfg.AllowOrigins, "allow_all", corsCfg.AllowAllOrigins, "credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}

package handlers

import (
	portssvc "github.com/fintracc/finance_tracker_app/internal/core/ports/services"
	"github.com/fintracc/finance_tracker_app/internal/middleware"
	"github.com/fintracc/finance_tracker_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Browser clients send the session cookie cross-origin, so CORS must
	// allow credentials for the configured origins.
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
		corsCfg.AllowCredentials = true
		r.Use(cors.New(corsCfg))
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	writeLimiter := newWriteLimiter(cfg)

	registerTransactionRoutes(r, cfg, services.Transaction, writeLimiter)
	registerCategoryRoutes(r, cfg, services.Category, writeLimiter)
}

// newWriteLimiter builds the shared per-IP rate limiter applied to the write
// endpoints.
func newWriteLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.WriteRateLimit)
	if err != nil {
		// Fall back to a sane rate rather than running writes unlimited.
		rate, _ = limiter.NewRateFromFormatted("60-M")
	}
	store := memory.NewStore()
	return middleware.RateLimit(limiter.New(store, rate))
}

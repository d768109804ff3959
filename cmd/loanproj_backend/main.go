package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	_ "github.com/loanwise/loan_projection_app/cmd/docs"
	portssvc "github.com/loanwise/loan_projection_app/internal/core/ports/services"
	"github.com/loanwise/loan_projection_app/internal/core/services"
	"github.com/loanwise/loan_projection_app/internal/handlers"
	"github.com/loanwise/loan_projection_app/internal/middleware"
	"github.com/loanwise/loan_projection_app/internal/platform/validation"
	"github.com/loanwise/loan_projection_app/pkg/config"
)

// @title Loan Projection API
// @version 1.0
// @description Month-by-month amortization projections for fixed-payment loans.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := validation.RegisterDecimalValidators(); err != nil {
		logger.Error("Failed to register decimal validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to parse rate limit", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Setup services; projection tables requested via printTable go to stdout.
	serviceContainer := &portssvc.ServiceContainer{
		Projection: services.NewProjectionService(cfg.Rounding, os.Stdout),
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

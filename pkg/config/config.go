package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/loanwise/loan_projection_app/internal/utils/rounding"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	// Rounding controls display precision and the tie-breaking rule for all
	// projection output. Set once at startup; read-only afterwards.
	Rounding rounding.Config
	// RateLimit is an ulule/limiter formatted rate (e.g. "60-M").
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DECIMAL_PLACES_IO", 2)
	viper.SetDefault("OUTPUT_ROUNDING_METHOD", string(rounding.HalfEven))
	viper.SetDefault("RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	method, err := rounding.ParseMethod(viper.GetString("OUTPUT_ROUNDING_METHOD"))
	if err != nil {
		return nil, fmt.Errorf("loading OUTPUT_ROUNDING_METHOD: %w", err)
	}

	places := viper.GetInt32("DECIMAL_PLACES_IO")
	if places < 0 {
		return nil, fmt.Errorf("DECIMAL_PLACES_IO must not be negative, got %d", places)
	}

	return &Config{
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		Rounding: rounding.Config{
			Places: places,
			Method: method,
		},
		RateLimit: viper.GetString("RATE_LIMIT"),
	}, nil
}

package config

import (
	"os"

	"github.com/KirkDiggler/headfirst-patterns/internal/beverage"
	apperr "github.com/KirkDiggler/headfirst-patterns/internal/errors"
	"github.com/KirkDiggler/headfirst-patterns/internal/weather"
)

// Config holds all configuration for the demo harnesses
type Config struct {
	Starbuzz StarbuzzConfig
	Weather  WeatherConfig
}

// StarbuzzConfig holds coffee ordering configuration
type StarbuzzConfig struct {
	DefaultSize beverage.Size // Used when an order doesn't name a size
	Currency    string
}

// WeatherConfig holds weather station configuration
type WeatherConfig struct {
	Mode weather.Mode
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	size, err := beverage.ParseSize(getEnvOrDefault("STARBUZZ_DEFAULT_SIZE", "tall"))
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeValidation, "STARBUZZ_DEFAULT_SIZE is invalid")
	}

	mode, err := weather.ParseMode(getEnvOrDefault("WEATHER_MODE", string(weather.ModePush)))
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeValidation, "WEATHER_MODE is invalid")
	}

	cfg := &Config{
		Starbuzz: StarbuzzConfig{
			DefaultSize: size,
			Currency:    getEnvOrDefault("STARBUZZ_CURRENCY", "$"),
		},
		Weather: WeatherConfig{
			Mode: mode,
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

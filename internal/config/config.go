package config

import (
	"os"
	"strconv"

	"agriprob/domain/core"
)

// Config represents the demonstration CLI configuration. The rule library
// takes no configuration; everything here shapes output only.
type Config struct {
	Logging LoggingConfig
	Output  OutputConfig
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// OutputConfig holds result formatting settings
type OutputConfig struct {
	// Precision is the number of decimal places printed for probabilities.
	Precision int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Logging: LoggingConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
		Output: OutputConfig{
			Precision: getEnvIntOrDefault("OUTPUT_PRECISION", 4),
		},
	}

	if cfg.Output.Precision < 0 || cfg.Output.Precision > 15 {
		return nil, core.NewInvalidArgumentError(
			"OUTPUT_PRECISION must be between 0 and 15, got %d", cfg.Output.Precision)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

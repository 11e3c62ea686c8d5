package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string
	LogFormat   string
	Environment string
	StockFile   string // Path to the initial inventory JSON file
	Days        int    // Number of days to simulate
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		StockFile:   getEnv("STOCK_FILE", DefaultStockFile),
	}

	daysStr := getEnv("SIMULATION_DAYS", DefaultSimulationDays)
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SIMULATION_DAYS value: %w", err)
	}
	if days < 0 {
		return nil, fmt.Errorf("SIMULATION_DAYS must not be negative, got %d", days)
	}
	cfg.Days = days

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

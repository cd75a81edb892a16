package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const VERSION = "2.1"

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Planner     PlannerConfig
	Environment string
	LogLevel    string
	Version     string
}

type ServerConfig struct {
	Port int
	Host string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// PlannerConfig carries the shop-floor scheduling knobs. The defaults
// mirror the shop's single day shift and the fixed make-ready time
// charged to every production step.
type PlannerConfig struct {
	ShiftStartHour      int
	ShiftEndHour        int
	SetupHours          float64
	AnnualRevenueTarget float64
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "pressroom")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	// Planner defaults: 08:00-17:00 day shift, 2h make-ready per step
	v.SetDefault("PLANNER_SHIFT_START_HOUR", 8)
	v.SetDefault("PLANNER_SHIFT_END_HOUR", 17)
	v.SetDefault("PLANNER_SETUP_HOURS", 2.0)
	v.SetDefault("ANNUAL_REVENUE_TARGET", 150000.0)

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Planner: PlannerConfig{
			ShiftStartHour:      v.GetInt("PLANNER_SHIFT_START_HOUR"),
			ShiftEndHour:        v.GetInt("PLANNER_SHIFT_END_HOUR"),
			SetupHours:          v.GetFloat64("PLANNER_SETUP_HOURS"),
			AnnualRevenueTarget: v.GetFloat64("ANNUAL_REVENUE_TARGET"),
		},
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Version:     v.GetString("VERSION"),
	}

	if config.Planner.ShiftStartHour < 0 || config.Planner.ShiftStartHour > 23 {
		return nil, fmt.Errorf("PLANNER_SHIFT_START_HOUR must be between 0 and 23, got %d", config.Planner.ShiftStartHour)
	}
	if config.Planner.ShiftEndHour < 1 || config.Planner.ShiftEndHour > 24 {
		return nil, fmt.Errorf("PLANNER_SHIFT_END_HOUR must be between 1 and 24, got %d", config.Planner.ShiftEndHour)
	}
	if config.Planner.ShiftEndHour <= config.Planner.ShiftStartHour {
		return nil, fmt.Errorf("PLANNER_SHIFT_END_HOUR (%d) must be after PLANNER_SHIFT_START_HOUR (%d)",
			config.Planner.ShiftEndHour, config.Planner.ShiftStartHour)
	}
	if config.Planner.SetupHours < 0 {
		return nil, fmt.Errorf("PLANNER_SETUP_HOURS must not be negative, got %f", config.Planner.SetupHours)
	}

	return config, nil
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// RecurringBlock defines a studio-wide repeating busy interval, such as
// a weekly all-hands, that the slot finder treats as blocked time for
// every staff member. Occurrence dates come from the rrule; the clock
// time and duration are fixed per block.
type RecurringBlock struct {
	Label           string `yaml:"label" validate:"required"`
	RRule           string `yaml:"rrule" validate:"required"`
	StartTime       string `yaml:"startTime" validate:"required"`
	DurationMinutes int    `yaml:"durationMinutes" validate:"required,min=1"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL             string           `yaml:"databaseURL" validate:"required"`
	ListenAddr              string           `yaml:"listenAddr,omitempty"`
	DefaultSearchWindowDays int              `yaml:"defaultSearchWindowDays" validate:"required,min=1"`
	RecurringBlocks         []RecurringBlock `yaml:"recurringBlocks,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from agency_ops_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile("agency_ops_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadWithEnv loads the configuration for a specific environment, e.g.
// agency_ops_config.prod.yaml for env "prod".
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(fmt.Sprintf("agency_ops_config.%s.yaml", env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file for env %q: %w", env, err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the rrule syntax, and the
// start clock time of each recurring block
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, block := range cfg.RecurringBlocks {
		if _, err := rrule.StrToRRule(block.RRule); err != nil {
			return fmt.Errorf("invalid rrule in recurringBlocks[%d]: %w", i, err)
		}
		if _, err := time.Parse("15:04", block.StartTime); err != nil {
			return fmt.Errorf("invalid startTime in recurringBlocks[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for the named config file in the current
// directory and the user's home directory
func findConfigFile(configFileName string) (string, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}

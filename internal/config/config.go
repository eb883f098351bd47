// Package config loads CLI configuration from a YAML file with environment
// variable overrides.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds synthesis defaults for the CLI.
type Config struct {
	// Environment is the target environment label.
	Environment string `yaml:"environment"`
	// IncludeDependencies toggles dependency expansion.
	IncludeDependencies bool `yaml:"include_dependencies"`
	// ValidateFormulas toggles pre-synthesis validation.
	ValidateFormulas bool `yaml:"validate_formulas"`
	// TargetSheets overrides the sheets scanned for formulas.
	TargetSheets []string `yaml:"target_sheets"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Environment:         "production",
		IncludeDependencies: true,
		ValidateFormulas:    true,
	}
}

// Load reads configuration from path, layered over defaults. An empty path
// yields the defaults. Environment variables (optionally from a .env file)
// override the file.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	}

	// 3. Override with environment variables if present
	if env := os.Getenv("TRACKER_ENVIRONMENT"); env != "" {
		cfg.Environment = env
	}

	return cfg, nil
}

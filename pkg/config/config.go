package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pario-ai/anggaran/pkg/budget"
	"github.com/pario-ai/anggaran/pkg/models"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidThreshold is returned when the decision threshold is not positive.
	ErrInvalidThreshold = errors.New("threshold must be positive")
	// ErrEmptyChecklist is returned when a tier has no documents.
	ErrEmptyChecklist = errors.New("checklist has no documents")
)

// Config holds all anggaran configuration.
type Config struct {
	Listen   string         `yaml:"listen"`
	Log      LogConfig      `yaml:"log"`
	Decision DecisionConfig `yaml:"decision"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// LogConfig controls the zap logger.
// Format is "json" (default) or "console".
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DecisionConfig sets the tier boundary and the checklist for each tier.
type DecisionConfig struct {
	Threshold decimal.Decimal  `yaml:"threshold"`
	TierA     models.Checklist `yaml:"tier_a"`
	TierB     models.Checklist `yaml:"tier_b"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Listen: ":8080",
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Decision: DecisionConfig{
			Threshold: budget.DefaultThreshold,
			TierA:     budget.DefaultTierA(),
			TierB:     budget.DefaultTierB(),
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Load reads a YAML config file and expands environment variables.
// A .env file in the working directory, if present, is loaded first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path when set and falls back to Default otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the decision settings.
func (c *Config) Validate() error {
	if !c.Decision.Threshold.IsPositive() {
		return fmt.Errorf("decision: %w", ErrInvalidThreshold)
	}
	if len(c.Decision.TierA.Documents) == 0 {
		return fmt.Errorf("decision.tier_a: %w", ErrEmptyChecklist)
	}
	if len(c.Decision.TierB.Documents) == 0 {
		return fmt.Errorf("decision.tier_b: %w", ErrEmptyChecklist)
	}
	return nil
}

// Mapper builds the decision mapper described by the config.
func (c *Config) Mapper() *budget.Mapper {
	return budget.New(c.Decision.Threshold, c.Decision.TierA, c.Decision.TierB)
}

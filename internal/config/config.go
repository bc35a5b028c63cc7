// Package config loads lootgen settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/lawnchairsociety/lootforge/internal/items"
	"github.com/lawnchairsociety/lootforge/internal/loot"
	"github.com/lawnchairsociety/lootforge/internal/zone"
	"gopkg.in/yaml.v3"
)

// Config holds every non-logging setting. The logging section of the same
// file is read by the logger package.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`

	// ZoneBias replaces the built-in preference list of each zone it names.
	// Keys are zone names, values are category keys or display labels.
	// An empty list removes the zone's preference.
	ZoneBias map[string][]string `yaml:"zone_bias"`

	Telemetry TelemetryConfig `yaml:"telemetry"`
	Balance   BalanceConfig   `yaml:"balance"`
}

// GeneratorConfig holds settings for the shared random source.
type GeneratorConfig struct {
	// Seed fixes the random sequence. 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// TelemetryConfig controls OpenTelemetry export.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// BalanceConfig holds defaults for the sample command.
type BalanceConfig struct {
	Workers    int `yaml:"workers"`
	Iterations int `yaml:"iterations"`
}

// DefaultConfig returns a Config with the built-in bias table and telemetry off.
func DefaultConfig() *Config {
	return &Config{
		ZoneBias: map[string][]string{},
		Telemetry: TelemetryConfig{
			ServiceName: "lootforge",
		},
		Balance: BalanceConfig{
			Workers:    4,
			Iterations: 10000,
		},
	}
}

// LoadConfig loads configuration from a YAML file.
// A missing file yields the defaults; a malformed or invalid one is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Validate reports every unknown zone or category key and out of range
// balance setting.
func (c *Config) Validate() error {
	var errs []error

	for _, name := range sortedKeys(c.ZoneBias) {
		if _, ok := zone.Parse(name); !ok {
			errs = append(errs, fmt.Errorf("zone_bias: unknown zone %q", name))
			continue
		}
		for _, key := range c.ZoneBias[name] {
			if _, ok := items.ParseCategory(key); !ok {
				errs = append(errs, fmt.Errorf("zone_bias.%s: unknown category %q", name, key))
			}
		}
	}

	if c.Balance.Workers < 1 {
		errs = append(errs, fmt.Errorf("balance.workers must be >= 1, got %d", c.Balance.Workers))
	}
	if c.Balance.Iterations < 1 {
		errs = append(errs, fmt.Errorf("balance.iterations must be >= 1, got %d", c.Balance.Iterations))
	}

	return errors.Join(errs...)
}

// Bias returns the built-in zone bias with the configured overrides applied.
// Call Validate first; unknown keys are skipped here.
func (c *Config) Bias() loot.Bias {
	bias := loot.DefaultBias()
	for name, keys := range c.ZoneBias {
		z, ok := zone.Parse(name)
		if !ok {
			continue
		}
		cats := make([]items.Category, 0, len(keys))
		for _, key := range keys {
			if cat, ok := items.ParseCategory(key); ok {
				cats = append(cats, cat)
			}
		}
		bias[z] = cats
	}
	return bias
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

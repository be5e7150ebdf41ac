// Package config reads process configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting the host process reads at startup.
type Config struct {
	// Seed for the match random source. 0 picks a fresh seed per match.
	Seed int64 `env:"KEYWORDFIGHT_SEED" envDefault:"0"`
	// Catalog is a JSON or YAML catalog file. Empty uses the embedded one.
	Catalog string `env:"KEYWORDFIGHT_CATALOG"`
	Locale  string `env:"KEYWORDFIGHT_LOCALE" envDefault:"en"`
	// Plain switches from the full-screen terminal to a line console.
	Plain  bool   `env:"KEYWORDFIGHT_PLAIN" envDefault:"false"`
	Accent string `env:"KEYWORDFIGHT_ACCENT" envDefault:"#D4A017"`

	PlayerName string `env:"KEYWORDFIGHT_PLAYER_NAME" envDefault:"Player"`
	EnemyName  string `env:"KEYWORDFIGHT_ENEMY_NAME" envDefault:"Enemy"`

	Telemetry        bool   `env:"KEYWORDFIGHT_TELEMETRY" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_KEYWORDFIGHT_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_KEYWORDFIGHT_DATASET" envDefault:"keywordfight"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Locale = strings.ToLower(strings.TrimSpace(cfg.Locale))
	switch cfg.Locale {
	case "en", "pl":
	default:
		return Config{}, fmt.Errorf("parse env: unsupported locale %q", cfg.Locale)
	}
	return cfg, nil
}

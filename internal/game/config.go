package game

import (
	"golang.org/x/text/message"

	"github.com/samdwyer/keywordfight/internal/config"
	"github.com/samdwyer/keywordfight/internal/locale"
)

// Config holds match and host options.
type Config struct {
	// Seed for random number generation. Used for reproducible matches.
	// A seed of 0 means a random seed will be generated for every match.
	Seed int64

	PlayerName string
	EnemyName  string

	// Printer renders narrative text. Nil means English.
	Printer *message.Printer
}

// NewConfig derives the match options from the process configuration.
func NewConfig(cfg config.Config) (Config, error) {
	printer, err := locale.NewPrinter(cfg.Locale)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Seed:       cfg.Seed,
		PlayerName: cfg.PlayerName,
		EnemyName:  cfg.EnemyName,
		Printer:    printer,
	}, nil
}

func (c Config) printer() *message.Printer {
	if c.Printer == nil {
		return locale.English()
	}
	return c.Printer
}

func (c Config) playerName() string {
	if c.PlayerName == "" {
		return "Player"
	}
	return c.PlayerName
}

func (c Config) enemyName() string {
	if c.EnemyName == "" {
		return "Enemy"
	}
	return c.EnemyName
}

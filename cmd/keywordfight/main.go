// Package main is the entry point for KeywordFight.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/keywordfight/internal/config"
	"github.com/samdwyer/keywordfight/internal/game"
	"github.com/samdwyer/keywordfight/internal/gamedata"
	"github.com/samdwyer/keywordfight/internal/telemetry"
	"github.com/samdwyer/keywordfight/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			APIKey:  cfg.HoneycombAPIKey,
			Dataset: cfg.HoneycombDataset,
		})
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	catalog, err := gamedata.LoadCatalog(cfg.Catalog)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	for _, skipped := range catalog.Skipped {
		log.Printf("Note: skipped equipment %s", skipped)
	}

	matchCfg, err := game.NewConfig(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	theme, err := ui.NewTheme(cfg.Accent)
	if err != nil {
		log.Printf("Warning: %v, using the default accent", err)
		theme = ui.DefaultTheme()
	}

	var frontend game.Frontend
	if cfg.Plain {
		frontend = game.NewConsoleFrontend(os.Stdin, os.Stdout, theme, matchCfg)
	} else {
		frontend, err = game.NewScreenFrontend(theme, matchCfg)
		if err != nil {
			log.Fatalf("Failed to initialize screen: %v", err)
		}
	}

	if err := game.New(frontend, catalog, matchCfg).Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

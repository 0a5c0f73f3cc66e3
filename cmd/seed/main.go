// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/angelamos/gearstore/internal/config"
	"github.com/angelamos/gearstore/internal/core"
	"github.com/angelamos/gearstore/internal/product"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(*configPath, logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("database close error", "error", closeErr)
		}
	}()

	repo := product.NewRepository(db.DB)
	catalog := product.SeedCatalog()

	for _, p := range catalog {
		if err := repo.Upsert(ctx, &p); err != nil {
			return err
		}
		logger.Info("seeded product",
			"id", p.ID,
			"name", p.Name,
			"price", p.Price,
		)
	}

	logger.Info("seed complete", "products", len(catalog))
	return nil
}

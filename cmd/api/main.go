package main

import (
	"context"
	"flag"
	"log/slog"
	"mediaratings/proj/internal/api/tasks"
	"mediaratings/proj/internal/config"
	"mediaratings/proj/internal/lib/logger"
	"mediaratings/proj/internal/lib/security"
	"mediaratings/proj/internal/services"
	"mediaratings/proj/internal/storage/memory"
	"mediaratings/proj/internal/storage/postgres"
	pgmodels "mediaratings/proj/internal/storage/postgres/models"
	"os"
	"time"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file")

	flag.Parse()
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)

	storage, closeStorage, err := openStorage(cfg, log)
	if err != nil {
		log.Error("failed to open storage", "driver", cfg.Storage.Driver, "errMsg", err.Error())
		os.Exit(1)
	}
	defer closeStorage()

	workers := tasks.New(log, cfg.Workers.Size, cfg.Workers.QueueSize)
	workers.Run()
	tokens := security.NewTokenManager(cfg.AppSecret, cfg.TokenTTL)
	app := NewApplication(cfg, log, services.New(log, storage, tokens), workers)
	if err := app.serve(); err != nil {
		app.log.Error("shutting down the server", "reason", err.Error())
		os.Exit(1)
	}
}

func openStorage(cfg *config.Config, log *slog.Logger) (services.Storage, func(), error) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Info("using in-memory storage")
		return services.MemoryStorage(memory.New()), func() {}, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db, err := postgres.New(ctx, cfg.DB.Dsn, cfg.DB.MaxConns, cfg.DB.MaxConnIdleTime)
	if err != nil {
		return services.Storage{}, nil, err
	}
	log.Info("database connection established")
	if cfg.DB.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return services.Storage{}, nil, err
		}
		log.Info("database schema migrated")
	}
	return services.PostgresStorage(pgmodels.New(db)), db.Close, nil
}

package main

import (
	"context"
	"gin-grocery/infra"
	"gin-grocery/repositories"
	"log/slog"
	"os"
)

func main() {
	infra.Initialize()
	cfg, err := infra.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	infra.SetupLogger(cfg.LogLevel)

	db, err := infra.SetupDB(cfg.DB, cfg.Env)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := infra.Migrate(db); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	removed, err := repositories.NewTokenRepository(db).CleanExpiredTokens(context.Background(), cfg.BlacklistRetention)
	if err != nil {
		slog.Error("Failed to clean expired tokens", "error", err)
		os.Exit(1)
	}
	slog.Info("Migration finished", "expired_tokens_removed", removed)
}

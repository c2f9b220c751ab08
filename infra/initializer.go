package infra

import (
	"log/slog"

	"github.com/joho/godotenv"
)

func Initialize() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found; using environment variables")
	}
}

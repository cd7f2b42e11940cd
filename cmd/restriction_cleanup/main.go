package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bookings/internal/config"
	"bookings/internal/database"
	"bookings/internal/pkg/logger"
	"bookings/internal/repository"
)

func main() {
	_ = godotenv.Load()

	boot := logger.New(false)
	cfg, err := config.Load()
	if err != nil {
		boot.Fatal("load config", zap.Error(err))
	}
	_ = boot.Sync()
	log := logger.New(cfg.InProduction())
	defer func() { _ = log.Sync() }()
	log.Info("config loaded", zap.String("env", cfg.AppEnv))

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	y, m, d := time.Now().UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	n, err := repository.NewReservationRepository(db).DeleteExpiredBlocks(context.Background(), today)
	if err != nil {
		log.Fatal("cleanup owner blocks failed", zap.Error(err))
	}
	log.Info("restriction cleanup completed", zap.Int64("owner_blocks", n), zap.Time("cutoff", today))
}

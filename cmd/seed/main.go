package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bookings/internal/config"
	"bookings/internal/database"
	"bookings/internal/domain"
	"bookings/internal/pkg/logger"
	"bookings/internal/repository"
)

var rooms = []domain.Room{
	{ID: 1, RoomName: "General's Quarters"},
	{ID: 2, RoomName: "Major's Suite"},
}

var restrictions = []domain.Restriction{
	{ID: int64(domain.RestrictionReservation), RestrictionName: "Reservation"},
	{ID: int64(domain.RestrictionOwnerBlock), RestrictionName: "Owner Block"},
}

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

	log.Info("running migrations")
	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	if err := upsert(db, &rooms); err != nil {
		log.Fatal("seed rooms failed", zap.Error(err))
	}
	if err := upsert(db, &restrictions); err != nil {
		log.Fatal("seed restrictions failed", zap.Error(err))
	}

	stored, err := repository.NewRoomRepository(db).All(context.Background())
	if err != nil {
		log.Fatal("list rooms failed", zap.Error(err))
	}
	for _, r := range stored {
		log.Info("room ready", zap.Int64("id", r.ID), zap.String("name", r.RoomName))
	}

	if cfg.InProduction() {
		log.Info("seed completed", zap.Int("rooms", len(stored)))
		return
	}

	// Demo data: the Major's Suite is blocked by the owner next week.
	start := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 7)
	repo := repository.NewReservationRepository(db)
	if err := repo.InsertBlock(context.Background(), 2, start, start.AddDate(0, 0, 3)); err != nil {
		log.Warn("demo owner block skipped", zap.Error(err))
	}

	log.Info("seed completed",
		zap.Int("rooms", len(stored)),
		zap.String("blocked_from", start.Format(domain.DateLayout)),
	)
}

func upsert[T any](db *gorm.DB, rows *[]T) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(rows).Error
}

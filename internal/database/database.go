package database

import (
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"bookings/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		zap.L().Info("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	zap.L().Info("using SQLite for local development", zap.String("dsn", dsn))

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// OverbookingConstraint keeps restrictions on the same room from overlapping
// on PostgreSQL.
const OverbookingConstraint = "idx_no_overbooking"

const overbookingDDL = `
DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'idx_no_overbooking') THEN
		ALTER TABLE room_restrictions ADD CONSTRAINT idx_no_overbooking
			EXCLUDE USING gist (room_id WITH =, daterange(start_date::date, end_date::date) WITH &&);
	END IF;
END $$;`

// Migrate creates or updates the booking tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Room{},
		&domain.Restriction{},
		&domain.Reservation{},
		&domain.RoomRestriction{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}
	return db.Exec(overbookingDDL).Error
}

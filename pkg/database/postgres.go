package database

import (
	"log"

	"github.com/fitzone/gym-booking/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.MembershipPlan{},
		&models.Class{},
		&models.Schedule{},
		&models.Booking{},
	); err != nil {
		return err
	}

	// Partial unique index: prevents double-booking (same user + same schedule)
	// while a confirmed booking exists; cancelled rows don't block re-booking
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_confirmed
		ON bookings (user_id, schedule_id)
		WHERE status = 'confirmed'
	`).Error
}

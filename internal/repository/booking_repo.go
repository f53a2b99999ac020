package repository

import (
	"context"

	"github.com/fitzone/gym-booking/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	FindByScheduleID(ctx context.Context, scheduleID uint, status *models.BookingStatus) ([]models.Booking, error)
	FindConfirmedByUserAndSchedule(ctx context.Context, tx *gorm.DB, userID string, scheduleID uint) (*models.Booking, error)
	CountConfirmedBySchedule(ctx context.Context, tx *gorm.DB, scheduleID uint) (int64, error)
	CancelIfConfirmed(ctx context.Context, tx *gorm.DB, bookingID uint) (bool, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Schedule").Preload("Schedule.Class").
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Schedule").Preload("Schedule.Class").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByScheduleID(ctx context.Context, scheduleID uint, status *models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).Where("schedule_id = ?", scheduleID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindConfirmedByUserAndSchedule(ctx context.Context, tx *gorm.DB, userID string, scheduleID uint) (*models.Booking, error) {
	var booking models.Booking
	err := tx.WithContext(ctx).
		Where("user_id = ? AND schedule_id = ? AND status = ?", userID, scheduleID, models.StatusConfirmed).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) CountConfirmedBySchedule(ctx context.Context, tx *gorm.DB, scheduleID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("schedule_id = ? AND status = ?", scheduleID, models.StatusConfirmed).
		Count(&count).Error
	return count, err
}

// CancelIfConfirmed flips confirmed -> cancelled and reports whether a row was
// updated. The status guard makes overlapping cancel requests for the same
// booking a single-winner operation.
func (r *bookingRepository) CancelIfConfirmed(ctx context.Context, tx *gorm.DB, bookingID uint) (bool, error) {
	res := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, models.StatusConfirmed).
		Update("status", models.StatusCancelled)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

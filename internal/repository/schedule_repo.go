package repository

import (
	"context"
	"time"

	"github.com/fitzone/gym-booking/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleFilter is a pass-through query surface; empty fields are ignored.
type ScheduleFilter struct {
	ClassID      *uint
	InstructorID string
	Level        string
	Category     string
	Status       *models.ScheduleStatus
	Date         *time.Time // matches the UTC day containing start_time
}

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	FindByID(ctx context.Context, id uint) (*models.Schedule, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Schedule, error)
	FindAll(ctx context.Context, filter ScheduleFilter) ([]models.Schedule, error)
	Save(ctx context.Context, tx *gorm.DB, schedule *models.Schedule) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	DecrementAvailable(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	IncrementAvailable(ctx context.Context, tx *gorm.DB, id uint) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := r.db.WithContext(ctx).Preload("Class").First(&schedule, id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

// FindByIDForUpdate acquires a row-level lock on the schedule within the given transaction.
func (r *scheduleRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&schedule, id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindAll(ctx context.Context, filter ScheduleFilter) ([]models.Schedule, error) {
	q := r.db.WithContext(ctx).Preload("Class")

	if filter.ClassID != nil {
		q = q.Where("schedules.class_id = ?", *filter.ClassID)
	}
	if filter.Status != nil {
		q = q.Where("schedules.status = ?", *filter.Status)
	}
	if filter.Date != nil {
		day := filter.Date.UTC().Truncate(24 * time.Hour)
		q = q.Where("schedules.start_time >= ? AND schedules.start_time < ?", day, day.Add(24*time.Hour))
	}
	if filter.InstructorID != "" || filter.Level != "" || filter.Category != "" {
		q = q.Joins("JOIN classes ON classes.id = schedules.class_id")
		if filter.InstructorID != "" {
			q = q.Where("classes.instructor_id = ?", filter.InstructorID)
		}
		if filter.Level != "" {
			q = q.Where("classes.level = ?", filter.Level)
		}
		if filter.Category != "" {
			q = q.Where("classes.category = ?", filter.Category)
		}
	}

	var schedules []models.Schedule
	if err := q.Order("schedules.start_time ASC").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Save(ctx context.Context, tx *gorm.DB, schedule *models.Schedule) error {
	return tx.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Schedule{}, id).Error
}

// DecrementAvailable takes one seat with a conditional update; it reports false
// when no seat was left. This is the only path that may decrement
// available_spots, and under concurrent calls for the last seat exactly one
// caller sees true.
func (r *scheduleRepository) DecrementAvailable(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	res := tx.WithContext(ctx).
		Model(&models.Schedule{}).
		Where("id = ? AND available_spots > 0", id).
		UpdateColumn("available_spots", gorm.Expr("available_spots - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IncrementAvailable returns one seat, clamped at total_spots so a stray
// double increment can never push the counter past capacity.
func (r *scheduleRepository) IncrementAvailable(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).
		Model(&models.Schedule{}).
		Where("id = ?", id).
		UpdateColumn("available_spots", gorm.Expr(
			"CASE WHEN available_spots + 1 > total_spots THEN total_spots ELSE available_spots + 1 END",
		)).Error
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/fitzone/gym-booking/internal/models"
	"github.com/fitzone/gym-booking/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrClassNotFound       = errors.New("class not found")
	ErrInvalidTimeRange    = errors.New("end time must be after start time")
	ErrInvalidCapacity     = errors.New("total spots must be at least 1")
	ErrCapacityBelowBooked = errors.New("total spots cannot drop below the confirmed booking count")
	ErrScheduleHasBookings = errors.New("schedule still has confirmed bookings")
)

// ScheduleUpdate carries the editable schedule fields; nil means unchanged.
type ScheduleUpdate struct {
	StartTime  *time.Time
	EndTime    *time.Time
	Room       *string
	Status     *models.ScheduleStatus
	TotalSpots *int
}

type ScheduleService interface {
	CreateSchedule(ctx context.Context, schedule *models.Schedule) error
	GetSchedule(ctx context.Context, id uint) (*models.Schedule, error)
	ListSchedules(ctx context.Context, filter repository.ScheduleFilter) ([]models.Schedule, error)
	UpdateSchedule(ctx context.Context, id uint, update ScheduleUpdate) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id uint) error
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	classRepo    repository.ClassRepository
	bookingRepo  repository.BookingRepository
}

func NewScheduleService(
	scheduleRepo repository.ScheduleRepository,
	classRepo repository.ClassRepository,
	bookingRepo repository.BookingRepository,
) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		classRepo:    classRepo,
		bookingRepo:  bookingRepo,
	}
}

func (s *scheduleService) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	if _, err := s.classRepo.FindByID(ctx, schedule.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		return err
	}
	if !schedule.EndTime.After(schedule.StartTime) {
		return ErrInvalidTimeRange
	}
	if schedule.TotalSpots < 1 {
		return ErrInvalidCapacity
	}

	schedule.AvailableSpots = schedule.TotalSpots
	if schedule.Status == "" {
		schedule.Status = models.ScheduleScheduled
	}
	return s.scheduleRepo.Create(ctx, schedule)
}

func (s *scheduleService) GetSchedule(ctx context.Context, id uint) (*models.Schedule, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) ListSchedules(ctx context.Context, filter repository.ScheduleFilter) ([]models.Schedule, error) {
	return s.scheduleRepo.FindAll(ctx, filter)
}

// UpdateSchedule edits descriptive fields under a row lock. Shrinking
// total_spots is rejected whenever it would drop below the confirmed booking
// count; otherwise available_spots moves by the same delta as total_spots.
func (s *scheduleService) UpdateSchedule(ctx context.Context, id uint, update ScheduleUpdate) (*models.Schedule, error) {
	var result *models.Schedule

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		schedule, err := s.scheduleRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}

		if update.StartTime != nil {
			schedule.StartTime = *update.StartTime
		}
		if update.EndTime != nil {
			schedule.EndTime = *update.EndTime
		}
		if !schedule.EndTime.After(schedule.StartTime) {
			return ErrInvalidTimeRange
		}
		if update.Room != nil {
			schedule.Room = *update.Room
		}
		if update.Status != nil {
			schedule.Status = *update.Status
		}

		if update.TotalSpots != nil && *update.TotalSpots != schedule.TotalSpots {
			newTotal := *update.TotalSpots
			if newTotal < 1 {
				return ErrInvalidCapacity
			}
			booked := schedule.TotalSpots - schedule.AvailableSpots
			if newTotal < booked {
				return ErrCapacityBelowBooked
			}
			schedule.AvailableSpots = newTotal - booked
			schedule.TotalSpots = newTotal
		}

		if err := s.scheduleRepo.Save(ctx, tx, schedule); err != nil {
			return err
		}
		result = schedule
		return nil
	})

	return result, err
}

func (s *scheduleService) DeleteSchedule(ctx context.Context, id uint) error {
	return s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.scheduleRepo.FindByIDForUpdate(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}

		confirmed, err := s.bookingRepo.CountConfirmedBySchedule(ctx, tx, id)
		if err != nil {
			return err
		}
		if confirmed > 0 {
			return ErrScheduleHasBookings
		}

		return s.scheduleRepo.Delete(ctx, tx, id)
	})
}

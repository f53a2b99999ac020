package service

import (
	"context"
	"errors"

	"github.com/fitzone/gym-booking/internal/metrics"
	"github.com/fitzone/gym-booking/internal/models"
	"github.com/fitzone/gym-booking/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound    = errors.New("schedule not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrScheduleFull        = errors.New("class is full")
	ErrScheduleNotBookable = errors.New("schedule is not open for booking")
	ErrAlreadyBooked       = errors.New("user already has a confirmed booking for this schedule")
	ErrAlreadyCancelled    = errors.New("only confirmed bookings can be cancelled")
	ErrNotBookingOwner     = errors.New("booking belongs to another user")
	ErrIneligibleRole      = errors.New("only customers can book classes")
)

// EventPublisher emits domain events after a successful mutation. Implemented
// by rabbitmq.Publisher; a nil publisher disables publishing.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, scheduleID uint) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uint, requestingUserID string) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	GetScheduleBookings(ctx context.Context, scheduleID uint, status *models.BookingStatus) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo  repository.BookingRepository
	scheduleRepo repository.ScheduleRepository
	userRepo     repository.UserRepository
	publisher    EventPublisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	scheduleRepo repository.ScheduleRepository,
	userRepo repository.UserRepository,
	publisher EventPublisher,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		publisher:    publisher,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, scheduleID uint) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Schedule must exist and be open
		schedule, err := s.scheduleRepo.FindByID(ctx, scheduleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}
		if schedule.Status != models.ScheduleScheduled {
			return ErrScheduleNotBookable
		}

		// 2. Fast-path capacity check; the conditional decrement below is the
		// authoritative one
		if schedule.IsFull() {
			return ErrScheduleFull
		}

		// 3. No existing confirmed booking for this user + schedule
		_, err = s.bookingRepo.FindConfirmedByUserAndSchedule(ctx, tx, userID, scheduleID)
		if err == nil {
			return ErrAlreadyBooked
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 4. Requesting user must exist and hold the customer role
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if user.Role != models.RoleCustomer {
			return ErrIneligibleRole
		}

		// 5. Take a seat; zero rows matched means another request won the last one
		taken, err := s.scheduleRepo.DecrementAvailable(ctx, tx, scheduleID)
		if err != nil {
			return err
		}
		if !taken {
			return ErrScheduleFull
		}

		// 6. Insert the booking; the partial unique index catches a same-user
		// race that slipped past step 3
		booking := &models.Booking{
			UserID:     userID,
			ScheduleID: scheduleID,
			Status:     models.StatusConfirmed,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyBooked
			}
			return err
		}

		result = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrScheduleFull) {
			metrics.BookingsRejectedFull.Inc()
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", result)
	}
	return result, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID uint, requestingUserID string) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.UserID != requestingUserID {
			return ErrNotBookingOwner
		}

		// The status guard makes the flip and the seat return a single atomic
		// unit: a duplicate concurrent cancel matches zero rows and never
		// double-increments
		cancelled, err := s.bookingRepo.CancelIfConfirmed(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !cancelled {
			return ErrAlreadyCancelled
		}

		if err := s.scheduleRepo.IncrementAvailable(ctx, tx, booking.ScheduleID); err != nil {
			return err
		}

		booking.Status = models.StatusCancelled
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	metrics.BookingsCancelled.Inc()
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.cancelled", result)
	}
	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.bookingRepo.FindByUserID(ctx, userID)
}

func (s *bookingService) GetScheduleBookings(ctx context.Context, scheduleID uint, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindByScheduleID(ctx, scheduleID, status)
}

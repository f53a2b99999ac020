package service

import (
	"context"
	"errors"

	"github.com/fitzone/gym-booking/internal/models"
	"github.com/fitzone/gym-booking/internal/repository"
	"gorm.io/gorm"
)

var ErrInvalidDuration = errors.New("class duration must be between 15 and 180 minutes")

type ClassService interface {
	CreateClass(ctx context.Context, class *models.Class) error
	GetClass(ctx context.Context, id uint) (*models.Class, error)
	ListClasses(ctx context.Context) ([]models.Class, error)
	UpdateClass(ctx context.Context, id uint, class *models.Class) (*models.Class, error)
	DeleteClass(ctx context.Context, id uint) error
}

type classService struct {
	classRepo repository.ClassRepository
}

func NewClassService(classRepo repository.ClassRepository) ClassService {
	return &classService{classRepo: classRepo}
}

func (s *classService) CreateClass(ctx context.Context, class *models.Class) error {
	if class.DurationMinutes < 15 || class.DurationMinutes > 180 {
		return ErrInvalidDuration
	}
	if class.MaxCapacity <= 0 {
		class.MaxCapacity = 20
	}
	class.IsActive = true
	return s.classRepo.Create(ctx, class)
}

func (s *classService) GetClass(ctx context.Context, id uint) (*models.Class, error) {
	class, err := s.classRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return class, nil
}

func (s *classService) ListClasses(ctx context.Context) ([]models.Class, error) {
	return s.classRepo.FindAll(ctx)
}

func (s *classService) UpdateClass(ctx context.Context, id uint, update *models.Class) (*models.Class, error) {
	class, err := s.GetClass(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		class.Name = update.Name
	}
	if update.Description != "" {
		class.Description = update.Description
	}
	if update.DurationMinutes != 0 {
		if update.DurationMinutes < 15 || update.DurationMinutes > 180 {
			return nil, ErrInvalidDuration
		}
		class.DurationMinutes = update.DurationMinutes
	}
	if update.InstructorID != "" {
		class.InstructorID = update.InstructorID
	}
	if update.Level != "" {
		class.Level = update.Level
	}
	if update.Category != "" {
		class.Category = update.Category
	}
	if update.MaxCapacity > 0 {
		class.MaxCapacity = update.MaxCapacity
	}

	if err := s.classRepo.Save(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *classService) DeleteClass(ctx context.Context, id uint) error {
	if _, err := s.GetClass(ctx, id); err != nil {
		return err
	}
	return s.classRepo.Delete(ctx, id)
}

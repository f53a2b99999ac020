package repository

import (
	"context"

	"github.com/fitzone/gym-booking/internal/models"
	"gorm.io/gorm"
)

type PlanRepository interface {
	FindActive(ctx context.Context) ([]models.MembershipPlan, error)
	FindByID(ctx context.Context, id uint) (*models.MembershipPlan, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, plans []models.MembershipPlan) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) FindActive(ctx context.Context) ([]models.MembershipPlan, error) {
	var plans []models.MembershipPlan
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) FindByID(ctx context.Context, id uint) (*models.MembershipPlan, error) {
	var plan models.MembershipPlan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MembershipPlan{}).Count(&count).Error
	return count, err
}

func (r *planRepository) CreateBatch(ctx context.Context, plans []models.MembershipPlan) error {
	return r.db.WithContext(ctx).Create(&plans).Error
}

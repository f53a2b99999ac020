package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fitzone/gym-booking/internal/metrics"
	"github.com/fitzone/gym-booking/internal/models"
	"github.com/fitzone/gym-booking/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidPlan        = errors.New("invalid membership plan")
	ErrNoActiveMembership = errors.New("no active membership subscription")
)

type MembershipService interface {
	GetAvailablePlans(ctx context.Context) ([]models.MembershipPlan, error)
	InitializeMembership(ctx context.Context, userID string, planID uint) (*models.Membership, error)
	CheckMembershipStatus(ctx context.Context, userID string) (*models.Membership, error)
	CancelMembership(ctx context.Context, userID string) (*models.Membership, error)
	RenewMembership(ctx context.Context, userID string, planID uint) (*models.Membership, error)
}

type membershipService struct {
	userRepo  repository.UserRepository
	planRepo  repository.PlanRepository
	publisher EventPublisher
	now       func() time.Time
}

func NewMembershipService(userRepo repository.UserRepository, planRepo repository.PlanRepository, publisher EventPublisher) MembershipService {
	return &membershipService{
		userRepo:  userRepo,
		planRepo:  planRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *membershipService) GetAvailablePlans(ctx context.Context) ([]models.MembershipPlan, error) {
	return s.planRepo.FindActive(ctx)
}

func (s *membershipService) InitializeMembership(ctx context.Context, userID string, planID uint) (*models.Membership, error) {
	plan, err := s.activePlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	if _, err := s.findUser(ctx, userID); err != nil {
		return nil, err
	}

	start := s.now()
	end := start.AddDate(0, 0, plan.DurationDays)
	membership := models.Membership{
		Status:    models.MembershipActive,
		Type:      planType(plan.Name),
		StartDate: &start,
		EndDate:   &end,
		PlanID:    &plan.ID,
		AutoRenew: true,
	}

	if err := s.userRepo.UpdateMembership(ctx, userID, membership); err != nil {
		return nil, err
	}
	return &membership, nil
}

// CheckMembershipStatus is the lazy-expiry read path: an active membership
// whose end date has passed is corrected to expired and persisted before
// returning. The conditional update keeps a second call a no-op.
func (s *membershipService) CheckMembershipStatus(ctx context.Context, userID string) (*models.Membership, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	m := user.Membership
	if m.Status == models.MembershipActive && m.EndDate != nil && !s.now().Before(*m.EndDate) {
		if _, err := s.userRepo.ExpireMembership(ctx, userID); err != nil {
			return nil, err
		}
		m.Status = models.MembershipExpired
	}
	return &m, nil
}

// CancelMembership turns off auto-renew and marks the membership cancelled.
// The end date is untouched: the user keeps access until the original expiry.
func (s *membershipService) CancelMembership(ctx context.Context, userID string) (*models.Membership, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	m := user.Membership
	if m.Status != models.MembershipActive {
		return nil, ErrNoActiveMembership
	}

	m.Status = models.MembershipCancelled
	m.AutoRenew = false
	if err := s.userRepo.UpdateMembership(ctx, userID, m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *membershipService) RenewMembership(ctx context.Context, userID string, planID uint) (*models.Membership, error) {
	plan, err := s.activePlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := now
	current := user.Membership
	// An unexpired active membership stacks: the new interval starts where the
	// current one ends, so no paid time is lost
	if current.Status == models.MembershipActive && current.EndDate != nil && current.EndDate.After(now) {
		start = *current.EndDate
	}
	end := start.AddDate(0, 0, plan.DurationDays)

	membership := models.Membership{
		Status:    models.MembershipActive,
		Type:      planType(plan.Name),
		StartDate: &start,
		EndDate:   &end,
		PlanID:    &plan.ID,
		AutoRenew: true,
	}

	if err := s.userRepo.UpdateMembership(ctx, userID, membership); err != nil {
		return nil, err
	}

	metrics.MembershipsRenewed.Inc()
	if s.publisher != nil {
		_ = s.publisher.Publish("membership.renewed", map[string]any{
			"user_id": userID,
			"plan_id": plan.ID,
			"end":     end,
		})
	}
	return &membership, nil
}

func (s *membershipService) activePlan(ctx context.Context, planID uint) (*models.MembershipPlan, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidPlan
		}
		return nil, err
	}
	if !plan.IsActive {
		return nil, ErrInvalidPlan
	}
	return plan, nil
}

func (s *membershipService) findUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func planType(planName string) string {
	name := strings.ToLower(planName)
	switch {
	case strings.Contains(name, "week"):
		return "weekly"
	case strings.Contains(name, "month"):
		return "monthly"
	default:
		return "yearly"
	}
}

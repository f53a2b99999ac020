package service

import (
	"context"
	"errors"

	"github.com/fitzone/gym-booking/internal/models"
	"github.com/fitzone/gym-booking/internal/repository"
	"github.com/fitzone/gym-booking/pkg/auth"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService interface {
	Register(ctx context.Context, email, password string, role models.Role, planID *uint) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type authService struct {
	userRepo      repository.UserRepository
	membershipSvc MembershipService
	tokens        *auth.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, membershipSvc MembershipService, tokens *auth.TokenManager) AuthService {
	return &authService{
		userRepo:      userRepo,
		membershipSvc: membershipSvc,
		tokens:        tokens,
	}
}

// Register creates the user and, when a plan is given, activates a membership
// for it in the same request (registration-with-plan flow).
func (s *authService) Register(ctx context.Context, email, password string, role models.Role, planID *uint) (*models.User, error) {
	if role == "" {
		role = models.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: string(hash),
		Role:     role,
		Membership: models.Membership{
			Status: models.MembershipNone,
		},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if planID != nil {
		membership, err := s.membershipSvc.InitializeMembership(ctx, user.ID, *planID)
		if err != nil {
			return nil, err
		}
		user.Membership = *membership
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.CreateAccessToken(user.ID, string(user.Role), user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

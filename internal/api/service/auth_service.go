package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/internal/api/repository"
	"github.com/strongDoorknob/moodsy/internal/entity"
	"github.com/strongDoorknob/moodsy/pkg/apperror"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService manages accounts and token issuance.
type AuthService interface {
	Register(ctx context.Context, req *dto.CredentialsRequest) error
	Login(ctx context.Context, req *dto.CredentialsRequest) (*dto.TokenPairResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AccessTokenResponse, error)
	Authenticate(ctx context.Context, accessToken string) (uint, error)
	Me(ctx context.Context, userID uint) (*dto.MeResponse, error)
	UpgradeToPro(ctx context.Context, userID uint) (*dto.UpgradeResponse, error)
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens TokenService, log *logger.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   log,
		hashCost: bcrypt.DefaultCost,
	}
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	logger   *logger.Logger
	hashCost int
}

// Register creates the account and its profile together.
func (s *authService) Register(ctx context.Context, req *dto.CredentialsRequest) error {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return apperror.InvalidRequest("Email and password are required.")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return apperror.Conflict("User already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, PasswordHash: string(hash)}
	if err := s.userRepo.CreateWithProfile(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("User already exists.")
		}
		s.logger.Error("Failed to create user", logger.ErrorField(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", logger.Field("user_id", user.ID))
	return nil
}

func (s *authService) Login(ctx context.Context, req *dto.CredentialsRequest) (*dto.TokenPairResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Auth("Invalid credentials")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Auth("Invalid credentials")
	}

	access, refresh, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{Refresh: refresh, Access: access}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AccessTokenResponse, error) {
	if req.Refresh == "" {
		return nil, apperror.InvalidRequest("This field is required.")
	}
	access, err := s.tokens.Refresh(req.Refresh)
	if err != nil {
		return nil, err
	}
	return &dto.AccessTokenResponse{Access: access}, nil
}

func (s *authService) Authenticate(ctx context.Context, accessToken string) (uint, error) {
	return s.tokens.ParseAccess(accessToken)
}

func (s *authService) Me(ctx context.Context, userID uint) (*dto.MeResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	isPro := false
	if user.Profile != nil {
		isPro = user.Profile.IsPro
	}
	return &dto.MeResponse{Email: user.Email, ID: user.ID, IsPro: isPro}, nil
}

// UpgradeToPro flips the pro flag on. There is no way back.
func (s *authService) UpgradeToPro(ctx context.Context, userID uint) (*dto.UpgradeResponse, error) {
	if _, err := s.userRepo.UpgradeToPro(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("No profile found")
		}
		s.logger.Error("Failed to upgrade user", logger.ErrorField(err), logger.Field("user_id", userID))
		return nil, fmt.Errorf("failed to upgrade user: %w", err)
	}

	s.logger.Info("User upgraded to pro", logger.Field("user_id", userID))
	return &dto.UpgradeResponse{Detail: "User upgraded to Pro successfully.", IsPro: true}, nil
}

func (s *authService) findUser(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Auth("User not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

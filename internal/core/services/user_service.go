package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
	"github.com/bvtvshop/inventory_backend/internal/platform/config"
	"github.com/bvtvshop/inventory_backend/internal/utils"
)

// ErrInvalidCredentials is returned on login with a wrong username or
// password. The handler maps it to 401 without saying which one was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// userService manages application users.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// authService issues JWTs carrying the role claim the transition guards
// consume.
type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a new user account. Self-registration always gets the
// CUSTOMER role; elevated roles are assigned out of band.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := s.GetLogger(ctx)

	role := domain.RoleCustomer
	if req.Role != "" {
		role = domain.UserRole(req.Role)
		if !domain.ValidUserRole(role) {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
		}
		if role == domain.RoleAdmin {
			return nil, fmt.Errorf("%w: the ADMIN role cannot be self-assigned", apperrors.ErrForbidden)
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:   uuid.NewString(),
		Username: req.Username,
		Name:     req.Name,
		Role:     role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "self-registration",
			LastUpdatedAt: now,
			LastUpdatedBy: "self-registration",
		},
	}
	if err := s.userRepo.SaveUser(ctx, user, hash); err != nil {
		s.LogError(ctx, err, "Failed to save user", "username", req.Username)
		return nil, err
	}
	logger.Info("User registered", "user_id", user.UserID, "role", string(role))
	return &user, nil
}

// Login verifies credentials and returns a signed JWT plus the user.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error) {
	logger := s.GetLogger(ctx)

	user, hash, err := s.userRepo.FindUserCredentialsByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !utils.CheckPasswordHash(req.Password, hash) {
		logger.Warn("Login failed: password mismatch", "username", req.Username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", "user_id", user.UserID)
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	logger.Info("User logged in", "user_id", user.UserID)
	return token, user, nil
}

package services

import (
	"context"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// UserSvcFacade exposes user lookups.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// AuthSvcFacade exposes registration and login. The wider identity subsystem
// is external; this service only issues tokens carrying the role claim the
// transition guards consume.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Login verifies credentials and returns a signed JWT plus the user.
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error)
}

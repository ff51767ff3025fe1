package repositories

import (
	"context"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence for application users.
type UserRepositoryFacade interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserCredentialsByUsername returns the user plus the stored password
	// hash for login verification.
	FindUserCredentialsByUsername(ctx context.Context, username string) (*domain.User, string, error)

	// SaveUser persists a new user with the given password hash. A username
	// collision surfaces as ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error
}

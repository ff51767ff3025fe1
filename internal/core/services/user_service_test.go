package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/core/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
	"github.com/bvtvshop/inventory_backend/internal/platform/config"
	"github.com/bvtvshop/inventory_backend/internal/utils"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserCredentialsByUsername(ctx context.Context, username string) (*domain.User, string, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	args := m.Called(ctx, user, passwordHash)
	return args.Error(0)
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.AuthSvcFacade
	cfg          *config.Config
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "inventory-backend-test",
	}
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.cfg)
}

func (suite *AuthServiceTestSuite) TestRegister_DefaultsToCustomer() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "lan.pham", Name: "Lan Pham", Password: "hunter2hunter2"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "lan.pham" && u.Role == domain.RoleCustomer && u.UserID != ""
	}), mock.AnythingOfType("string")).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleCustomer, user.Role)
	suite.Equal("self-registration", user.CreatedBy)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_AdminCannotBeSelfAssigned() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "eve", Name: "Eve", Password: "hunter2hunter2", Role: string(domain.RoleAdmin)}

	_, err := suite.service.Register(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_UnknownRole() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "bob", Name: "Bob", Password: "hunter2hunter2", Role: "SUPERVISOR"}

	_, err := suite.service.Register(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	suite.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Username: "lan.pham", Role: domain.RoleStaff}

	suite.mockUserRepo.On("FindUserCredentialsByUsername", ctx, "lan.pham").Return(user, string(hash), nil).Once()

	token, loggedIn, err := suite.service.Login(ctx, dto.LoginRequest{Username: "lan.pham", Password: "correct-password"})

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.Equal("user-1", loggedIn.UserID)

	// The token must carry the user id and role claims the guards consume.
	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("user-1", claims.Subject)
	suite.Equal(string(domain.RoleStaff), claims.Role)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	suite.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Username: "lan.pham", Role: domain.RoleStaff}

	suite.mockUserRepo.On("FindUserCredentialsByUsername", ctx, "lan.pham").Return(user, string(hash), nil).Once()

	_, _, err = suite.service.Login(ctx, dto.LoginRequest{Username: "lan.pham", Password: "wrong"})

	suite.Require().ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserCredentialsByUsername", ctx, "ghost").Return(nil, "", apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "whatever"})

	suite.Require().ErrorIs(err, services.ErrInvalidCredentials, "an unknown username must not read differently from a wrong password")
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

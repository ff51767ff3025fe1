package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// profileService manages counterparty profiles.
type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo portsrepo.ProfileRepositoryFacade) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) CreateProfile(ctx context.Context, req dto.CreateProfileRequest, actor domain.Actor) (*domain.Profile, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: creating profiles requires the ADMIN role", apperrors.ErrForbidden)
	}
	role := domain.UserRole(req.Role)
	if !domain.ValidUserRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	now := time.Now()
	profile := domain.Profile{
		ProfileID: uuid.NewString(),
		Name:      req.Name,
		Role:      role,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		s.LogError(ctx, err, "Failed to save profile", "name", req.Name)
		return nil, err
	}
	return &profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, profileID string, req dto.UpdateProfileRequest, actor domain.Actor) (*domain.Profile, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: updating profiles requires the ADMIN role", apperrors.ErrForbidden)
	}

	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if !domain.ValidUserRole(role) {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
		}
		profile.Role = role
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	profile.LastUpdatedAt = time.Now()
	profile.LastUpdatedBy = actor.UserID

	if err := s.profileRepo.UpdateProfile(ctx, *profile); err != nil {
		s.LogError(ctx, err, "Failed to update profile", "profile_id", profileID)
		return nil, err
	}
	return profile, nil
}

func (s *profileService) GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	return s.profileRepo.FindProfileByID(ctx, profileID)
}

func (s *profileService) ListProfiles(ctx context.Context, params dto.ListProfilesParams) ([]domain.Profile, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	var role domain.UserRole
	if params.Role != "" {
		role = domain.UserRole(params.Role)
		if !domain.ValidUserRole(role) {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, params.Role)
		}
	}
	return s.profileRepo.ListProfiles(ctx, role, limit, offset)
}

package dto

import "github.com/bvtvshop/inventory_backend/internal/core/domain"

// CreateProfileRequest registers a counterparty profile.
type CreateProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

// UpdateProfileRequest edits a counterparty profile. Nil fields unchanged.
type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Role    *string `json:"role"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

// ProfileResponse is a counterparty profile in a response.
type ProfileResponse struct {
	ProfileID string `json:"profileID"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
}

// ListProfilesParams filters the profile list.
type ListProfilesParams struct {
	Role   string `form:"role"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// ToProfileResponse converts a domain profile.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ProfileID: p.ProfileID,
		Name:      p.Name,
		Role:      string(p.Role),
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
	}
}

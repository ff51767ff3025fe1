package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// ProfileHandler handles HTTP requests for counterparty profiles.
type ProfileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService portssvc.ProfileSvcFacade) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// registerProfileRoutes registers profile specific routes
func registerProfileRoutes(group *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := NewProfileHandler(profileService)
	profiles := group.Group("/profiles")
	{
		profiles.POST("", h.Create)
		profiles.GET("", h.List)
		profiles.GET("/:profileID", h.Get)
		profiles.PUT("/:profileID", h.Update)
	}
}

// Create godoc
// @Summary Create a counterparty profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body dto.CreateProfileRequest true "Profile"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /profiles [post]
// @Security BearerAuth
func (h *ProfileHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	profile, err := h.profileService.CreateProfile(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

// List godoc
// @Summary List counterparty profiles
// @Tags profiles
// @Produce json
// @Param role query string false "Filter by role (SUPPLIER, CUSTOMER, ...)"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.ProfileResponse
// @Router /profiles [get]
// @Security BearerAuth
func (h *ProfileHandler) List(c *gin.Context) {
	var params dto.ListProfilesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	profiles, err := h.profileService.ListProfiles(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.ProfileResponse, len(profiles))
	for i := range profiles {
		out[i] = dto.ToProfileResponse(&profiles[i])
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Get a counterparty profile
// @Tags profiles
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /profiles/{profileID} [get]
// @Security BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.GetProfileByID(c.Request.Context(), c.Param("profileID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// Update godoc
// @Summary Update a counterparty profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param profile body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.ProfileResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /profiles/{profileID} [put]
// @Security BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	profile, err := h.profileService.UpdateProfile(c.Request.Context(), c.Param("profileID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type userTypeRequest struct {
	UserType string `json:"user_type" binding:"required"`
}

type preferenceRequest struct {
	Preference string `json:"preference" binding:"required"`
}

type onboardingRequest struct {
	Vehicle     string   `json:"vehicle" binding:"required"`
	Preferences []string `json:"preferences"`
}

// GetProfile обработчик для GET /api/profile.
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.ProfileService.Get(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SetUserType обработчик для PUT /api/profile/type.
func (h *Handler) SetUserType(c *gin.Context) {
	var req userTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	profile, err := h.ProfileService.SetUserType(c.Request.Context(), req.UserType)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ToggleDarkMode обработчик для POST /api/profile/dark-mode.
func (h *Handler) ToggleDarkMode(c *gin.Context) {
	profile, err := h.ProfileService.ToggleDarkMode(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Onboard обработчик для POST /api/profile/onboarding.
func (h *Handler) Onboard(c *gin.Context) {
	var req onboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	profile, err := h.ProfileService.Onboard(c.Request.Context(), req.Vehicle, req.Preferences)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// TogglePreference обработчик для POST /api/profile/preferences/toggle.
func (h *Handler) TogglePreference(c *gin.Context) {
	var req preferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	profile, err := h.ProfileService.TogglePreference(c.Request.Context(), req.Preference)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListAchievements обработчик для GET /api/profile/achievements.
func (h *Handler) ListAchievements(c *gin.Context) {
	c.JSON(http.StatusOK, h.ProfileService.Achievements())
}

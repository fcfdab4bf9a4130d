package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListFolders обработчик для GET /api/favorites/folders.
func (h *Handler) ListFolders(c *gin.Context) {
	folders, err := h.FavoriteService.Folders(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, folders)
}

// CreateFolder обработчик для POST /api/favorites/folders.
func (h *Handler) CreateFolder(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	folder, err := h.FavoriteService.CreateFolder(c.Request.Context(), req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, folder)
}

// ListPlaces обработчик для GET /api/favorites/places?folder=.
func (h *Handler) ListPlaces(c *gin.Context) {
	places, err := h.FavoriteService.Places(c.Request.Context(), c.Query("folder"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

// ToggleOffline обработчик для POST /api/favorites/offline/toggle.
func (h *Handler) ToggleOffline(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	offline, added, err := h.FavoriteService.ToggleOffline(c.Request.Context(), req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offline": offline, "member": added})
}

// ListTrips обработчик для GET /api/favorites/trips.
func (h *Handler) ListTrips(c *gin.Context) {
	c.JSON(http.StatusOK, h.FavoriteService.Trips())
}

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"campwise/internal/apperr"
	"campwise/internal/service"

	"github.com/gin-gonic/gin"
)

type nameRequest struct {
	Name string `json:"name" binding:"required"`
}

type filterToggleRequest struct {
	Active []string `json:"active"`
	Filter string   `json:"filter" binding:"required"`
}

// ListCampsites обработчик для GET /api/campsites?q=&min_rating=&tags=a,b.
func (h *Handler) ListCampsites(c *gin.Context) {
	query := service.CampsiteQuery{Keyword: c.Query("q")}
	if raw := c.Query("min_rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.fail(c, apperr.Validation("invalid min_rating %q", raw))
			return
		}
		query.MinRating = rating
	}
	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				query.Tags = append(query.Tags, tag)
			}
		}
	}
	campsites, err := h.CampsiteService.Search(c.Request.Context(), query)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, campsites)
}

// GetCampsite обработчик для GET /api/campsites/:id.
func (h *Handler) GetCampsite(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	campsite, err := h.CampsiteService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, campsite)
}

// ListFilters обработчик для GET /api/campsites/filters - группы фильтров и готовые наборы.
func (h *Handler) ListFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.CampsiteService.FilterCategories(),
		"presets":    h.CampsiteService.SmartPresets(),
	})
}

// ListSaved обработчик для GET /api/campsites/saved.
func (h *Handler) ListSaved(c *gin.Context) {
	saved, err := h.CampsiteService.Saved(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// ToggleSaved обработчик для POST /api/campsites/saved/toggle.
func (h *Handler) ToggleSaved(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	saved, added, err := h.CampsiteService.ToggleSaved(c.Request.Context(), req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved, "member": added})
}

// ApplyPreset обработчик для GET /api/campsites/presets/:name - фильтры готового набора.
func (h *Handler) ApplyPreset(c *gin.Context) {
	name := c.Param("name")
	filters, err := h.CampsiteService.ApplyPreset(name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "filters": filters})
}

// ToggleFilter обработчик для POST /api/campsites/filters/toggle.
// Активные фильтры хранит клиент и присылает их вместе с переключаемым.
func (h *Handler) ToggleFilter(c *gin.Context) {
	var req filterToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": h.CampsiteService.ToggleFilter(req.Active, req.Filter)})
}

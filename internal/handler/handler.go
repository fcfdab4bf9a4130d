package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"campwise/internal/apperr"
	"campwise/internal/metrics"
	"campwise/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	ChatService     *service.ChatService
	CampsiteService *service.CampsiteService
	FavoriteService *service.FavoriteService
	PlanService     *service.PlanService
	ProfileService  *service.ProfileService
	metrics         *metrics.Collector
	logger          *zap.Logger
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(cs *service.ChatService, cps *service.CampsiteService, fs *service.FavoriteService,
	ps *service.PlanService, prs *service.ProfileService, collector *metrics.Collector, logger *zap.Logger) *Handler {
	return &Handler{
		ChatService:     cs,
		CampsiteService: cps,
		FavoriteService: fs,
		PlanService:     ps,
		ProfileService:  prs,
		metrics:         collector,
		logger:          logger,
	}
}

// Router собирает gin.Engine со всеми маршрутами API.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(h.metrics.Handler()))

	api := router.Group("/api")
	{
		api.POST("/assistant/classify", h.Classify)
		api.GET("/assistant/presets", h.ListPresets)

		api.POST("/chat/sessions", h.OpenSession)
		api.GET("/chat/sessions/:id", h.GetSession)
		api.POST("/chat/sessions/:id/messages", h.SendMessage)
		api.POST("/chat/sessions/:id/presets", h.SendPreset)
		api.DELETE("/chat/sessions/:id", h.CloseSession)

		api.GET("/campsites", h.ListCampsites)
		api.GET("/campsites/filters", h.ListFilters)
		api.POST("/campsites/filters/toggle", h.ToggleFilter)
		api.GET("/campsites/presets/:name", h.ApplyPreset)
		api.GET("/campsites/saved", h.ListSaved)
		api.POST("/campsites/saved/toggle", h.ToggleSaved)
		api.GET("/campsites/:id", h.GetCampsite)

		api.GET("/favorites/folders", h.ListFolders)
		api.POST("/favorites/folders", h.CreateFolder)
		api.GET("/favorites/places", h.ListPlaces)
		api.POST("/favorites/offline/toggle", h.ToggleOffline)
		api.GET("/favorites/trips", h.ListTrips)

		api.GET("/trips/:id/itinerary", h.GetItinerary)
		api.POST("/trips/:id/itinerary/move", h.MoveItinerary)
		api.POST("/trips/:id/optimize", h.OptimizeTrip)
		api.POST("/trips/:id/plan", h.PlanTrip)
		api.GET("/weather", h.GetWeather)

		api.GET("/profile", h.GetProfile)
		api.PUT("/profile/type", h.SetUserType)
		api.POST("/profile/dark-mode", h.ToggleDarkMode)
		api.POST("/profile/onboarding", h.Onboard)
		api.POST("/profile/preferences/toggle", h.TogglePreference)
		api.GET("/profile/achievements", h.ListAchievements)
	}
	return router
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		h.metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		h.logger.Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// fail переводит ошибку сервиса в JSON-ответ.
func (h *Handler) fail(c *gin.Context, err error) {
	status := apperr.Status(err)
	var appErr *apperr.Error
	if errors.As(err, &appErr) && status < http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": appErr.Message, "type": appErr.Type})
		return
	}
	h.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(status, gin.H{"error": "internal error"})
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "type": apperr.TypeValidation})
}

func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperr.Validation("invalid id %q", c.Param("id"))
	}
	return id, nil
}

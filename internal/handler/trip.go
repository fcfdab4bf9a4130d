package handler

import (
	"context"
	"errors"
	"net/http"

	"campwise/internal/apperr"
	"campwise/internal/async"

	"github.com/gin-gonic/gin"
)

type moveRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

// GetItinerary обработчик для GET /api/trips/:id/itinerary.
func (h *Handler) GetItinerary(c *gin.Context) {
	tripID, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	days, err := h.PlanService.Itinerary(c.Request.Context(), tripID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

// MoveItinerary обработчик для POST /api/trips/:id/itinerary/move - перенос пункта маршрута.
func (h *Handler) MoveItinerary(c *gin.Context) {
	tripID, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	days, err := h.PlanService.Move(c.Request.Context(), tripID, *req.From, *req.To)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

// OptimizeTrip обработчик для POST /api/trips/:id/optimize.
func (h *Handler) OptimizeTrip(c *gin.Context) {
	tripID, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, h, h.PlanService.Optimize(c.Request.Context(), tripID), "itinerary optimization")
}

// PlanTrip обработчик для POST /api/trips/:id/plan.
func (h *Handler) PlanTrip(c *gin.Context) {
	tripID, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, h, h.PlanService.Plan(c.Request.Context(), tripID), "trip planning")
}

// GetWeather обработчик для GET /api/weather - прогноз по точкам маршрута.
func (h *Handler) GetWeather(c *gin.Context) {
	respond(c, h, h.PlanService.Weather(), "weather loading")
}

// respond ждет отложенный результат. Если клиент отключился, операция отменяется.
// Уже запущенная операция доводится до конца, и отдается ее настоящий результат.
func respond[T any](c *gin.Context, h *Handler, df *async.Deferred[T], operation string) {
	ctx := c.Request.Context()
	v, err := df.Wait(ctx)
	if err != nil && ctx.Err() != nil && !df.Cancel() {
		v, err = df.Wait(context.WithoutCancel(ctx))
	}
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, async.ErrCancelled) {
			err = apperr.Cancelled(operation, context.Cause(ctx))
		} else if errors.Is(err, async.ErrCancelled) {
			err = apperr.Cancelled(operation, err)
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

package service

import (
	"context"
	"time"

	"campwise/internal/apperr"
	"campwise/internal/async"
	"campwise/internal/fixtures"
	"campwise/internal/metrics"
	"campwise/internal/model"

	"go.uber.org/zap"
)

// TripStore - хранилище маршрутов.
type TripStore interface {
	GetItinerary(ctx context.Context, tripID int) ([]model.ItineraryDay, error)
	UpdateOrder(ctx context.Context, tripID int, dayOrder []int) error
}

// PlanDelays - длительность имитации долгих операций планирования.
type PlanDelays struct {
	Optimize time.Duration
	Weather  time.Duration
	Plan     time.Duration
}

// PlanService содержит бизнес-логику, связанную с планированием поездок (маршрутов).
type PlanService struct {
	store     TripStore
	scheduler async.Scheduler
	delays    PlanDelays
	metrics   *metrics.Collector
	logger    *zap.Logger
}

// NewPlanService создает новый сервис для работы с маршрутами.
func NewPlanService(store TripStore, scheduler async.Scheduler, delays PlanDelays, collector *metrics.Collector, logger *zap.Logger) *PlanService {
	return &PlanService{store: store, scheduler: scheduler, delays: delays, metrics: collector, logger: logger}
}

// Itinerary возвращает пункты маршрута в текущем порядке.
func (s *PlanService) Itinerary(ctx context.Context, tripID int) ([]model.ItineraryDay, error) {
	days, err := s.store.GetItinerary(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, apperr.NotFound("trip itinerary")
	}
	return days, nil
}

// Move переносит пункт маршрута с позиции from на позицию to и сохраняет новый порядок.
func (s *PlanService) Move(ctx context.Context, tripID, from, to int) ([]model.ItineraryDay, error) {
	days, err := s.Itinerary(ctx, tripID)
	if err != nil {
		return nil, err
	}
	moved, err := MoveEntry(days, from, to)
	if err != nil {
		return nil, err
	}
	if err := s.saveOrder(ctx, tripID, moved); err != nil {
		return nil, err
	}
	return moved, nil
}

// Optimize "оптимизирует" маршрут: по истечении задержки переставляет пункты по четности ID
// (сначала четные) и сохраняет порядок. Реальных расстояний для оптимизации нет.
func (s *PlanService) Optimize(ctx context.Context, tripID int) *async.Deferred[[]model.ItineraryDay] {
	ctx = context.WithoutCancel(ctx)
	return async.After(s.scheduler, s.delays.Optimize, func() ([]model.ItineraryDay, error) {
		days, err := s.Itinerary(ctx, tripID)
		if err != nil {
			return nil, err
		}
		optimized := ReorderByParity(days)
		if err := s.saveOrder(ctx, tripID, optimized); err != nil {
			return nil, err
		}
		s.metrics.ObserveOptimization()
		s.logger.Info("itinerary optimized", zap.Int("trip", tripID))
		return optimized, nil
	})
}

// Plan имитирует подбор маршрута ассистентом и возвращает текущий маршрут поездки.
func (s *PlanService) Plan(ctx context.Context, tripID int) *async.Deferred[[]model.ItineraryDay] {
	ctx = context.WithoutCancel(ctx)
	return async.After(s.scheduler, s.delays.Plan, func() ([]model.ItineraryDay, error) {
		return s.Itinerary(ctx, tripID)
	})
}

// Weather имитирует загрузку прогноза погоды по точкам маршрута.
func (s *PlanService) Weather() *async.Deferred[[]model.Forecast] {
	return async.After(s.scheduler, s.delays.Weather, func() ([]model.Forecast, error) {
		return fixtures.Forecasts(), nil
	})
}

func (s *PlanService) saveOrder(ctx context.Context, tripID int, days []model.ItineraryDay) error {
	ids := make([]int, 0, len(days))
	for i := range days {
		ids = append(ids, days[i].ID)
		days[i].Order = i + 1
	}
	if err := s.store.UpdateOrder(ctx, tripID, ids); err != nil {
		return apperr.Internal("failed to save itinerary order", err)
	}
	return nil
}

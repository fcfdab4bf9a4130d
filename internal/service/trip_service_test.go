package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"campwise/internal/apperr"
	"campwise/internal/async"
	"campwise/internal/async/asynctest"
	"campwise/internal/fixtures"
	"campwise/internal/metrics"
	"campwise/internal/model"
	"campwise/internal/repository"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testDelays = PlanDelays{Optimize: 2 * time.Second, Weather: 1500 * time.Millisecond, Plan: 2 * time.Second}

func newPlanService(t *testing.T, scheduler async.Scheduler, collector *metrics.Collector) *PlanService {
	return NewPlanService(repository.NewTripRepository(newTestDB(t)), scheduler, testDelays, collector, zap.NewNop())
}

func TestPlanItinerary(t *testing.T) {
	svc := newPlanService(t, async.Immediate{}, nil)

	got, err := svc.Itinerary(context.Background(), fixtures.DemoTripID)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Itinerary(), got)

	_, err = svc.Itinerary(context.Background(), 42)
	assert.True(t, apperr.Is(err, apperr.TypeNotFound))
}

func TestPlanOptimizePersistsParityOrder(t *testing.T) {
	collector := metrics.NewCollector("test")
	svc := newPlanService(t, async.Immediate{}, collector)
	ctx := context.Background()

	optimized, err := svc.Optimize(ctx, fixtures.DemoTripID).Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 1, 3}, ids(optimized))
	for i, d := range optimized {
		assert.Equal(t, i+1, d.Order)
	}

	stored, err := svc.Itinerary(ctx, fixtures.DemoTripID)
	require.NoError(t, err)
	assert.Equal(t, optimized, stored)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Optimized))

	// повторная оптимизация ничего не меняет
	again, err := svc.Optimize(ctx, fixtures.DemoTripID).Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 1, 3}, ids(again))
}

func TestPlanOptimizeWaitsForDelay(t *testing.T) {
	sched := &asynctest.Manual{}
	svc := newPlanService(t, sched, nil)
	ctx := context.Background()

	df := svc.Optimize(ctx, fixtures.DemoTripID)
	assert.Equal(t, []time.Duration{testDelays.Optimize}, sched.Delays())

	stored, err := svc.Itinerary(ctx, fixtures.DemoTripID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(stored), "order unchanged before the delay")

	sched.Fire()
	optimized, err := df.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 1, 3}, ids(optimized))
}

func TestPlanOptimizeCancelled(t *testing.T) {
	sched := &asynctest.Manual{}
	svc := newPlanService(t, sched, nil)
	ctx := context.Background()

	df := svc.Optimize(ctx, fixtures.DemoTripID)
	df.Cancel()
	sched.Fire()

	_, err := df.Wait(ctx)
	assert.ErrorIs(t, err, async.ErrCancelled)
	stored, err := svc.Itinerary(ctx, fixtures.DemoTripID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(stored))
}

// gatedTripStore останавливает чтение маршрута, пока тест не откроет gate.
type gatedTripStore struct {
	TripStore
	entered chan struct{}
	gate    chan struct{}
}

func (s *gatedTripStore) GetItinerary(ctx context.Context, tripID int) ([]model.ItineraryDay, error) {
	select {
	case s.entered <- struct{}{}:
	default:
	}
	<-s.gate
	return s.TripStore.GetItinerary(ctx, tripID)
}

func TestPlanOptimizeCancelWhileRunning(t *testing.T) {
	sched := &asynctest.Manual{}
	store := &gatedTripStore{
		TripStore: repository.NewTripRepository(newTestDB(t)),
		entered:   make(chan struct{}, 1),
		gate:      make(chan struct{}),
	}
	svc := NewPlanService(store, sched, testDelays, nil, zap.NewNop())
	ctx := context.Background()

	df := svc.Optimize(ctx, fixtures.DemoTripID)
	fired := make(chan struct{})
	go func() {
		defer close(fired)
		sched.Fire()
	}()
	<-store.entered

	assert.False(t, df.Cancel(), "optimization already running")
	close(store.gate)
	<-fired

	optimized, err := df.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 1, 3}, ids(optimized))

	stored, err := svc.Itinerary(ctx, fixtures.DemoTripID)
	require.NoError(t, err)
	assert.Equal(t, ids(optimized), ids(stored), "reported result matches the stored order")
}

type failingTripStore struct {
	TripStore
}

func (failingTripStore) UpdateOrder(context.Context, int, []int) error {
	return errors.New("disk full")
}

func TestPlanOptimizeStoreFailure(t *testing.T) {
	store := failingTripStore{TripStore: repository.NewTripRepository(newTestDB(t))}
	svc := NewPlanService(store, async.Immediate{}, testDelays, nil, zap.NewNop())

	_, err := svc.Optimize(context.Background(), fixtures.DemoTripID).Wait(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.TypeInternal))
	assert.ErrorContains(t, err, "disk full")
}

func TestPlanOptimizeUnknownTrip(t *testing.T) {
	svc := newPlanService(t, async.Immediate{}, nil)
	_, err := svc.Optimize(context.Background(), 42).Wait(context.Background())
	assert.True(t, apperr.Is(err, apperr.TypeNotFound))
}

func TestPlanMove(t *testing.T) {
	svc := newPlanService(t, async.Immediate{}, nil)
	ctx := context.Background()

	moved, err := svc.Move(ctx, fixtures.DemoTripID, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 2, 3}, ids(moved))

	stored, err := svc.Itinerary(ctx, fixtures.DemoTripID)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 2, 3}, ids(stored))

	_, err = svc.Move(ctx, fixtures.DemoTripID, 0, 4)
	assert.True(t, apperr.Is(err, apperr.TypeValidation))
}

func TestPlanAndWeather(t *testing.T) {
	sched := &asynctest.Manual{}
	svc := newPlanService(t, sched, nil)
	ctx := context.Background()

	plan := svc.Plan(ctx, fixtures.DemoTripID)
	weather := svc.Weather()
	assert.Equal(t, []time.Duration{testDelays.Plan, testDelays.Weather}, sched.Delays())
	sched.Fire()

	days, err := plan.Wait(ctx)
	require.NoError(t, err)
	assert.Len(t, days, 4)

	forecasts, err := weather.Wait(ctx)
	require.NoError(t, err)
	require.Len(t, forecasts, 3)
	assert.Equal(t, "Byron Bay", forecasts[0].Location)
	assert.Len(t, forecasts[0].Days, 5)
}

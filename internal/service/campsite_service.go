package service

import (
	"context"
	"math"
	"slices"
	"strings"

	"campwise/internal/apperr"
	"campwise/internal/fixtures"
	"campwise/internal/model"

	"go.uber.org/zap"
)

// CampsiteStore - хранилище кемпингов и сохраненных на карте мест.
type CampsiteStore interface {
	FindByFilters(ctx context.Context, minRating float64, keyword string) ([]model.Campsite, error)
	GetByID(ctx context.Context, id int) (*model.Campsite, error)
	SavedNames(ctx context.Context) ([]string, error)
	ToggleSaved(ctx context.Context, name string) ([]string, bool, error)
}

// CampsiteQuery - параметры поиска на карте.
type CampsiteQuery struct {
	Keyword   string
	MinRating float64
	Tags      []string // активные фильтры; кемпинг должен иметь все
}

// CampsiteService содержит бизнес-логику карты кемпингов.
type CampsiteService struct {
	store  CampsiteStore
	logger *zap.Logger
}

// NewCampsiteService создает новый сервис кемпингов.
func NewCampsiteService(store CampsiteStore, logger *zap.Logger) *CampsiteService {
	return &CampsiteService{store: store, logger: logger}
}

// Search выполняет поиск кемпингов по ключевому слову, рейтингу и активным фильтрам.
func (s *CampsiteService) Search(ctx context.Context, q CampsiteQuery) ([]model.Campsite, error) {
	if math.IsNaN(q.MinRating) || q.MinRating < 0 || q.MinRating > 5 {
		return nil, apperr.Validation("min_rating must be between 0 and 5")
	}
	campsites, err := s.store.FindByFilters(ctx, q.MinRating, strings.TrimSpace(q.Keyword))
	if err != nil {
		return nil, err
	}
	return FilterByTags(campsites, q.Tags), nil
}

// Get возвращает кемпинг по идентификатору.
func (s *CampsiteService) Get(ctx context.Context, id int) (*model.Campsite, error) {
	return s.store.GetByID(ctx, id)
}

// FilterCategories возвращает группы фильтров панели карты.
func (s *CampsiteService) FilterCategories() []model.FilterCategory {
	return fixtures.FilterCategories()
}

// SmartPresets возвращает готовые наборы фильтров.
func (s *CampsiteService) SmartPresets() []model.SmartPreset {
	return fixtures.SmartPresets()
}

// ApplyPreset возвращает фильтры готового набора. Фильтры набора заменяют активные.
func (s *CampsiteService) ApplyPreset(name string) ([]string, error) {
	for _, p := range fixtures.SmartPresets() {
		if p.Name == name {
			return slices.Clone(p.Filters), nil
		}
	}
	return nil, apperr.NotFound("smart filter preset " + name)
}

// ToggleFilter включает или выключает фильтр в наборе активных фильтров.
func (s *CampsiteService) ToggleFilter(active []string, filter string) []string {
	next, _ := ToggleMembership(active, filter)
	return next
}

// Saved возвращает названия сохраненных на карте мест.
func (s *CampsiteService) Saved(ctx context.Context) ([]string, error) {
	return s.store.SavedNames(ctx)
}

// ToggleSaved добавляет место в сохраненные или убирает его оттуда. Возвращает новое множество
// и признак того, что место теперь сохранено.
func (s *CampsiteService) ToggleSaved(ctx context.Context, name string) ([]string, bool, error) {
	if strings.TrimSpace(name) == "" {
		return nil, false, apperr.Validation("place name is empty")
	}
	next, added, err := s.store.ToggleSaved(ctx, name)
	if err != nil {
		return nil, false, err
	}
	s.logger.Info("saved locations changed", zap.String("place", name), zap.Bool("saved", added))
	return next, added, nil
}

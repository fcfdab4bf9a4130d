package service

import (
	"context"
	"regexp"
	"strings"

	"campwise/internal/apperr"
	"campwise/internal/fixtures"
	"campwise/internal/model"

	"go.uber.org/zap"
)

// FavoriteStore - хранилище избранного.
type FavoriteStore interface {
	Folders(ctx context.Context) ([]model.Folder, error)
	CreateFolder(ctx context.Context, folder model.Folder) (bool, error)
	Places(ctx context.Context) ([]model.SavedPlace, error)
	OfflineNames(ctx context.Context) ([]string, error)
	ToggleOffline(ctx context.Context, name string) ([]string, bool, error)
}

// FavoriteService содержит логику экрана избранного: папки, сохраненные места и офлайн-доступ.
type FavoriteService struct {
	store  FavoriteStore
	logger *zap.Logger
}

// NewFavoriteService создает новый сервис избранного.
func NewFavoriteService(store FavoriteStore, logger *zap.Logger) *FavoriteService {
	return &FavoriteService{store: store, logger: logger}
}

// Folders возвращает папки со счетчиками мест; первой идет служебная папка "all".
func (s *FavoriteService) Folders(ctx context.Context) ([]model.Folder, error) {
	folders, err := s.store.Folders(ctx)
	if err != nil {
		return nil, err
	}
	places, err := s.store.Places(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]model.Folder, 0, len(folders)+1)
	result = append(result, model.Folder{ID: model.AllFolders, Name: "All Saved Places", Count: len(places)})
	for _, f := range folders {
		f.Count = len(FilterByFolder(places, f.ID))
		result = append(result, f)
	}
	return result, nil
}

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// CreateFolder создает папку; идентификатор получается из названия.
func (s *FavoriteService) CreateFolder(ctx context.Context, name string) (model.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Folder{}, apperr.Validation("folder name is empty")
	}
	id := strings.Trim(slugSeparators.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if id == "" || id == model.AllFolders {
		return model.Folder{}, apperr.Validation("folder name %q is not allowed", name)
	}
	folder := model.Folder{ID: id, Name: name}
	created, err := s.store.CreateFolder(ctx, folder)
	if err != nil {
		return model.Folder{}, err
	}
	if !created {
		return model.Folder{}, apperr.Conflict("folder %q already exists", id)
	}
	s.logger.Info("folder created", zap.String("folder", id))
	return folder, nil
}

// Places возвращает сохраненные места из папки с отметкой офлайн-доступа.
func (s *FavoriteService) Places(ctx context.Context, folder string) ([]model.SavedPlace, error) {
	places, err := s.store.Places(ctx)
	if err != nil {
		return nil, err
	}
	offline, err := s.store.OfflineNames(ctx)
	if err != nil {
		return nil, err
	}
	filtered := FilterByFolder(places, folder)
	for i := range filtered {
		for _, name := range offline {
			if filtered[i].Name == name {
				filtered[i].Offline = true
				break
			}
		}
	}
	return filtered, nil
}

// Offline возвращает названия мест, доступных офлайн.
func (s *FavoriteService) Offline(ctx context.Context) ([]string, error) {
	return s.store.OfflineNames(ctx)
}

// ToggleOffline включает или выключает офлайн-доступ к месту.
func (s *FavoriteService) ToggleOffline(ctx context.Context, name string) ([]string, bool, error) {
	if strings.TrimSpace(name) == "" {
		return nil, false, apperr.Validation("place name is empty")
	}
	next, added, err := s.store.ToggleOffline(ctx, name)
	if err != nil {
		return nil, false, err
	}
	s.logger.Info("offline access changed", zap.String("place", name), zap.Bool("offline", added))
	return next, added, nil
}

// Trips возвращает сохраненные поездки.
func (s *FavoriteService) Trips() []model.SavedTrip {
	return fixtures.SavedTrips()
}

package service

import (
	"context"
	"slices"

	"campwise/internal/apperr"
	"campwise/internal/fixtures"
	"campwise/internal/model"

	"go.uber.org/zap"
)

// ProfileStore - хранилище профилей.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID int) (*model.Profile, error)
	UpdateUserType(ctx context.Context, userID int, userType string) error
	UpdateDarkMode(ctx context.Context, userID int, enabled bool) error
	UpdateOnboarding(ctx context.Context, userID int, vehicle string, preferences []string) error
}

// ProfileService содержит бизнес-логику профиля и онбординга.
type ProfileService struct {
	store  ProfileStore
	userID int
	logger *zap.Logger
}

// NewProfileService создает сервис профиля для пользователя userID.
func NewProfileService(store ProfileStore, userID int, logger *zap.Logger) *ProfileService {
	return &ProfileService{store: store, userID: userID, logger: logger}
}

// Get возвращает профиль пользователя.
func (s *ProfileService) Get(ctx context.Context) (*model.Profile, error) {
	return s.store.GetByUserID(ctx, s.userID)
}

// SetUserType меняет тип путешественника.
func (s *ProfileService) SetUserType(ctx context.Context, userType string) (*model.Profile, error) {
	if !slices.Contains(fixtures.UserTypes(), userType) {
		return nil, apperr.Validation("unknown user type %q", userType)
	}
	if err := s.store.UpdateUserType(ctx, s.userID, userType); err != nil {
		return nil, err
	}
	s.logger.Info("profile type updated", zap.String("user_type", userType))
	return s.Get(ctx)
}

// ToggleDarkMode переключает темную тему.
func (s *ProfileService) ToggleDarkMode(ctx context.Context) (*model.Profile, error) {
	profile, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateDarkMode(ctx, s.userID, !profile.DarkMode); err != nil {
		return nil, err
	}
	profile.DarkMode = !profile.DarkMode
	return profile, nil
}

// Onboard сохраняет выбор транспорта и предпочтений, сделанный при онбординге.
func (s *ProfileService) Onboard(ctx context.Context, vehicle string, preferences []string) (*model.Profile, error) {
	if !slices.Contains(fixtures.Vehicles(), vehicle) {
		return nil, apperr.Validation("unknown vehicle %q", vehicle)
	}
	var unique []string
	for _, p := range preferences {
		if !slices.Contains(fixtures.Preferences(), p) {
			return nil, apperr.Validation("unknown preference %q", p)
		}
		if !slices.Contains(unique, p) {
			unique = append(unique, p)
		}
	}
	if err := s.store.UpdateOnboarding(ctx, s.userID, vehicle, unique); err != nil {
		return nil, err
	}
	return s.Get(ctx)
}

// TogglePreference включает или выключает одно предпочтение.
func (s *ProfileService) TogglePreference(ctx context.Context, preference string) (*model.Profile, error) {
	if !slices.Contains(fixtures.Preferences(), preference) {
		return nil, apperr.Validation("unknown preference %q", preference)
	}
	profile, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	next, _ := ToggleMembership(profile.Preferences, preference)
	if err := s.store.UpdateOnboarding(ctx, s.userID, profile.Vehicle, next); err != nil {
		return nil, err
	}
	profile.Preferences = next
	return profile, nil
}

// Achievements возвращает достижения пользователя.
func (s *ProfileService) Achievements() []model.Achievement {
	return fixtures.Achievements()
}

// Package app собирает зависимости приложения: логгер, базу данных, репозитории и сервисы.
package app

import (
	"context"
	"fmt"

	"campwise/internal/async"
	"campwise/internal/config"
	"campwise/internal/handler"
	"campwise/internal/metrics"
	"campwise/internal/repository"
	"campwise/internal/service"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Container хранит собранные зависимости.
type Container struct {
	DB        *sqlx.DB
	Logger    *zap.Logger
	Metrics   *metrics.Collector
	Chat      *service.ChatService
	Campsites *service.CampsiteService
	Favorites *service.FavoriteService
	Plans     *service.PlanService
	Profiles  *service.ProfileService
}

// NewLogger создает логгер: для уровня debug - в режиме разработки, иначе production.
func NewLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("некорректный уровень логирования %q: %w", level, err)
	}
	return cfg.Build()
}

// New подключается к базе, применяет миграции, заполняет демонстрационные данные и создает сервисы.
// scheduler задает, как выполняются отложенные операции.
func New(ctx context.Context, cfg *config.Config, scheduler async.Scheduler, logger *zap.Logger) (*Container, error) {
	db, err := repository.Open(cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := repository.Migrate(ctx, db, logger); err != nil {
		db.Close()
		return nil, err
	}
	if err := repository.Seed(ctx, db, cfg.Profile); err != nil {
		db.Close()
		return nil, err
	}

	collector := metrics.NewCollector("campwise")
	delays := service.PlanDelays{
		Optimize: cfg.Delays.Optimize,
		Weather:  cfg.Delays.Weather,
		Plan:     cfg.Delays.Plan,
	}
	return &Container{
		DB:        db,
		Logger:    logger,
		Metrics:   collector,
		Chat:      service.NewChatService(scheduler, cfg.Delays.Typing, collector, logger),
		Campsites: service.NewCampsiteService(repository.NewCampsiteRepository(db), logger),
		Favorites: service.NewFavoriteService(repository.NewFavoriteRepository(db), logger),
		Plans:     service.NewPlanService(repository.NewTripRepository(db), scheduler, delays, collector, logger),
		Profiles:  service.NewProfileService(repository.NewProfileRepository(db), cfg.Profile.UserID, logger),
	}, nil
}

// Handler создает HTTP-обработчик поверх сервисов контейнера.
func (c *Container) Handler() *handler.Handler {
	return handler.NewHandler(c.Chat, c.Campsites, c.Favorites, c.Plans, c.Profiles, c.Metrics, c.Logger)
}

// Close отменяет ожидающие ответы и закрывает базу данных.
func (c *Container) Close() error {
	c.Chat.Shutdown()
	return c.DB.Close()
}

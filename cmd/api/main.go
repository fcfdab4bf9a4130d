package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campwise/internal/app"
	"campwise/internal/async"
	"campwise/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := app.New(ctx, cfg, async.Clock{}, logger)
	if err != nil {
		logger.Fatal("Не удалось инициализировать приложение", zap.Error(err))
	}
	defer container.Close()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      container.Handler().Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Запуск HTTP-сервера", zap.String("addr", srv.Addr), zap.String("db", cfg.DB.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		container.Chat.RunExpiry(gctx, cfg.Sessions.Sweep, cfg.Sessions.IdleTTL)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Остановка сервера...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		// отменяем ожидающие ответы, чтобы запросы чата завершились до остановки
		container.Chat.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Error("Ошибка сервера", zap.Error(err))
	}
	logger.Info("Сервер остановлен")
}

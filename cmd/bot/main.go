package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campwise/internal/app"
	"campwise/internal/async"
	"campwise/internal/bot"
	"campwise/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	if cfg.BotToken == "" {
		log.Fatal("Не указан токен бота (BOT_TOKEN)")
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

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatal("Ошибка инициализации бота", zap.Error(err))
	}
	logger.Info("Запущен бот", zap.String("username", api.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	b := bot.New(container.Chat, api, cfg.Delays.Typing+30*time.Second, logger)
	go func() {
		<-ctx.Done()
		api.StopReceivingUpdates()
	}()
	go container.Chat.RunExpiry(ctx, cfg.Sessions.Sweep, cfg.Sessions.IdleTTL)
	if err := b.Run(ctx, updates, 16); err != nil {
		logger.Error("Бот завершился с ошибкой", zap.Error(err))
	}
	b.Close()
	logger.Info("Бот остановлен")
}

// Package bot - Telegram-интерфейс к ассистенту: каждый чат Telegram ведет свою сессию разговора.
package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"campwise/internal/apperr"
	"campwise/internal/assistant"
	"campwise/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const presetPrefix = "PRESET_"

// Sender - часть Telegram Bot API, которую использует бот.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot связывает чаты Telegram с сессиями ChatService.
type Bot struct {
	chat     *service.ChatService
	sender   Sender
	logger   *zap.Logger
	timeout  time.Duration    // сколько ждать ответ ассистента
	sessions map[int64]string // chatID -> идентификатор сессии
	mu       sync.Mutex
}

// New создает бота. timeout ограничивает ожидание ответа ассистента.
func New(chat *service.ChatService, sender Sender, timeout time.Duration, logger *zap.Logger) *Bot {
	return &Bot{
		chat:     chat,
		sender:   sender,
		logger:   logger,
		timeout:  timeout,
		sessions: make(map[int64]string),
	}
}

// Run обрабатывает обновления, пока не закроется канал или не завершится ctx.
// Обновления разных чатов обрабатываются параллельно, не более workers одновременно.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for {
		select {
		case <-ctx.Done():
			return g.Wait()
		case update, ok := <-updates:
			if !ok {
				return g.Wait()
			}
			g.Go(func() error {
				b.HandleUpdate(gctx, update)
				return nil
			})
		}
	}
}

// HandleUpdate обрабатывает одно обновление: команду, нажатие кнопки или текст.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if cq := update.CallbackQuery; cq != nil {
		b.handleCallback(ctx, cq)
		return
	}
	msg := update.Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.session(chatID)
			b.greet(chatID)
		case "reset":
			b.reset(chatID)
			b.greet(chatID)
		default:
			b.send(chatID, "Unknown command. Try /start or /reset.")
		}
		return
	}
	if strings.TrimSpace(msg.Text) == "" {
		return
	}
	b.ask(ctx, chatID, func(ctx context.Context, sessionID string) (string, error) {
		reply, err := b.chat.Reply(ctx, sessionID, msg.Text)
		if err != nil {
			return "", err
		}
		return Render(reply), nil
	})
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.sender.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.logger.Warn("callback answer failed", zap.Error(err))
	}
	chatID := cq.From.ID
	if cq.Message != nil {
		chatID = cq.Message.Chat.ID
	}
	if !strings.HasPrefix(cq.Data, presetPrefix) {
		return
	}
	idx, err := strconv.Atoi(strings.TrimPrefix(cq.Data, presetPrefix))
	presets := assistant.Presets()
	if err != nil || idx < 0 || idx >= len(presets) {
		b.logger.Warn("unknown preset callback", zap.String("data", cq.Data))
		return
	}
	query := presets[idx]
	b.send(chatID, escape(query))
	b.ask(ctx, chatID, func(ctx context.Context, sessionID string) (string, error) {
		reply, err := b.chat.ReplyPreset(ctx, sessionID, query)
		if err != nil {
			return "", err
		}
		return Render(reply), nil
	})
}

// ask показывает "печатает" и отправляет ответ ассистента или сообщение об ошибке.
func (b *Bot) ask(ctx context.Context, chatID int64, reply func(ctx context.Context, sessionID string) (string, error)) {
	sessionID := b.session(chatID)
	if _, err := b.sender.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		b.logger.Debug("chat action failed", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	text, err := reply(ctx, sessionID)
	if apperr.Is(err, apperr.TypeNotFound) {
		// сессия закрыта по неактивности
		text, err = reply(ctx, b.renew(chatID, sessionID))
	}
	switch {
	case err == nil:
		b.send(chatID, text)
	case apperr.Is(err, apperr.TypeConflict):
		b.send(chatID, "I'm still answering your previous message, one moment please.")
	case apperr.Is(err, apperr.TypeCancelled):
		b.send(chatID, "Sorry, that took too long. Please try again.")
	default:
		b.logger.Error("assistant reply failed", zap.Int64("chat", chatID), zap.Error(err))
		b.send(chatID, "Something went wrong. Please try again.")
	}
}

// session возвращает сессию чата, создавая ее при первом обращении.
func (b *Bot) session(chatID int64) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.sessions[chatID]
	if !ok {
		id = b.chat.Open()
		b.sessions[chatID] = id
	}
	return id
}

// renew заменяет закрытую сессию чата новой, если ее еще не заменили.
func (b *Bot) renew(chatID int64, closed string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if id, ok := b.sessions[chatID]; ok && id != closed {
		return id
	}
	id := b.chat.Open()
	b.sessions[chatID] = id
	return id
}

// reset закрывает сессию чата (ожидающий ответ отменяется) и открывает новую.
func (b *Bot) reset(chatID int64) {
	b.mu.Lock()
	old, ok := b.sessions[chatID]
	b.sessions[chatID] = b.chat.Open()
	b.mu.Unlock()
	if ok {
		if err := b.chat.Close(old); err != nil && !apperr.Is(err, apperr.TypeNotFound) {
			b.logger.Warn("close session failed", zap.Error(err))
		}
	}
}

func (b *Bot) greet(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, escape(assistant.Greeting()))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = PresetKeyboard()
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("send failed", zap.Int64("chat", chatID), zap.Error(err))
	}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("send failed", zap.Int64("chat", chatID), zap.Error(err))
	}
}

// PresetKeyboard - клавиатура с запросами-подсказками, по одной кнопке в ряд.
func PresetKeyboard() tgbotapi.InlineKeyboardMarkup {
	presets := assistant.Presets()
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(presets))
	for i, query := range presets {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(query, fmt.Sprintf("%s%d", presetPrefix, i)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// Close закрывает все сессии чатов.
func (b *Bot) Close() {
	b.mu.Lock()
	sessions := b.sessions
	b.sessions = make(map[int64]string)
	b.mu.Unlock()
	for _, id := range sessions {
		_ = b.chat.Close(id)
	}
}

package service

import (
	"strings"
	"time"

	"campwise/internal/apperr"
	"campwise/internal/assistant"
	"campwise/internal/model"

	"github.com/google/uuid"
)

// Conversation - состояние чата с ассистентом. Методы не меняют значение, а возвращают новое.
type Conversation struct {
	Messages []model.Message `json:"messages"`
	Typing   bool            `json:"typing"`
}

// NewConversation начинает разговор с приветствия бота.
func NewConversation(now time.Time) Conversation {
	return Conversation{Messages: []model.Message{{
		ID:        uuid.NewString(),
		Role:      model.RoleBot,
		Content:   assistant.Greeting(),
		CreatedAt: now,
	}}}
}

// WithUserMessage добавляет сообщение пользователя и переводит бота в режим "печатает".
// Пустой текст не отправляется; пока бот печатает, новое сообщение отклоняется.
func (c Conversation) WithUserMessage(text string, now time.Time) (Conversation, model.Message, error) {
	if strings.TrimSpace(text) == "" {
		return c, model.Message{}, apperr.Validation("message text is empty")
	}
	if c.Typing {
		return c, model.Message{}, apperr.Conflict("assistant is still typing")
	}
	msg := model.Message{ID: uuid.NewString(), Role: model.RoleUser, Content: text, CreatedAt: now}
	return Conversation{Messages: appendMessage(c.Messages, msg), Typing: true}, msg, nil
}

// WithReply добавляет ответ бота и снимает режим "печатает".
func (c Conversation) WithReply(msg model.Message) Conversation {
	return Conversation{Messages: appendMessage(c.Messages, msg), Typing: false}
}

func appendMessage(history []model.Message, msg model.Message) []model.Message {
	next := make([]model.Message, 0, len(history)+1)
	next = append(next, history...)
	return append(next, msg)
}

// BotMessage превращает ответ ассистента в сообщение чата.
func BotMessage(resp assistant.Response, now time.Time) model.Message {
	return model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleBot,
		Content:   resp.Text,
		Type:      resp.Kind.Tag(),
		Payload:   resp.Payload,
		CreatedAt: now,
	}
}

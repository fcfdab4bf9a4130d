package model

import (
	"time"

	"campwise/internal/assistant"
)

// Role определяет автора сообщения в чате с ассистентом.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message представляет сообщение в чате с ассистентом. Type и Payload заполняются только у ответов бота.
type Message struct {
	ID        string             `json:"id"`
	Role      Role               `json:"role"`
	Content   string             `json:"content"`
	Type      string             `json:"type,omitempty"`
	Payload   *assistant.Payload `json:"payload,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

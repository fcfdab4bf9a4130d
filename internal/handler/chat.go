package handler

import (
	"net/http"

	"campwise/internal/assistant"

	"github.com/gin-gonic/gin"
)

type classifyRequest struct {
	Text string `json:"text" binding:"required"`
}

type messageRequest struct {
	Text string `json:"text" binding:"required"`
}

type presetRequest struct {
	Query string `json:"query" binding:"required"`
}

// Classify обработчик для POST /api/assistant/classify - подбирает ответ ассистента без сессии.
func (h *Handler) Classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	resp := assistant.Classify(req.Text)
	h.metrics.ObserveResponse(string(resp.Kind))
	c.JSON(http.StatusOK, gin.H{
		"kind":    resp.Kind,
		"type":    resp.Kind.Tag(),
		"text":    resp.Text,
		"payload": resp.Payload,
	})
}

// ListPresets обработчик для GET /api/assistant/presets.
func (h *Handler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, assistant.Presets())
}

// OpenSession обработчик для POST /api/chat/sessions - начинает новый разговор.
func (h *Handler) OpenSession(c *gin.Context) {
	id := h.ChatService.Open()
	conv, err := h.ChatService.History(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "conversation": conv})
}

// GetSession обработчик для GET /api/chat/sessions/:id.
func (h *Handler) GetSession(c *gin.Context) {
	conv, err := h.ChatService.History(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "conversation": conv})
}

// SendMessage обработчик для POST /api/chat/sessions/:id/messages. Ждет ответ ассистента;
// если клиент отключился раньше, ответ отменяется.
func (h *Handler) SendMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	reply, err := h.ChatService.Reply(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// SendPreset обработчик для POST /api/chat/sessions/:id/presets.
func (h *Handler) SendPreset(c *gin.Context) {
	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	reply, err := h.ChatService.ReplyPreset(c.Request.Context(), c.Param("id"), req.Query)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// CloseSession обработчик для DELETE /api/chat/sessions/:id.
func (h *Handler) CloseSession(c *gin.Context) {
	if err := h.ChatService.Close(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

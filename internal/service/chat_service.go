package service

import (
	"context"
	"sync"
	"time"

	"campwise/internal/apperr"
	"campwise/internal/assistant"
	"campwise/internal/async"
	"campwise/internal/metrics"
	"campwise/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type chatSession struct {
	conv    Conversation
	pending *async.Deferred[model.Message]
	turn    uint64 // номер последнего отправленного сообщения
	active  time.Time
}

// ChatService управляет чат-сессиями с ассистентом.
type ChatService struct {
	scheduler async.Scheduler
	delay     time.Duration
	metrics   *metrics.Collector
	logger    *zap.Logger
	now       func() time.Time
	sessions  map[string]*chatSession // идентификатор сессии -> состояние
	mu        sync.Mutex
}

// NewChatService создает новый сервис чата. delay - сколько "печатает" ассистент.
func NewChatService(scheduler async.Scheduler, delay time.Duration, collector *metrics.Collector, logger *zap.Logger) *ChatService {
	return &ChatService{
		scheduler: scheduler,
		delay:     delay,
		metrics:   collector,
		logger:    logger,
		now:       time.Now,
		sessions:  make(map[string]*chatSession),
	}
}

// Open создает новую сессию с приветствием бота и возвращает ее идентификатор.
func (s *ChatService) Open() string {
	id := uuid.NewString()
	s.mu.Lock()
	now := s.now()
	s.sessions[id] = &chatSession{conv: NewConversation(now), active: now}
	s.mu.Unlock()
	s.logger.Debug("chat session opened", zap.String("session", id))
	return id
}

// History возвращает текущее состояние разговора.
func (s *ChatService) History(sessionID string) (Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return Conversation{}, apperr.NotFound("chat session")
	}
	return sess.conv, nil
}

// Send добавляет сообщение пользователя и возвращает отложенный ответ ассистента.
// Ответ подбирается по тексту и добавляется в историю по истечении задержки.
func (s *ChatService) Send(sessionID, text string) (*async.Deferred[model.Message], error) {
	return s.dispatch(sessionID, text, func() assistant.Response {
		return assistant.Classify(text)
	})
}

// SendPreset отправляет готовый запрос-подсказку. Ответ - подтверждение без вложения.
func (s *ChatService) SendPreset(sessionID, query string) (*async.Deferred[model.Message], error) {
	return s.dispatch(sessionID, query, func() assistant.Response {
		text, tag := assistant.Acknowledge(query)
		return assistant.Response{Kind: assistant.Kind(tag), Text: text}
	})
}

func (s *ChatService) dispatch(sessionID, text string, respond func() assistant.Response) (*async.Deferred[model.Message], error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, apperr.NotFound("chat session")
	}
	next, _, err := sess.conv.WithUserMessage(text, s.now())
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	sess.conv = next
	sess.active = s.now()
	sess.turn++
	turn := sess.turn
	s.mu.Unlock()

	// Планировщик может выполнить вызов сразу, поэтому он запускается без блокировки.
	df := async.After(s.scheduler, s.delay, func() (model.Message, error) {
		return s.deliver(sessionID, turn, respond())
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.sessions[sessionID]
	switch {
	case !ok:
		// сессия закрыта, пока планировался ответ
		df.Cancel()
	case current.turn == turn && current.conv.Typing:
		current.pending = df
	}
	return df, nil
}

func (s *ChatService) deliver(sessionID string, turn uint64, resp assistant.Response) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok || sess.turn != turn || !sess.conv.Typing {
		// сессия закрыта или ответ отменен
		return model.Message{}, async.ErrCancelled
	}
	msg := BotMessage(resp, s.now())
	sess.conv = sess.conv.WithReply(msg)
	sess.pending = nil
	sess.active = msg.CreatedAt
	s.metrics.ObserveResponse(string(resp.Kind))
	s.logger.Debug("assistant replied",
		zap.String("session", sessionID),
		zap.String("kind", string(resp.Kind)))
	return msg, nil
}

// Reply отправляет сообщение и ждет ответ ассистента. Если ctx завершился раньше, ожидающий ответ отменяется.
func (s *ChatService) Reply(ctx context.Context, sessionID, text string) (model.Message, error) {
	df, err := s.Send(sessionID, text)
	if err != nil {
		return model.Message{}, err
	}
	return s.await(ctx, sessionID, df)
}

// ReplyPreset - то же, что Reply, для запроса-подсказки.
func (s *ChatService) ReplyPreset(ctx context.Context, sessionID, query string) (model.Message, error) {
	df, err := s.SendPreset(sessionID, query)
	if err != nil {
		return model.Message{}, err
	}
	return s.await(ctx, sessionID, df)
}

func (s *ChatService) await(ctx context.Context, sessionID string, df *async.Deferred[model.Message]) (model.Message, error) {
	msg, err := df.Wait(ctx)
	if err != nil && ctx.Err() != nil && !s.cancelPending(sessionID, df) {
		// ответ уже формируется и попадет в историю
		msg, err = df.Wait(context.WithoutCancel(ctx))
	}
	if err != nil {
		return model.Message{}, apperr.Cancelled("assistant reply", err)
	}
	return msg, nil
}

// cancelPending отменяет ответ и снимает режим "печатает", чтобы пользователь мог отправить новое сообщение.
// Возвращает false, если ответ уже формируется или готов.
func (s *ChatService) cancelPending(sessionID string, df *async.Deferred[model.Message]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !df.Cancel() {
		return false
	}
	// одновременно ожидается не больше одного ответа, поэтому "печатает" относится к нему
	if sess, ok := s.sessions[sessionID]; ok && sess.conv.Typing {
		sess.pending = nil
		sess.conv.Typing = false
	}
	return true
}

// Close завершает сессию. Ожидающий ответ отменяется и в историю не попадает.
func (s *ChatService) Close(sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()
	if !ok {
		return apperr.NotFound("chat session")
	}
	if sess.pending != nil {
		sess.pending.Cancel()
	}
	s.logger.Debug("chat session closed", zap.String("session", sessionID))
	return nil
}

// Shutdown закрывает все сессии.
func (s *ChatService) Shutdown() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*chatSession)
	s.mu.Unlock()
	for _, sess := range sessions {
		if sess.pending != nil {
			sess.pending.Cancel()
		}
	}
}

// ExpireIdle закрывает сессии, в которых ничего не происходило дольше idle.
// Сессии с ожидающим ответом не трогаются. Возвращает число закрытых сессий.
func (s *ChatService) ExpireIdle(idle time.Duration) int {
	deadline := s.now().Add(-idle)
	s.mu.Lock()
	defer s.mu.Unlock()
	expired := 0
	for id, sess := range s.sessions {
		if sess.conv.Typing || sess.active.After(deadline) {
			continue
		}
		delete(s.sessions, id)
		expired++
	}
	return expired
}

// RunExpiry раз в interval закрывает неактивные сессии, пока не завершится ctx.
func (s *ChatService) RunExpiry(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.ExpireIdle(idle); n > 0 {
				s.logger.Info("idle chat sessions closed", zap.Int("count", n))
			}
		}
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"campwise/internal/apperr"
	"campwise/internal/async"
	"campwise/internal/async/asynctest"
	"campwise/internal/metrics"
	"campwise/internal/model"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

const typingDelay = 1500 * time.Millisecond

func TestChatReplyImmediate(t *testing.T) {
	collector := metrics.NewCollector("test")
	svc := NewChatService(async.Immediate{}, typingDelay, collector, zap.NewNop())
	id := svc.Open()

	reply, err := svc.Reply(context.Background(), id, "Will it RAIN tomorrow?")
	require.NoError(t, err)
	assert.Equal(t, model.RoleBot, reply.Role)
	assert.Equal(t, "weather", reply.Type)
	require.NotNil(t, reply.Payload)
	assert.NotNil(t, reply.Payload.Weather)

	conv, err := svc.History(id)
	require.NoError(t, err)
	assert.False(t, conv.Typing)
	require.Len(t, conv.Messages, 3)
	assert.Equal(t, "Will it RAIN tomorrow?", conv.Messages[1].Content)
	assert.Equal(t, reply, conv.Messages[2])
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Responses.WithLabelValues("weather")))
}

func TestChatSendWaitsForTypingDelay(t *testing.T) {
	sched := &asynctest.Manual{}
	svc := NewChatService(sched, typingDelay, nil, zap.NewNop())
	id := svc.Open()

	df, err := svc.Send(id, "compare the lakes")
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{typingDelay}, sched.Delays())

	conv, err := svc.History(id)
	require.NoError(t, err)
	assert.True(t, conv.Typing)
	assert.Len(t, conv.Messages, 2)

	// пока бот печатает, новое сообщение отклоняется
	_, err = svc.Send(id, "hello?")
	assert.True(t, apperr.Is(err, apperr.TypeConflict))

	sched.Fire()
	msg, err := df.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "comparison", msg.Type)

	conv, err = svc.History(id)
	require.NoError(t, err)
	assert.False(t, conv.Typing)
	assert.Len(t, conv.Messages, 3)
}

func TestChatSendPreset(t *testing.T) {
	svc := NewChatService(async.Immediate{}, typingDelay, nil, zap.NewNop())
	id := svc.Open()

	reply, err := svc.ReplyPreset(context.Background(), id, "Recommend a 3-day itinerary around Wanaka")
	require.NoError(t, err)
	assert.Equal(t, "itinerary", reply.Type)
	assert.Nil(t, reply.Payload)
	assert.Contains(t, reply.Content, "Recommend a 3-day itinerary around Wanaka")
}

func TestChatBlankMessage(t *testing.T) {
	svc := NewChatService(async.Immediate{}, typingDelay, nil, zap.NewNop())
	id := svc.Open()

	_, err := svc.Send(id, "   ")
	assert.True(t, apperr.Is(err, apperr.TypeValidation))
	conv, err := svc.History(id)
	require.NoError(t, err)
	assert.Len(t, conv.Messages, 1)
}

func TestChatUnknownSession(t *testing.T) {
	svc := NewChatService(async.Immediate{}, typingDelay, nil, zap.NewNop())
	_, err := svc.Send("missing", "hi")
	assert.True(t, apperr.Is(err, apperr.TypeNotFound))
	_, err = svc.History("missing")
	assert.True(t, apperr.Is(err, apperr.TypeNotFound))
	assert.True(t, apperr.Is(svc.Close("missing"), apperr.TypeNotFound))
}

func TestChatCloseCancelsPendingReply(t *testing.T) {
	sched := &asynctest.Manual{}
	svc := NewChatService(sched, typingDelay, nil, zap.NewNop())
	id := svc.Open()

	df, err := svc.Send(id, "route please")
	require.NoError(t, err)
	require.NoError(t, svc.Close(id))

	assert.Equal(t, 0, sched.Pending(), "timer must be stopped")
	_, err = df.Wait(context.Background())
	assert.ErrorIs(t, err, async.ErrCancelled)
	_, err = svc.History(id)
	assert.True(t, apperr.Is(err, apperr.TypeNotFound))
}

func TestChatReplyContextCancelled(t *testing.T) {
	sched := &asynctest.Manual{}
	svc := NewChatService(sched, typingDelay, nil, zap.NewNop())
	id := svc.Open()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Reply(ctx, id, "camp")
	assert.True(t, apperr.Is(err, apperr.TypeCancelled))

	// ответ отменен и не попадет в историю, можно писать снова
	sched.Fire()
	conv, err := svc.History(id)
	require.NoError(t, err)
	assert.False(t, conv.Typing)
	assert.Len(t, conv.Messages, 2)

	_, err = svc.Send(id, "hello")
	assert.NoError(t, err)
}

func TestChatSessionsAreIndependent(t *testing.T) {
	sched := &asynctest.Manual{}
	svc := NewChatService(sched, typingDelay, nil, zap.NewNop())
	a, b := svc.Open(), svc.Open()
	require.NotEqual(t, a, b)

	_, err := svc.Send(a, "weather")
	require.NoError(t, err)
	_, err = svc.Send(b, "drive")
	require.NoError(t, err)
	require.NoError(t, svc.Close(a))

	sched.Fire()
	conv, err := svc.History(b)
	require.NoError(t, err)
	require.Len(t, conv.Messages, 3)
	assert.Equal(t, "route", conv.Messages[2].Type)
}

func TestChatShutdownWithClock(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := NewChatService(async.Clock{}, time.Hour, nil, zap.NewNop())
	id := svc.Open()
	df, err := svc.Send(id, "itinerary")
	require.NoError(t, err)

	svc.Shutdown()
	_, err = df.Wait(context.Background())
	assert.ErrorIs(t, err, async.ErrCancelled)
}

func TestChatReplyWithClock(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := NewChatService(async.Clock{}, 5*time.Millisecond, nil, zap.NewNop())
	id := svc.Open()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reply, err := svc.Reply(ctx, id, "remote beach")
	require.NoError(t, err)
	assert.Equal(t, "comparison", reply.Type)
	require.NotNil(t, reply.Payload.Ranked)
}

func TestChatExpireIdle(t *testing.T) {
	sched := &asynctest.Manual{}
	svc := NewChatService(sched, typingDelay, nil, zap.NewNop())
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	idle := svc.Open()
	busy := svc.Open()
	typing := svc.Open()

	now = now.Add(20 * time.Minute)
	_, err := svc.Send(busy, "hello")
	require.NoError(t, err)
	_, err = svc.Send(typing, "compare the lakes")
	require.NoError(t, err)
	sched.Fire()
	// ответ еще формируется: сессия не закрывается, даже если давно неактивна
	_, err = svc.Send(typing, "and the weather?")
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	assert.Equal(t, 1, svc.ExpireIdle(30*time.Minute))

	_, err = svc.History(idle)
	assert.True(t, apperr.Is(err, apperr.TypeNotFound))
	_, err = svc.History(busy)
	assert.NoError(t, err)
	_, err = svc.History(typing)
	assert.NoError(t, err)

	now = now.Add(time.Hour)
	assert.Equal(t, 1, svc.ExpireIdle(30*time.Minute), "typing session survives")
	sched.Fire()
}

func TestChatRunExpiryStops(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc := NewChatService(async.Immediate{}, typingDelay, nil, zap.NewNop())
	id := svc.Open()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.RunExpiry(ctx, time.Millisecond, time.Nanosecond)
	}()

	assert.Eventually(t, func() bool {
		_, err := svc.History(id)
		return apperr.Is(err, apperr.TypeNotFound)
	}, 5*time.Second, time.Millisecond)
	cancel()
	<-done
}

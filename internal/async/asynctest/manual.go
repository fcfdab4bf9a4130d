// Package asynctest содержит планировщик для тестов, который срабатывает только по команде.
package asynctest

import (
	"sync"
	"time"

	"campwise/internal/async"
)

// Manual копит запланированные вызовы; Fire выполняет их в порядке планирования.
type Manual struct {
	mu    sync.Mutex
	queue []*timer
}

type timer struct {
	owner *Manual
	fn    func()
	delay time.Duration
}

func (t *timer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	for i, q := range t.owner.queue {
		if q == t {
			t.owner.queue = append(t.owner.queue[:i], t.owner.queue[i+1:]...)
			return true
		}
	}
	return false
}

// AfterFunc реализует async.Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) async.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &timer{owner: m, fn: fn, delay: d}
	m.queue = append(m.queue, t)
	return t
}

// Pending возвращает число запланированных и еще не выполненных вызовов.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Delays возвращает задержки ожидающих вызовов.
func (m *Manual) Delays() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	delays := make([]time.Duration, 0, len(m.queue))
	for _, t := range m.queue {
		delays = append(delays, t.delay)
	}
	return delays
}

// Fire выполняет все ожидающие вызовы и возвращает их число.
func (m *Manual) Fire() int {
	m.mu.Lock()
	queue := m.queue
	m.queue = nil
	m.mu.Unlock()
	for _, t := range queue {
		t.fn()
	}
	return len(queue)
}

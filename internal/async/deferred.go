// Package async моделирует отложенные результаты: "ассистент печатает", "маршрут оптимизируется" и т.п.
// Источник задержки подменяется в тестах на синхронное завершение.
package async

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCancelled возвращается ожиданием результата, отмененного до завершения.
var ErrCancelled = errors.New("async: cancelled")

// Timer - запланированный вызов, который можно остановить.
type Timer interface {
	Stop() bool
}

// Scheduler планирует вызов fn через d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Clock - планировщик на реальных таймерах.
type Clock struct{}

// AfterFunc реализует Scheduler через time.AfterFunc.
func (Clock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Immediate выполняет вызов сразу, в той же горутине, игнорируя задержку.
type Immediate struct{}

type doneTimer struct{}

func (doneTimer) Stop() bool { return false }

// AfterFunc реализует Scheduler без ожидания.
func (Immediate) AfterFunc(_ time.Duration, fn func()) Timer {
	fn()
	return doneTimer{}
}

// Deferred - результат, который станет доступен позже.
type Deferred[T any] struct {
	done    chan struct{}
	once    sync.Once
	mu      sync.Mutex
	timer   Timer
	claimed bool // вычисление запущено или Deferred отменен
	value   T
	err     error
}

// After планирует вычисление compute через d. Результат compute становится результатом Deferred.
// Запущенное вычисление уже не отменяется: его результат всегда доходит до ожидающих.
func After[T any](s Scheduler, d time.Duration, compute func() (T, error)) *Deferred[T] {
	df := &Deferred[T]{done: make(chan struct{})}
	t := s.AfterFunc(d, func() {
		if !df.claim() {
			// уже отменен
			return
		}
		v, err := compute()
		df.complete(v, err)
	})
	df.mu.Lock()
	df.timer = t
	df.mu.Unlock()
	return df
}

func (d *Deferred[T]) claim() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.claimed {
		return false
	}
	d.claimed = true
	return true
}

func (d *Deferred[T]) complete(v T, err error) bool {
	completed := false
	d.once.Do(func() {
		d.mu.Lock()
		d.value, d.err = v, err
		close(d.done)
		d.mu.Unlock()
		completed = true
	})
	return completed
}

// Done закрывается, когда результат готов или отменен.
func (d *Deferred[T]) Done() <-chan struct{} {
	return d.done
}

// Wait ждет результат или отмену контекста. Отмена контекста не отменяет сам Deferred.
func (d *Deferred[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-d.done:
		d.mu.Lock()
		defer d.mu.Unlock()
		return d.value, d.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Cancel останавливает таймер и завершает Deferred ошибкой ErrCancelled.
// Возвращает false, если вычисление уже запущено или завершено: тогда результат придет как обычно.
func (d *Deferred[T]) Cancel() bool {
	if !d.claim() {
		return false
	}
	d.mu.Lock()
	t := d.timer
	d.mu.Unlock()
	if t != nil {
		t.Stop()
	}
	var zero T
	return d.complete(zero, ErrCancelled)
}

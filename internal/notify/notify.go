// Package notify implements the transient notification (toast) center.
// Services push one success toast per mutation and one error toast per
// discrete backend error string; the UI drains them on render.
package notify

import (
	"time"

	"github.com/HasanBocek/KTUTennisCRM/internal/store"
	"github.com/google/uuid"
)

// Level classifies a toast for styling.
type Level string

const (
	LevelSuccess Level = "success"
	LevelDanger  Level = "danger"
)

// Toast is one transient notification.
type Toast struct {
	ID        string
	Message   string
	Level     Level
	CreatedAt time.Time
}

// Notifier is the side-channel surface the services depend on.
type Notifier interface {
	Success(message string)
	Error(message string)
	Errors(messages []string)
}

// Center queues toasts in an observable store.
type Center struct {
	toasts *store.Store[[]Toast]
	now    func() time.Time
}

// NewCenter builds an empty toast center.
func NewCenter() *Center {
	return &Center{
		toasts: store.New([]Toast(nil)),
		now:    time.Now,
	}
}

// Success queues one success toast.
func (c *Center) Success(message string) {
	c.push(message, LevelSuccess)
}

// Error queues one error toast.
func (c *Center) Error(message string) {
	c.push(message, LevelDanger)
}

// Errors fans out one error toast per message, never an aggregate.
func (c *Center) Errors(messages []string) {
	for _, message := range messages {
		c.Error(message)
	}
}

// Subscribe registers a listener on the toast queue.
func (c *Center) Subscribe(fn func([]Toast)) func() {
	return c.toasts.Subscribe(fn)
}

// Pending returns the queued toasts without consuming them.
func (c *Center) Pending() []Toast {
	queued := c.toasts.Get()
	copied := make([]Toast, len(queued))
	copy(copied, queued)
	return copied
}

// Drain returns the queued toasts and empties the queue.
func (c *Center) Drain() []Toast {
	var drained []Toast
	c.toasts.Update(func(queued []Toast) []Toast {
		drained = queued
		return nil
	})
	return drained
}

func (c *Center) push(message string, level Level) {
	toast := Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Level:     level,
		CreatedAt: c.now(),
	}
	c.toasts.Update(func(queued []Toast) []Toast {
		return append(queued, toast)
	})
}

// Package shutdown provides a registry of hooks that run once,
// on the caller's goroutine, when the application stops. Signals are turned
// into ordinary callbacks so no hook ever runs inside signal delivery.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hook is a unit of shutdown work
type Hook func() error

type entry struct {
	id   uuid.UUID
	name string
	fn   Hook
}

// Registry holds shutdown hooks in registration order
type Registry struct {
	mu     sync.Mutex
	hooks  []entry
	ran    bool
	logger *zap.SugaredLogger
}

// NewRegistry creates an empty registry
func NewRegistry(logger *zap.SugaredLogger) *Registry {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Registry{logger: logger}
}

// Register adds a hook and returns an ID that can be passed to Unregister
func (r *Registry) Register(name string, fn Hook) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.hooks = append(r.hooks, entry{id: id, name: name, fn: fn})
	return id
}

// Unregister removes a hook. Returns false if the ID is unknown.
func (r *Registry) Unregister(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.hooks {
		if h.id == id {
			r.hooks = append(r.hooks[:i], r.hooks[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered hooks
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.hooks)
}

// Run executes every hook in reverse registration order. Hook errors are
// logged and do not stop later hooks. Only the first call does anything.
func (r *Registry) Run() {
	r.mu.Lock()
	if r.ran {
		r.mu.Unlock()
		return
	}
	r.ran = true
	hooks := make([]entry, len(r.hooks))
	copy(hooks, r.hooks)
	r.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		h := hooks[i]
		if err := h.fn(); err != nil {
			r.logger.Errorw("shutdown hook failed", "hook", h.name, "error", err)
			continue
		}
		r.logger.Debugw("shutdown hook done", "hook", h.name)
	}
}

// TerminationSignals are the signals NotifySignals listens for
var TerminationSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// NotifySignals calls onSignal from a regular goroutine the first time a
// termination signal arrives. It stops listening when ctx is cancelled.
func NotifySignals(ctx context.Context, onSignal func(os.Signal)) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, TerminationSignals...)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
		case sig := <-ch:
			onSignal(sig)
		}
	}()
}

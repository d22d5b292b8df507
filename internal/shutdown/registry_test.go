package shutdown

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RunOrder(t *testing.T) {
	r := NewRegistry(nil)

	var order []string
	r.Register("first", func() error { order = append(order, "first"); return nil })
	r.Register("second", func() error { order = append(order, "second"); return nil })
	r.Register("third", func() error { order = append(order, "third"); return nil })

	r.Run()

	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestRegistry_RunOnce(t *testing.T) {
	r := NewRegistry(nil)

	calls := 0
	r.Register("save", func() error { calls++; return nil })

	r.Run()
	r.Run()

	assert.Equal(t, 1, calls)
}

func TestRegistry_ErrorsDoNotStopLaterHooks(t *testing.T) {
	r := NewRegistry(nil)

	ran := false
	r.Register("late", func() error { ran = true; return nil })
	r.Register("failing", func() error { return errors.New("disk full") })

	r.Run()

	assert.True(t, ran)
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry(nil)

	called := false
	id := r.Register("temp", func() error { called = true; return nil })
	require.Equal(t, 1, r.Len())

	assert.True(t, r.Unregister(id))
	assert.False(t, r.Unregister(id))
	assert.Equal(t, 0, r.Len())

	r.Run()
	assert.False(t, called)
}

func TestNotifySignals(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan os.Signal, 1)
	NotifySignals(ctx, func(sig os.Signal) { got <- sig })

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, proc.Signal(syscall.SIGTERM))

	select {
	case sig := <-got:
		assert.Equal(t, syscall.SIGTERM, sig)
	case <-time.After(3 * time.Second):
		t.Fatal("Expected SIGTERM to be delivered to the callback")
	}
}

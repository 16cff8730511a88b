package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoller(t *testing.T) {
	t.Run("polls until stopped", func(t *testing.T) {
		var calls atomic.Int32
		p := NewPoller("test", 5*time.Millisecond, func(ctx context.Context) error {
			calls.Add(1)
			return nil
		})

		done := make(chan struct{})
		go func() {
			p.Start(t.Context())
			close(done)
		}()

		assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
		p.Stop()
		<-done
	})

	t.Run("errors do not stop polling", func(t *testing.T) {
		var calls atomic.Int32
		p := NewPoller("test", 5*time.Millisecond, func(ctx context.Context) error {
			calls.Add(1)
			return errors.New("boom")
		})

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan struct{})
		go func() {
			p.Start(ctx)
			close(done)
		}()

		assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
		cancel()
		<-done
	})

	t.Run("run on start", func(t *testing.T) {
		var calls atomic.Int32
		p := NewPoller("test", time.Hour, func(ctx context.Context) error {
			calls.Add(1)
			return nil
		}).RunOnStart()

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan struct{})
		go func() {
			p.Start(ctx)
			close(done)
		}()

		assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
		cancel()
		<-done
	})
}

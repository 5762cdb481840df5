// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaker(t *testing.T) {
	t.Run("WakeBeforeWait", func(t *testing.T) {
		w := NewWaker()
		w.Wake()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, w.Wait(ctx))
	})
	t.Run("Coalesce", func(t *testing.T) {
		w := NewWaker()
		for i := 0; i < 10; i++ {
			w.Wake()
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, w.Wait(ctx))
		// Ten wakes coalesced into one pending wake, so a second wait
		// must block until its context expires.
		ctx2, cancel2 := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel2()
		assert.ErrorIs(t, w.Wait(ctx2), context.DeadlineExceeded)
	})
	t.Run("ContextCancelled", func(t *testing.T) {
		w := NewWaker()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, w.Wait(ctx), context.Canceled)
	})
	t.Run("CrossGoroutine", func(t *testing.T) {
		w := NewWaker()
		go func() {
			time.Sleep(10 * time.Millisecond)
			w.Wake()
		}()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, w.Wait(ctx))
	})
	t.Run("WakeNeverBlocks", func(t *testing.T) {
		w := NewWaker()
		done := make(chan struct{})
		go func() {
			for i := 0; i < 1000; i++ {
				w.Wake()
			}
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Wake blocked")
		}
	})
}

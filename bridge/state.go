// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bridge

import (
	"sync"
	"sync/atomic"

	"github.com/pullx/pullx/transfer"
)

// state is the record shared by the two halves of a bridge. The
// Delegate mutates it from the transport's goroutine; the Handle reads
// and drains it from the consumer's goroutine. Access modes:
//
//	completed  atomic; false→true exactly once, never reset
//	response   atomic swap slot; overwritten by delegate, cleared by consumer
//	buf, err   guarded by mu
//	maxBuf     immutable after construction; 0 means unbounded
//	waker      internally synchronized
//
// Both halves hold a pointer to the same state, so it remains valid
// until the longest-lived holder drops it.
type state struct {
	waker  *Waker
	maxBuf int64

	completed atomic.Bool
	response  atomic.Pointer[transfer.Response]

	mu  sync.Mutex
	buf []byte
	err error
}

// captureError records err unless an error is already captured. The
// first captured error wins: an earlier, more specific error (say, a
// backpressure violation) takes priority over the cancellation-
// flavored error the transport reports afterwards.
func (s *state) captureError(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()
}

// takeError removes and returns the captured error, or nil. Take
// semantics guarantee each captured error is surfaced exactly once.
func (s *state) takeError() error {
	s.mu.Lock()
	err := s.err
	s.err = nil
	s.mu.Unlock()
	return err
}

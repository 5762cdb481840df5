// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bridge

import (
	"context"

	"github.com/pullx/pullx/transfer"
)

// A Handle is the consumer half of a bridge. Its accessors are
// poll-style and never block; a consumer loop calls them repeatedly,
// parking on Wait between polls until the transfer reaches the state
// it is interested in.
//
// A Handle is safe for use concurrently with the Delegate's callbacks.
// It is not intended to be shared between multiple consumer
// goroutines.
type Handle struct {
	s *state
}

// IsCompleted reports whether the transfer has reached its terminal
// event. It is side-effect-free and may be called any number of times.
func (h *Handle) IsCompleted() bool {
	return h.s.completed.Load()
}

// TryTakeResponse returns the response metadata received since the
// last call, if any.
//
// If an error has been captured for the transfer, TryTakeResponse
// takes and returns it instead; the error is surfaced exactly once,
// after which polls resume returning normal data. Otherwise the
// metadata slot is atomically swapped with nil, so each arrival is
// returned exactly once and subsequent calls return (nil, nil) until
// new metadata arrives. A (nil, nil) return is not an error.
func (h *Handle) TryTakeResponse() (*transfer.Response, error) {
	if err := h.s.takeError(); err != nil {
		return nil, err
	}
	return h.s.response.Swap(nil), nil
}

// TakeResponseBuffer drains and returns the body bytes accumulated
// since the last call.
//
// If an error has been captured for the transfer, TakeResponseBuffer
// takes and returns it instead, exactly once. Bytes that were accepted
// into the buffer before the error remain available to a subsequent
// call.
//
// For whole-body semantics, call TakeResponseBuffer after IsCompleted
// reports true; until then it returns whatever has accumulated so far,
// which is safe for streaming partial drains.
func (h *Handle) TakeResponseBuffer() ([]byte, error) {
	s := h.s
	s.mu.Lock()
	if err := s.err; err != nil {
		s.err = nil
		s.mu.Unlock()
		return nil, err
	}
	buf := s.buf
	s.buf = nil
	s.mu.Unlock()
	return buf, nil
}

// Waker returns the bridge's suspension primitive, for consumers that
// want to integrate the wait into their own loop.
func (h *Handle) Waker() *Waker {
	return h.s.waker
}

// Wait parks the consumer until the delegate signals progress or ctx
// is done. It is shorthand for h.Waker().Wait(ctx).
func (h *Handle) Wait(ctx context.Context) error {
	return h.s.waker.Wait(ctx)
}

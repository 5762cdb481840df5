// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bridge

import "context"

// A Waker is the suspension primitive connecting the callback side of
// a bridge to its polling consumer. The callback side calls Wake after
// every state mutation it performs; the consumer parks in Wait between
// polls.
//
// A Waker records at most one pending wake. Wake never blocks: if a
// wake is already pending, further wakes coalesce into it. A waiter
// that wakes up must therefore re-check the state it is interested in,
// since the single pending wake may stand for several mutations, or
// for a mutation the waiter does not care about.
//
// A Waker is safe for concurrent use by multiple goroutines, although
// a bridge only ever has one consumer parked in Wait at a time.
type Waker struct {
	ch chan struct{}
}

// NewWaker returns a Waker with no pending wake.
func NewWaker() *Waker {
	return &Waker{ch: make(chan struct{}, 1)}
}

// Wake marks the Waker as having a pending wake, unblocking a parked
// waiter if there is one. Wake never blocks.
func (w *Waker) Wake() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// Wait blocks until the Waker has a pending wake, consuming it, or
// until ctx is done. It returns nil if a wake was consumed and
// ctx.Err() otherwise.
//
// If a wake is already pending when Wait is called, Wait consumes it
// and returns immediately.
func (w *Waker) Wait(ctx context.Context) error {
	select {
	case <-w.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

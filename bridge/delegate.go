// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bridge

import "github.com/pullx/pullx/transfer"

// A Delegate is the callback half of a bridge. The native transport
// invokes its methods as the transfer progresses: OnResponse when the
// response metadata arrives, OnData for each body chunk, and
// OnComplete exactly once when the transfer reaches its terminal state.
//
// The transport must not invoke two Delegate methods concurrently for
// the same transfer, but Delegate methods always race with reads on
// the bridge's Handle; every method body is a short critical section
// that mutates shared state under synchronization and then signals the
// Waker. No method blocks the transport's goroutine.
type Delegate struct {
	s *state
}

// New creates the two halves of a bridge for one transfer. The
// Delegate goes to the native transport; the Handle stays with the
// consumer.
//
// maxResponseBufferSize bounds how many unread body bytes may
// accumulate in the bridge. A value of zero or less means unbounded.
// When appending a chunk would exceed the bound, the delegate captures
// transfer.ErrResponseTooLarge, cancels the task, and drops the chunk
// without appending any part of it.
func New(maxResponseBufferSize int64) (*Delegate, *Handle) {
	s := &state{
		waker:  NewWaker(),
		maxBuf: maxResponseBufferSize,
	}
	return &Delegate{s: s}, &Handle{s: s}
}

// OnResponse records the response metadata reported by the transport,
// overwriting any previously recorded metadata, and wakes the
// consumer.
//
// If the task requires an explicit flow-control handshake to keep
// delivering body data (it implements transfer.FlowControlled), the
// handshake is performed here: delivery is paused on entry and resumed
// as soon as the metadata is stored, so body delivery never stalls
// waiting for the consumer to poll.
func (d *Delegate) OnResponse(task transfer.Task, resp *transfer.Response) {
	fc, controlled := task.(transfer.FlowControlled)
	if controlled {
		fc.Pause()
	}
	d.s.response.Store(resp)
	if controlled {
		fc.Resume()
	}
	d.s.waker.Wake()
}

// OnData appends a body chunk to the bridge's buffer, enforcing the
// configured buffer bound.
//
// The bound is a hard ceiling: the check happens strictly before the
// append, and a violating chunk is dropped in its entirety. On
// violation OnData captures transfer.ErrResponseTooLarge and cancels
// the task. Once any error has been captured, further OnData calls for
// the transfer are no-ops, so the cancel is issued at most once.
//
// OnData wakes the consumer eagerly so that a consumer draining
// mid-transfer can stream partial data.
func (d *Delegate) OnData(task transfer.Task, chunk []byte) {
	s := d.s
	s.mu.Lock()
	if s.err != nil {
		s.mu.Unlock()
		return
	}
	if s.maxBuf > 0 && int64(len(s.buf))+int64(len(chunk)) > s.maxBuf {
		s.err = transfer.ErrResponseTooLarge
		s.mu.Unlock()
		task.Cancel()
		s.waker.Wake()
		return
	}
	s.buf = append(s.buf, chunk...)
	s.mu.Unlock()
	s.waker.Wake()
}

// OnComplete marks the transfer completed and wakes the consumer. If
// the transport reports a terminal error, it is captured unless an
// error was already captured for the transfer (first writer wins).
//
// The transport must call OnComplete exactly once per transfer, after
// all OnResponse and OnData calls, even when the transfer was
// cancelled from the bridge side.
func (d *Delegate) OnComplete(_ transfer.Task, err error) {
	s := d.s
	s.completed.Store(true)
	if err != nil {
		s.captureError(err)
	}
	s.waker.Wake()
}

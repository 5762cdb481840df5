// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transfer

// A Task is the control surface the bridge holds over one in-flight
// native transfer.
//
// Implementations of Task must be safe for concurrent use by multiple
// goroutines, and Cancel must be idempotent: the bridge may request
// cancellation from the callback side (backpressure violation) and the
// consumer side (context cancellation) of the same transfer.
//
// Cancellation flows one direction only. After Cancel is called, the
// native stack is still expected to deliver exactly one terminal
// completed event for the transfer, possibly carrying a
// cancellation-flavored error, which the bridge processes normally.
type Task interface {
	// Cancel requests that the native stack abort the transfer.
	Cancel()
}

// FlowControlled is the optional capability a transport task
// advertises when its host stack requires an explicit pause/resume
// handshake to keep delivering body data after the response headers
// arrive.
//
// Transports whose host stack self-paces (for example anything built
// on a pull-style body reader) should not implement FlowControlled;
// the bridge treats the capability's absence as a no-op.
type FlowControlled interface {
	// Pause asks the native stack to suspend event delivery for the
	// transfer.
	Pause()

	// Resume asks the native stack to resume event delivery for the
	// transfer.
	Resume()
}

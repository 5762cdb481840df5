// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package bridge converts the push-callback world of a native HTTP
transport into the pull-style world of a polling consumer.

A native transport reports progress on a transfer by invoking callbacks
on its own goroutine: at most one response-metadata event, zero or more
data events, and exactly one terminal completed event. A consumer, on
the other hand, wants to block until something specific has happened
(headers arrived, the transfer finished) and then read the accumulated
results. The bridge sits between the two.

Call New to create the two halves of a bridge:

	delegate, handle := bridge.New(maxBufferSize)

Hand the Delegate to the transport, which invokes OnResponse, OnData
and OnComplete as the transfer progresses. Keep the Handle on the
consumer side and drive it with a poll/wait loop:

	for {
		resp, err := handle.TryTakeResponse()
		if err != nil || resp != nil {
			break
		}
		if handle.IsCompleted() {
			break
		}
		if err := handle.Wait(ctx); err != nil {
			task.Cancel()
			break
		}
	}

The loop never spins: between polls it parks on the bridge's Waker,
which the delegate signals after every mutation it performs. Wakes
coalesce and may be spurious, so waiters re-check state after waking
rather than trusting the wake alone.

Synchronization contract

Every shared field has a documented access mode, enforced by the
primitives used to hold it: the completion flag is an atomic boolean
that transitions false to true exactly once; the response metadata
lives in an atomically swappable slot (overwritten by the delegate,
swapped out by the consumer); and the body buffer and captured error
share one mutex. The delegate never holds the mutex across an outbound
call (Wake, or Cancel on the task).

Both halves reference the same shared state, so the state stays alive
until the last of the transport-side and consumer-side holders drops
it. A transport callback that fires after the consumer has given up and
walked away mutates memory that is still valid; it just never gets
observed.

Errors are captured at most once per transfer, first writer wins, and
are surfaced to the consumer with take semantics: the next poll returns
the error, after which polls resume returning (likely empty) data. Body
bytes accepted before the error remain drainable afterwards.
*/
package bridge

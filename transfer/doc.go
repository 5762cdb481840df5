// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transfer contains the data types and small interfaces shared by
both sides of a transfer: the native transport that pushes events, and
the consumer that pulls results.

A Request describes one logical HTTP exchange to be run against a native
transport. A Response carries the metadata (status, headers) the
transport reported for the exchange, and a Result is the fully-buffered
outcome handed back to the caller.

The Task and FlowControlled interfaces are the control surface the
bridge holds over an in-flight native transfer. Every task can be
cancelled; pause/resume flow control is an optional capability that a
transport advertises by implementing FlowControlled on its task type.

Error kinds produced inside the bridge are defined here as well, so that
both the core and transport adapters can reference them without import
cycles.
*/
package transfer

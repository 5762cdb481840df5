// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pullx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality.
type Event int

const (
	// BeforeTransfer identifies the event that occurs before a
	// transfer is handed to the backend.
	//
	// When Client fires BeforeTransfer, the result is non-nil but the
	// only field that has been set is the request.
	BeforeTransfer Event = iota
	// AfterResponse identifies the event that occurs when the response
	// metadata for a transfer has been taken from the bridge.
	//
	// When Client fires AfterResponse, the result's response field is
	// set but its body is not: the transfer may still be receiving
	// body data.
	//
	// Note that AfterResponse never fires if the transfer ends in an
	// error before metadata arrives, but always fires when metadata is
	// received, regardless of the HTTP status code.
	AfterResponse
	// AfterTransfer identifies the event that occurs after a transfer
	// ends, successfully or not.
	//
	// When Client fires AfterTransfer, the result's end time is set,
	// and either its body field (success) or its error field (failure)
	// is set.
	AfterTransfer
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeTransfer",
	"AfterResponse",
	"AfterTransfer",
}

// Events returns a slice containing all events which can occur during
// a transfer driven by Client, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeTransfer,
		AfterResponse,
		AfterTransfer,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}

// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transfer

import (
	"net/http"
	"time"

	"github.com/pullx/pullx/transient"
)

// A Result represents the outcome of one transfer driven to its
// terminal event.
//
// A Result is created when the transfer starts and updated as it
// progresses (when the response metadata becomes available, and again
// when the body has been drained after completion). It is ultimately
// returned to the caller that requested the transfer.
type Result struct {
	// Request specifies the request the transfer was started from. It
	// is never nil.
	Request *Request

	// Start is the time the transfer was handed to the native
	// transport. It is assigned a non-zero value when the transfer
	// starts and remains constant thereafter.
	Start time.Time

	// End is the time the transfer reached its terminal state from the
	// consumer's point of view. It contains the zero value until then.
	End time.Time

	// Response holds the response metadata reported by the native
	// transport. It is nil if the transfer ended in an error before
	// any metadata arrived.
	Response *Response

	// Body is the complete buffered response body. It is nil if the
	// transfer ended in an error. A successful transfer always has a
	// non-nil Body, although it may have zero length.
	Body []byte

	// Err is the error that ended the transfer, if any. Once the
	// transfer has Ended, Err has the same value as the error returned
	// by the client method that drove it.
	Err error
}

// StatusCode returns the status code of the response metadata, or 0 if
// no metadata was received.
func (r *Result) StatusCode() int {
	if r.Response == nil {
		return 0
	}

	return r.Response.StatusCode
}

// Header returns the response headers, or the nil header if no
// response metadata was received.
//
// A nil return value is always safe for read-only operations, since
// http.Header is a map type.
func (r *Result) Header() http.Header {
	if r.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}

	return r.Response.Header
}

// Duration returns the duration of the transfer.
//
// If the transfer has not yet started, the duration is zero. If the
// transfer has Ended, the duration is End minus Start. Otherwise it is
// the current time minus Start.
func (r *Result) Duration() time.Duration {
	if !r.Started() {
		return time.Duration(0)
	} else if !r.Ended() {
		return time.Since(r.Start)
	}

	return r.End.Sub(r.Start)
}

// Started indicates whether the transfer has started. If the return
// value is true, Start is a non-zero time.
func (r *Result) Started() bool {
	return r.Start != (time.Time{})
}

// Ended indicates whether the transfer has ended. If the return value
// is true, End is a non-zero time and there will be no further changes
// to the result.
func (r *Result) Ended() bool {
	return r.End != (time.Time{})
}

// Timeout indicates whether Err currently contains a non-nil value
// which indicates a timeout, either from the transport itself or from
// the request context's deadline.
func (r *Result) Timeout() bool {
	cat := transient.Categorize(r.Err)
	return cat == transient.Timeout
}

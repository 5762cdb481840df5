// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transfer

import (
	"net/http"
	urlpkg "net/url"
)

// A Response carries the response metadata a native transport reported
// for a transfer: the status line, the headers, and where the transfer
// actually landed after any redirects the transport followed.
//
// A Response holds no body. Body bytes accumulate in the bridge as the
// transport pushes data events, and are drained separately by the
// consumer.
type Response struct {
	// Status is the HTTP status line, e.g. "200 OK".
	Status string

	// StatusCode is the numeric HTTP status code, e.g. 200.
	StatusCode int

	// Proto is the protocol version reported by the transport, e.g.
	// "HTTP/1.1" or "HTTP/2.0". It may be empty if the transport does
	// not report one.
	Proto string

	// Header contains the response header fields.
	Header http.Header

	// ContentLength records the length advertised in the response
	// headers. The value -1 indicates the length is unknown.
	ContentLength int64

	// URL is the URL the response was ultimately served from, after
	// any redirects followed by the transport. It may be nil if the
	// transport does not report one.
	URL *urlpkg.URL
}

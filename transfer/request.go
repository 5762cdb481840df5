// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transfer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

const nilCtxMsg = "pullx/transfer: nil context"

// A Request describes one logical HTTP exchange to be run against a
// native transport.
//
// A Request is deliberately simpler than the lower-level http.Request
// from net/http: the body is a pre-buffered byte slice rather than a
// stream, and server-only fields are omitted. Transport adapters
// convert a Request into whatever form their host stack consumes.
//
// Like http.Request, a Request carries a context which controls
// cancellation of the whole transfer.
type Request struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.). An
	// empty string means GET.
	Method string

	// URL specifies the URL to access.
	URL *urlpkg.URL

	// Header contains the request header fields to be sent.
	Header http.Header

	// Body is the pre-buffered request body. A nil or empty body means
	// no request body is sent.
	Body []byte

	// Host optionally overrides the Host header to send. If empty, the
	// value of URL.Host is used.
	Host string

	// ctx controls cancellation of the transfer. It should only be
	// modified by copying the whole Request using WithContext.
	ctx context.Context
}

// NewRequest wraps NewRequestWithContext using the background context.
//
// Parameter body may be nil (empty body), or it may be a string,
// []byte, io.Reader, or io.ReadCloser. If body is an io.Reader, it is
// read to the end and buffered into a []byte. If body is an
// io.ReadCloser, it is closed after buffering.
func NewRequest(method, url string, body interface{}) (*Request, error) {
	return NewRequestWithContext(context.Background(), method, url, body)
}

// NewRequestWithContext returns a new Request given a method, URL, and
// optional body.
//
// Parameter body follows the same rules as in NewRequest.
func NewRequestWithContext(ctx context.Context, method, url string, body interface{}) (*Request, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = "GET"
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("pullx/transfer: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	b, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	return &Request{
		ctx:    ctx,
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Body:   b,
		Host:   u.Host,
	}, nil
}

// Context returns the request's context. The context controls
// cancellation of the whole transfer. To change the context, use
// WithContext.
//
// The returned context is always non-nil; it defaults to the
// background context.
func (r *Request) Context() context.Context {
	if r.ctx != nil {
		return r.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of r with its context changed to
// ctx, which must be non-nil.
func (r *Request) WithContext(ctx context.Context) *Request {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	r2 := new(Request)
	*r2 = *r
	r2.ctx = ctx
	return r2
}

// validMethod reports whether method is a valid token per RFC 7230
// section 3.2.6. The token character set is the same one shared by
// methods and header field names.
func validMethod(method string) bool {
	return strings.IndexFunc(method, func(r rune) bool {
		return !httpguts.IsTokenRune(r)
	}) == -1
}

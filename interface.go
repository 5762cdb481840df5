// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pullx

import (
	"context"
	"net/url"

	"github.com/pullx/pullx/bridge"
	"github.com/pullx/pullx/transfer"
	"github.com/pullx/pullx/urlenc"
)

// A Backend carries transfers on the wire, pushing progress events
// into a bridge delegate from its own goroutine(s).
//
// Start begins a transfer for the given request and returns the task
// controlling it. After a successful Start, the backend must deliver
// events to the delegate in the contract order: at most one
// OnResponse, zero or more OnData calls, and exactly one terminal
// OnComplete, even when the transfer is cancelled through the task or
// the context. The backend must not invoke two delegate methods
// concurrently for the same transfer.
//
// Implementations of Backend must be safe for concurrent use by
// multiple goroutines.
type Backend interface {
	Start(ctx context.Context, req *transfer.Request, d *bridge.Delegate) (transfer.Task, error)
}

// Doer is the interface that wraps the basic Do method.
//
// Do runs one transfer and returns the final result (and error, if
// any). Client implements the Doer interface, and any other Doer
// implementation must behave substantially the same as Client.Do.
//
// Any Doer can be converted into a Requester via the Inflate function.
type Doer interface {
	Do(r *transfer.Request) (*transfer.Result, error)
}

// Getter is the interface that wraps the basic Get method.
//
// Any Doer can be used to emulate a Getter via the Get function.
type Getter interface {
	Get(url string) (*transfer.Result, error)
}

// Header is the interface that wraps the basic Head method.
//
// Any Doer can be used to emulate a Header via the Head function.
type Header interface {
	Head(url string) (*transfer.Result, error)
}

// Poster is the interface that wraps the basic Post method.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by transfer.NewRequest and transfer.BodyBytes,
// namely: string; []byte; io.Reader; and io.ReadCloser.
//
// Any Doer can be used to emulate a Poster via the Post function.
type Poster interface {
	Post(url, contentType string, body interface{}) (*transfer.Result, error)
}

// FormPoster is the interface that wraps the basic PostForm method.
//
// The request body is set to the form-encoded keys and values from
// data, and the content type is set to
// application/x-www-form-urlencoded.
//
// Any Doer can be used to emulate a FormPoster via the PostForm
// function.
type FormPoster interface {
	PostForm(url string, data url.Values) (*transfer.Result, error)
}

// IdleCloser is the interface that wraps the basic
// CloseIdleConnections method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes connections sitting idle in a "keep-alive" state without
// interrupting connections currently in use. If the implementation
// does not support this ability, CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Requester is the interface that groups the basic Do, Get, Head,
// Post, PostForm, and CloseIdleConnections methods.
//
// Any Doer can be converted into a Requester via the Inflate function.
type Requester interface {
	Doer
	Getter
	Header
	Poster
	FormPoster
	IdleCloser
}

// Get uses the specified Doer to issue a GET to the specified URL,
// using the same policies as d.Do.
//
// To make a request with custom headers, use transfer.NewRequest and
// d.Do.
func Get(d Doer, url string) (*transfer.Result, error) {
	r, err := transfer.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	return d.Do(r)
}

// Head uses the specified Doer to issue a HEAD to the specified URL,
// using the same policies as d.Do.
//
// To make a request with custom headers, use transfer.NewRequest and
// d.Do.
func Head(d Doer, url string) (*transfer.Result, error) {
	r, err := transfer.NewRequest("HEAD", url, nil)
	if err != nil {
		return nil, err
	}
	return d.Do(r)
}

// Post uses the specified Doer to issue a POST to the specified URL,
// using the same policies as d.Do.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by Client.Post, transfer.NewRequest, and
// transfer.BodyBytes, namely: string; []byte; io.Reader; and
// io.ReadCloser.
//
// To make a request with custom headers, use transfer.NewRequest and
// d.Do.
func Post(d Doer, url, contentType string, body interface{}) (*transfer.Result, error) {
	b, err := transfer.BodyBytes(body)
	if err != nil {
		return nil, err
	}
	r, err := transfer.NewRequest("POST", url, b)
	if err != nil {
		return nil, err
	}
	r.Header.Set("Content-Type", contentType)
	return d.Do(r)
}

// PostForm uses the specified Doer to issue a POST to the specified
// URL, with data's keys and values form-encoded as the request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
// To set other headers, use transfer.NewRequest and d.Do.
func PostForm(d Doer, url string, data url.Values) (*transfer.Result, error) {
	return Post(d, url, "application/x-www-form-urlencoded", urlenc.EncodeValues(data))
}

// Inflate converts any non-nil Doer into a Requester. This may be
// helpful for interop across library boundaries, i.e. if code that
// only has access to a Doer needs to call a function that requires a
// Requester.
func Inflate(d Doer) Requester {
	if d == nil {
		panic("pullx: nil doer")
	}

	if r, ok := d.(Requester); ok {
		return r
	}

	return inflated{d}
}

type inflated struct {
	doer Doer
}

func (i inflated) Do(r *transfer.Request) (*transfer.Result, error) {
	return i.doer.Do(r)
}

func (i inflated) Get(url string) (*transfer.Result, error) {
	return Get(i.doer, url)
}

func (i inflated) Head(url string) (*transfer.Result, error) {
	return Head(i.doer, url)
}

func (i inflated) Post(url, contentType string, body interface{}) (*transfer.Result, error) {
	return Post(i.doer, url, contentType, body)
}

func (i inflated) PostForm(url string, data url.Values) (*transfer.Result, error) {
	return PostForm(i.doer, url, data)
}

func (i inflated) CloseIdleConnections() {
	if ic, ok := i.doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

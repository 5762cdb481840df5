// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pullx

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/pullx/pullx/bridge"
	"github.com/pullx/pullx/nhttp"
	"github.com/pullx/pullx/transfer"
)

var emptyHandlers = HandlerGroup{}

var errNoResponse = errors.New("pullx: transfer completed without a response")

// A Client runs HTTP transfers against a push-callback Backend and
// exposes their results through a synchronous interface. Its zero
// value is a valid configuration.
//
// The zero value client uses nhttp.Default as the Backend, places no
// bound on buffered response bodies, and installs no event handlers.
//
// A Client holds no per-transfer state, so a single Client is safe for
// concurrent use by multiple goroutines and should be reused: the
// Backend typically pools connections across transfers.
//
// For each request, Client creates a bridge, hands its delegate half
// to the Backend, and polls the handle half: first until response
// metadata (or an error) arrives, then until the terminal completion
// event, after which it drains the buffered body. Between polls the
// client suspends on the bridge's waker, so it never busy-waits. If
// the request's context ends mid-transfer, the client cancels the
// transfer at the backend and returns the context's error.
type Client struct {
	// Backend specifies the mechanics of carrying transfers on the
	// wire.
	//
	// If Backend is nil, nhttp.Default is used.
	Backend Backend

	// MaxResponseBufferSize bounds the number of unread response body
	// bytes a transfer may accumulate in its bridge. If the bound
	// would be exceeded, the transfer is aborted and reported with
	// transfer.ErrResponseTooLarge.
	//
	// If MaxResponseBufferSize is zero or negative, buffering is
	// unbounded.
	MaxResponseBufferSize int64

	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a transfer.
	//
	// If Handlers is nil, no custom handlers are run.
	Handlers *HandlerGroup
}

// Do runs one transfer for the given request and returns its result.
//
// An error is returned if the transfer could not be started, if its
// body would exceed MaxResponseBufferSize, if the backend reported a
// terminal error, or if the request's context ended first. A non-2XX
// status code does not result in an error.
//
// The returned Result is never nil. If the returned error is nil, the
// Result contains a non-nil Response and a non-nil Body (although Body
// may have zero length). If an error was returned, the Result's Err
// field references the same error.
//
// Any returned error is of type *url.Error. The url.Error's Timeout
// method, and the Result's Timeout method, report true if the transfer
// ended on a deadline.
func (c *Client) Do(r *transfer.Request) (*transfer.Result, error) {
	res := &transfer.Result{Request: r}

	backend := c.backend()
	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}
	handlers.run(BeforeTransfer, res)
	res.Start = time.Now()

	delegate, handle := bridge.New(c.MaxResponseBufferSize)
	ctx := r.Context()
	task, err := backend.Start(ctx, r, delegate)
	if err != nil {
		return finish(res, handlers, urlErrorWrap(r, err))
	}

	resp, err := awaitResponse(ctx, handle, task)
	if err != nil {
		return finish(res, handlers, urlErrorWrap(r, err))
	}
	res.Response = resp
	handlers.run(AfterResponse, res)

	body, err := awaitBody(ctx, handle, task)
	if err != nil {
		return finish(res, handlers, urlErrorWrap(r, err))
	}
	res.Body = body
	return finish(res, handlers, nil)
}

// Get issues a GET to the specified URL, using the same policies
// followed by Do.
//
// To make a request with custom headers, use transfer.NewRequest and
// Client.Do.
func (c *Client) Get(url string) (*transfer.Result, error) {
	return Get(c, url)
}

// Head issues a HEAD to the specified URL, using the same policies
// followed by Do.
//
// To make a request with custom headers, use transfer.NewRequest and
// Client.Do.
func (c *Client) Head(url string) (*transfer.Result, error) {
	return Head(c, url)
}

// Post issues a POST to the specified URL, using the same policies
// followed by Do.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by transfer.NewRequest and transfer.BodyBytes,
// namely: string; []byte; io.Reader; and io.ReadCloser.
//
// To make a request with custom headers, use transfer.NewRequest and
// Client.Do.
func (c *Client) Post(url, contentType string, body interface{}) (*transfer.Result, error) {
	return Post(c, url, contentType, body)
}

// PostForm issues a POST to the specified URL, with data's keys and
// values form-encoded as the request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
// To set other headers, use transfer.NewRequest and Client.Do.
func (c *Client) PostForm(url string, data url.Values) (*transfer.Result, error) {
	return PostForm(c, url, data)
}

// CloseIdleConnections invokes the same method on the client's
// Backend, if the Backend has one, and otherwise does nothing.
func (c *Client) CloseIdleConnections() {
	backend := c.backend()
	if ic, ok := backend.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) backend() Backend {
	if c.Backend == nil {
		return nhttp.Default
	}

	return c.Backend
}

// awaitResponse polls the handle until response metadata or a captured
// error arrives. If the context ends first, the transfer is cancelled
// at the backend and the context's error returned.
func awaitResponse(ctx context.Context, h *bridge.Handle, task transfer.Task) (*transfer.Response, error) {
	for {
		resp, err := h.TryTakeResponse()
		if err != nil {
			return nil, err
		}
		if resp != nil {
			return resp, nil
		}
		if h.IsCompleted() {
			// Metadata stored between the poll above and the flag
			// read lands here.
			resp, err = h.TryTakeResponse()
			if err != nil {
				return nil, err
			}
			if resp == nil {
				return nil, errNoResponse
			}
			return resp, nil
		}
		if err := h.Wait(ctx); err != nil {
			task.Cancel()
			return nil, err
		}
	}
}

// awaitBody polls the handle until the terminal event, then drains the
// buffered body. A captured error takes precedence over the bytes.
func awaitBody(ctx context.Context, h *bridge.Handle, task transfer.Task) ([]byte, error) {
	for !h.IsCompleted() {
		if err := h.Wait(ctx); err != nil {
			task.Cancel()
			return nil, err
		}
	}
	body, err := h.TakeResponseBuffer()
	if err != nil {
		return nil, err
	}
	if body == nil {
		body = []byte{}
	}
	return body, nil
}

func finish(res *transfer.Result, handlers *HandlerGroup, err error) (*transfer.Result, error) {
	res.Err = err
	res.End = time.Now()
	handlers.run(AfterTransfer, res)
	return res, err
}

func urlErrorWrap(r *transfer.Request, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(r.Method),
		URL: r.URL.String(),
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}

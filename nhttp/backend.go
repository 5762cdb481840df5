// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package nhttp

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"

	"github.com/pullx/pullx/bridge"
	"github.com/pullx/pullx/transfer"
)

// defaultReadChunkSize is the read buffer size used when Backend's
// ReadChunkSize is unset. It matches the copy buffer size used by
// io.Copy.
const defaultReadChunkSize = 32 * 1024

// A Backend runs transfers on the standard net/http stack. Its zero
// value is a valid configuration.
//
// A Backend is safe for concurrent use by multiple goroutines, and
// should be reused across transfers so the underlying http.Client can
// pool connections.
type Backend struct {
	// Client specifies the underlying HTTP client. If Client is nil,
	// http.DefaultClient is used.
	Client *http.Client

	// ReadChunkSize is the size of the read buffer used to pull body
	// bytes from the response and push them into the bridge. If zero,
	// a 32 KiB buffer is used.
	ReadChunkSize int
}

// Default is a ready-to-use backend riding on http.DefaultClient.
var Default = &Backend{}

// NewHTTP2 returns a Backend whose transport is explicitly configured
// for HTTP/2 over TLS via golang.org/x/net/http2. Requests to plain
// HTTP or HTTP/1.1-only servers still work; the transport negotiates
// the protocol per connection.
func NewHTTP2() (*Backend, error) {
	tr := &http.Transport{}
	if err := http2.ConfigureTransport(tr); err != nil {
		return nil, err
	}
	return &Backend{Client: &http.Client{Transport: tr}}, nil
}

// Start begins a transfer for req and returns the task controlling it.
// Delegate events are delivered from a dedicated goroutine until the
// terminal OnComplete event.
//
// The transfer runs on a context derived from ctx, so cancelling ctx
// aborts it just like Task.Cancel does. Start itself does not block on
// the network.
func (b *Backend) Start(ctx context.Context, req *transfer.Request, d *bridge.Delegate) (transfer.Task, error) {
	if req == nil {
		panic("pullx/nhttp: nil request")
	}
	if d == nil {
		panic("pullx/nhttp: nil delegate")
	}
	ctx, cancel := context.WithCancel(ctx)
	hr, err := toHTTPRequest(ctx, req)
	if err != nil {
		cancel()
		return nil, err
	}
	t := &task{cancel: cancel}
	log.Debug().Str("method", hr.Method).Str("url", hr.URL.String()).
		Msg("nhttp: transfer started")
	go b.run(t, hr, d)
	return t, nil
}

// CloseIdleConnections closes idle connections held by the underlying
// HTTP client's transport, if the transport supports it.
func (b *Backend) CloseIdleConnections() {
	b.client().CloseIdleConnections()
}

// run is the transfer goroutine. It translates the pull-style net/http
// response into push events on the delegate, ending with exactly one
// OnComplete.
func (b *Backend) run(t *task, hr *http.Request, d *bridge.Delegate) {
	resp, err := b.client().Do(hr)
	if err != nil {
		log.Debug().Str("url", hr.URL.String()).Err(err).
			Msg("nhttp: transfer failed")
		d.OnComplete(t, err)
		return
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	d.OnResponse(t, metadata(resp))
	log.Debug().Str("url", hr.URL.String()).Int("status", resp.StatusCode).
		Msg("nhttp: response received")
	buf := make([]byte, b.chunkSize())
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			d.OnData(t, buf[:n])
		}
		if err == io.EOF {
			log.Debug().Str("url", hr.URL.String()).
				Msg("nhttp: transfer completed")
			d.OnComplete(t, nil)
			return
		}
		if err != nil {
			log.Debug().Str("url", hr.URL.String()).Err(err).
				Msg("nhttp: transfer failed")
			d.OnComplete(t, err)
			return
		}
	}
}

func (b *Backend) client() *http.Client {
	if b.Client == nil {
		return http.DefaultClient
	}

	return b.Client
}

func (b *Backend) chunkSize() int {
	if b.ReadChunkSize <= 0 {
		return defaultReadChunkSize
	}

	return b.ReadChunkSize
}

// task aborts a transfer by cancelling the context its request runs
// on. Cancellation makes the pending Do call or body read fail, which
// the transfer goroutine reports as the terminal event. Cancel is
// idempotent.
type task struct {
	cancel context.CancelFunc
}

func (t *task) Cancel() {
	t.cancel()
}

func toHTTPRequest(ctx context.Context, req *transfer.Request) (*http.Request, error) {
	hr, err := http.NewRequestWithContext(ctx, req.Method, req.URL.String(), nil)
	if err != nil {
		return nil, err
	}
	if req.Header != nil {
		hr.Header = req.Header.Clone()
	}
	if len(req.Body) > 0 {
		hr.Body = io.NopCloser(bytes.NewReader(req.Body))
		hr.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(req.Body)), nil
		}
		hr.ContentLength = int64(len(req.Body))
	}
	hr.Host = req.Host
	return hr, nil
}

func metadata(resp *http.Response) *transfer.Response {
	m := &transfer.Response{
		Status:        resp.Status,
		StatusCode:    resp.StatusCode,
		Proto:         resp.Proto,
		Header:        resp.Header,
		ContentLength: resp.ContentLength,
	}
	if resp.Request != nil {
		m.URL = resp.Request.URL
	}
	return m
}

// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package nhttp

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pullx/pullx/bridge"
	"github.com/pullx/pullx/transfer"
)

// drive runs the documented consumer protocol against a handle: wait
// for metadata or an error, then wait for completion and drain the
// body.
func drive(t *testing.T, h *bridge.Handle, task transfer.Task) (*transfer.Response, []byte, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var resp *transfer.Response
	for {
		r, err := h.TryTakeResponse()
		if err != nil {
			return nil, nil, err
		}
		if r != nil {
			resp = r
			break
		}
		if h.IsCompleted() {
			r, err = h.TryTakeResponse()
			if err != nil || r == nil {
				return nil, nil, err
			}
			resp = r
			break
		}
		require.NoError(t, h.Wait(ctx))
	}

	for !h.IsCompleted() {
		require.NoError(t, h.Wait(ctx))
	}
	body, err := h.TakeResponseBuffer()
	if err != nil {
		return resp, nil, err
	}
	return resp, body, nil
}

func start(t *testing.T, b *Backend, req *transfer.Request, maxBuf int64) (*bridge.Handle, transfer.Task) {
	t.Helper()
	d, h := bridge.New(maxBuf)
	task, err := b.Start(req.Context(), req, d)
	require.NoError(t, err)
	return h, task
}

func TestBackendOK(t *testing.T) {
	payload := bytes.Repeat([]byte("0123456789"), 100)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	b := &Backend{Client: server.Client()}
	req, err := transfer.NewRequest("GET", server.URL, nil)
	require.NoError(t, err)
	h, task := start(t, b, req, 0)

	resp, body, err := drive(t, h, task)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/octet-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, payload, body)
}

func TestBackendEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(204)
	}))
	defer server.Close()

	b := &Backend{Client: server.Client()}
	req, err := transfer.NewRequest("GET", server.URL, nil)
	require.NoError(t, err)
	h, task := start(t, b, req, 0)

	resp, body, err := drive(t, h, task)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 204, resp.StatusCode)
	assert.Empty(t, body)
}

func TestBackendRequestBody(t *testing.T) {
	var received []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = io.ReadAll(r.Body)
		w.WriteHeader(200)
	}))
	defer server.Close()

	b := &Backend{Client: server.Client()}
	req, err := transfer.NewRequest("POST", server.URL, "ping")
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")
	h, task := start(t, b, req, 0)

	resp, _, err := drive(t, h, task)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []byte("ping"), received)
}

func TestBackendResponseTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte{'x'}, 4096))
	}))
	defer server.Close()

	b := &Backend{Client: server.Client(), ReadChunkSize: 64}
	req, err := transfer.NewRequest("GET", server.URL, nil)
	require.NoError(t, err)
	h, task := start(t, b, req, 100)

	_, _, err = drive(t, h, task)
	require.Error(t, err)
	assert.True(t, transfer.IsTooLarge(err))
}

func TestBackendCancel(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	b := &Backend{Client: server.Client()}
	req, err := transfer.NewRequest("GET", server.URL, nil)
	require.NoError(t, err)
	h, task := start(t, b, req, 0)

	task.Cancel()
	task.Cancel() // idempotent

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for !h.IsCompleted() {
		require.NoError(t, h.Wait(ctx))
	}
	_, err = h.TryTakeResponse()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackendContextCancel(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	reqCtx, cancelReq := context.WithCancel(context.Background())
	b := &Backend{Client: server.Client()}
	req, err := transfer.NewRequestWithContext(reqCtx, "GET", server.URL, nil)
	require.NoError(t, err)
	h, _ := start(t, b, req, 0)

	cancelReq()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for !h.IsCompleted() {
		require.NoError(t, h.Wait(ctx))
	}
	_, err = h.TryTakeResponse()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackendTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	b := &Backend{}
	req, err := transfer.NewRequest("GET", server.URL, nil)
	require.NoError(t, err)
	h, task := start(t, b, req, 0)

	_, _, err = drive(t, h, task)
	assert.Error(t, err)
}

func TestBackendHTTP2(t *testing.T) {
	server := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("h2 body"))
	}))
	server.EnableHTTP2 = true
	server.StartTLS()
	defer server.Close()

	b := &Backend{Client: server.Client()}
	req, err := transfer.NewRequest("GET", server.URL, nil)
	require.NoError(t, err)
	h, task := start(t, b, req, 0)

	resp, body, err := drive(t, h, task)
	require.NoError(t, err)
	assert.Equal(t, "HTTP/2.0", resp.Proto)
	assert.Equal(t, []byte("h2 body"), body)
}

func TestNewHTTP2(t *testing.T) {
	b, err := NewHTTP2()
	require.NoError(t, err)
	require.NotNil(t, b.Client)
	assert.NotNil(t, b.Client.Transport)
	b.CloseIdleConnections()
}

func TestBackendHostOverride(t *testing.T) {
	var gotHost string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHost = r.Host
	}))
	defer server.Close()

	b := &Backend{Client: server.Client()}
	req, err := transfer.NewRequest("GET", server.URL, nil)
	require.NoError(t, err)
	req.Host = "override.example.com"
	h, task := start(t, b, req, 0)

	_, _, err = drive(t, h, task)
	require.NoError(t, err)
	assert.Equal(t, "override.example.com", gotHost)
}

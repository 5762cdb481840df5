// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transfer

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResultStatusCode(t *testing.T) {
	r := &Result{}
	assert.Equal(t, 0, r.StatusCode())
	r.Response = &Response{StatusCode: 404}
	assert.Equal(t, 404, r.StatusCode())
}

func TestResultHeader(t *testing.T) {
	r := &Result{}
	assert.Nil(t, r.Header())
	assert.Equal(t, "", r.Header().Get("X-Anything"))
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	r.Response = &Response{Header: h}
	assert.Equal(t, "application/json", r.Header().Get("Content-Type"))
}

func TestResultLifecycle(t *testing.T) {
	r := &Result{}
	assert.False(t, r.Started())
	assert.False(t, r.Ended())
	assert.Equal(t, time.Duration(0), r.Duration())
	r.Start = time.Now().Add(-time.Minute)
	assert.True(t, r.Started())
	assert.False(t, r.Ended())
	assert.Greater(t, r.Duration(), time.Duration(0))
	r.End = r.Start.Add(30 * time.Second)
	assert.True(t, r.Ended())
	assert.Equal(t, 30*time.Second, r.Duration())
}

func TestResultTimeout(t *testing.T) {
	r := &Result{}
	assert.False(t, r.Timeout())
	r.Err = errors.New("not a timeout")
	assert.False(t, r.Timeout())
	r.Err = &url.Error{Op: "Get", URL: "http://example.com", Err: context.DeadlineExceeded}
	assert.True(t, r.Timeout())
	r.Err = context.Canceled
	assert.False(t, r.Timeout())
}

func TestIsTooLarge(t *testing.T) {
	assert.False(t, IsTooLarge(nil))
	assert.False(t, IsTooLarge(errors.New("other")))
	assert.True(t, IsTooLarge(ErrResponseTooLarge))
	wrapped := &url.Error{Op: "Get", URL: "http://example.com", Err: ErrResponseTooLarge}
	assert.True(t, IsTooLarge(wrapped))
}

// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package nhttp adapts the standard net/http stack into the push-callback
transport contract consumed by package bridge.

Each transfer runs on its own goroutine, which performs the request via
an http.Client and converts what it observes into delegate events: one
OnResponse when the response headers arrive, one OnData per body read,
and exactly one OnComplete when the body is exhausted or the transfer
fails. Connection establishment, TLS, proxying, redirects and DNS all
belong to the underlying http.Client; this package implements none of
them.

Tasks returned by this backend support cancellation, which works by
cancelling the context the underlying request runs on. They do not
advertise pause/resume flow control: net/http bodies are pull-style
readers, so delivery self-paces and the bridge's flow-control handshake
is unnecessary.

The zero value Backend is a valid configuration riding on
http.DefaultClient. Use NewHTTP2 for a backend whose transport is
configured for HTTP/2 over TLS.
*/
package nhttp

// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package pullx provides a pull-based HTTP client facade over transports
that deliver their results through asynchronous push callbacks.

Create a Client to begin making requests.

	client := &pullx.Client{}
	res, err := client.Get("https://www.example.com")
	...
	res, err := client.Post("https://www.example.com/upload",
		"application/json", &buf)
	...
	res, err := client.PostForm("http://example.com/form",
		url.Values{"key": {"Value"}, "id": {"123"}})

Every method buffers the entire response body and returns it, together
with the response metadata, in a transfer.Result.

A Client drives each request through a bridge (package bridge): the
transport pushes response metadata, body chunks and a terminal
completion event into the bridge from its own goroutine, while the
client's polling loop suspends between polls until the transfer reaches
the state it needs. The loop never spins and never blocks the
transport.

For control over how requests are carried on the wire, supply a custom
Backend. The default backend runs transfers on the standard net/http
stack:

	backend, err := nhttp.NewHTTP2()
	...
	client := &pullx.Client{
		Backend: backend,
	}

To bound how much unread response body a transfer may accumulate, set
MaxResponseBufferSize. A transfer whose body would exceed the bound is
aborted and reported with transfer.ErrResponseTooLarge:

	client := &pullx.Client{
		MaxResponseBufferSize: 1 << 20, // 1 MiB
	}

To hook into the transfer lifecycle, install a handler into the
appropriate handler chain:

	handlers := &pullx.HandlerGroup{}
	handlers.PushBack(pullx.AfterResponse, pullx.HandlerFunc(
		func(_ pullx.Event, r *transfer.Result) {
			log.Printf("%s returned %d", r.Request.URL, r.StatusCode())
		}))
	client := &pullx.Client{
		Handlers: handlers,
	}
*/
package pullx

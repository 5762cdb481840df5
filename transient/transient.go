// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"errors"
	"syscall"
)

// A Category is the transience category of a particular error, as
// reported by function Categorize().
//
// The category Not means the error is not transient from the
// perspective of completing a transfer successfully, or in other words
// that repeating the transfer after encountering this error is very
// unlikely to succeed.
//
// All other categories indicate the error is transient: repeating the
// transfer has some prospect of success.
type Category int

const (
	// Not indicates any non-transient error.
	Not Category = iota
	// Timeout indicates a client-side timeout. The remote host may be
	// going through a temporary period of slowness, or a future
	// transfer may succeed if given a longer deadline.
	//
	// Function Categorize() will return Timeout if the error or any of
	// its wrapped causes has a Timeout() function that reports true.
	// This covers transport timeout errors, url.Error values whose
	// cause timed out, and context.DeadlineExceeded.
	Timeout
	// ConnRefused indicates the remote host refused the connection,
	// and corresponds to the POSIX error code ECONNREFUSED.
	//
	// Although refusal may be a permanent condition, it is classified
	// as transient because it also happens while the service on the
	// remote host is starting or restarting and is temporarily not
	// listening on its port.
	//
	// Function Categorize() will return ConnRefused if the error is
	// not a Timeout, and the error or any of its wrapped causes is
	// equal to syscall.ECONNREFUSED.
	ConnRefused
	// ConnReset indicates the remote host returned an RST packet on a
	// previously active TCP connection, and corresponds to the POSIX
	// error code ECONNRESET.
	//
	// A reset is common when the remote host goes down mid-response,
	// or when the remote host is a load balancer draining a backend,
	// so it tends to indicate a high probability of success on a
	// repeat transfer.
	//
	// Function Categorize() will return ConnReset if the error is not
	// a Timeout, and the error or any of its wrapped causes is equal
	// to syscall.ECONNRESET.
	ConnReset
)

// Categorize returns the transience category of the given error. A nil
// error, and an error that is not transient from the perspective of
// completing a transfer, both produce the return value Not.
//
// In assessing transience, Categorize looks at wrapped cause errors
// contained within err, not just err itself. However, Categorize never
// checks if an error has a Temporary() function that returns true, as
// the semantics of Temporary() aren't entirely clear.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ECONNRESET {
			return ConnReset
		} else if errno == syscall.ECONNREFUSED {
			return ConnRefused
		}
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}

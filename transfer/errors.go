// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transfer

import "errors"

// ErrResponseTooLarge is the error captured by the bridge's
// backpressure guard when appending a data chunk would push the
// buffered response body past the configured maximum size.
//
// The offending chunk is dropped in its entirety, the underlying
// transfer is cancelled, and the error is surfaced to the consumer on
// its next poll.
var ErrResponseTooLarge = errors.New("pullx/transfer: response body exceeds maximum buffer size")

// IsTooLarge reports whether err is, or wraps, ErrResponseTooLarge.
func IsTooLarge(err error) bool {
	return errors.Is(err, ErrResponseTooLarge)
}

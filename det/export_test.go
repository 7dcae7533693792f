// SPDX-License-Identifier: MIT

package det

import "time"

// WithSleeper swaps the pacing sleep for fn so tests never wait on the wall clock.
func WithSleeper(fn func(time.Duration)) Option {
	return func(o *options) { o.sleep = fn }
}

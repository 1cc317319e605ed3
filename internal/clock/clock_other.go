//go:build !unix

package clock

import "time"

// Ticks returns nanoseconds elapsed on Go's monotonic clock since the
// package was initialized.
func Ticks() uint64 {
	return uint64(time.Since(start))
}

//go:build unix

package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

// Ticks returns the raw CLOCK_MONOTONIC reading in nanoseconds.
func Ticks() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return sinceStart()
	}
	return uint64(ts.Nano())
}

func sinceStart() uint64 {
	return uint64(time.Since(start))
}

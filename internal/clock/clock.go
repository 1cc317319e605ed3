// Package clock reads a steady clock for seeding. It is not a timer; the
// benchmark harness measures with the monotonic reading carried by time.Time.
package clock

import "time"

var start = time.Now()

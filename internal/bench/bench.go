// Package bench times a counted loop of an in-place buffer operation.
package bench

import "time"

// Number is the set of element types the harness benchmarks.
type Number interface {
	~int8 | ~int32 | ~int64 | ~float64
}

// Op performs one step of work on buf at loop index i.
type Op[T Number] func(buf []T, i int)

// Result is one timed benchmark.
type Result struct {
	Op         string  `json:"op"`
	Type       string  `json:"type"`
	DurationNs int64   `json:"duration_ns"`
	Rate       float64 `json:"rate"`
	Iterations int     `json:"iterations"`
}

// Run calls fn(buf, i) for i in [0, n) and times the loop. A negative n runs
// nothing. fn may panic (integer division by zero); the panic is not
// recovered here.
func Run[T Number](op, typ string, buf []T, fn Op[T], n int) Result {
	if n < 0 {
		n = 0
	}

	start := time.Now()
	for i := 0; i < n; i++ {
		fn(buf, i)
	}
	elapsed := time.Since(start)

	if elapsed < time.Nanosecond {
		elapsed = time.Nanosecond
	}
	return Result{
		Op:         op,
		Type:       typ,
		DurationNs: elapsed.Nanoseconds(),
		Rate:       Rate(n, elapsed),
		Iterations: n,
	}
}

// Rate returns iterations per second. Elapsed times below one nanosecond
// count as one nanosecond.
func Rate(n int, elapsed time.Duration) float64 {
	ns := elapsed.Nanoseconds()
	if ns < 1 {
		ns = 1
	}
	return 1e9 * float64(n) / float64(ns)
}

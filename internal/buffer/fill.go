// Package buffer fills operand buffers with non-zero random values.
//
// Every filler writes indices [0, len(buf)-1). The trailing slot is left for
// the benchmark loop, which writes buf[i+1] on its last iteration.
package buffer

import "math"

// Source32 yields 32-bit random values.
type Source32 interface {
	Uint32() uint32
}

// Source64 yields 64-bit random values.
type Source64 interface {
	Uint64() uint64
}

// Int32 fills buf with int32(r+1). The one raw value that wraps to zero is
// redrawn.
func Int32(buf []int32, src Source32) {
	for i := 0; i < len(buf)-1; i++ {
		v := int32(src.Uint32() + 1)
		for v == 0 {
			v = int32(src.Uint32() + 1)
		}
		buf[i] = v
	}
}

// Int64 fills buf with int64(r+1), redrawing the wrap to zero.
func Int64(buf []int64, src Source64) {
	for i := 0; i < len(buf)-1; i++ {
		v := int64(src.Uint64() + 1)
		for v == 0 {
			v = int64(src.Uint64() + 1)
		}
		buf[i] = v
	}
}

// Float64 fills buf with float64(r)+1, which is always >= 1.
func Float64(buf []float64, src Source64) {
	for i := 0; i < len(buf)-1; i++ {
		buf[i] = float64(src.Uint64()) + 1
	}
}

// Int8 fills buf with r%MaxInt8+1, so every value lies in [1, 127].
func Int8(buf []int8, src Source32) {
	for i := 0; i < len(buf)-1; i++ {
		buf[i] = int8(src.Uint32()%math.MaxInt8 + 1)
	}
}

package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varex83/acs-lab-1/internal/rng"
)

// scripted replays fixed values, then repeats the last one.
type scripted struct {
	vals []uint64
	pos  int
}

func (s *scripted) next() uint64 {
	v := s.vals[s.pos]
	if s.pos < len(s.vals)-1 {
		s.pos++
	}
	return v
}

func (s *scripted) Uint32() uint32 { return uint32(s.next()) }
func (s *scripted) Uint64() uint64 { return s.next() }

func TestFillNeverWritesZero(t *testing.T) {
	const n = 10000
	src := rng.New(7)

	i32 := make([]int32, n+1)
	Int32(i32, src)
	i64 := make([]int64, n+1)
	Int64(i64, src)
	f64 := make([]float64, n+1)
	Float64(f64, src)
	i8 := make([]int8, n+1)
	Int8(i8, src)

	for i := 0; i < n; i++ {
		require.NotZero(t, i32[i], "int32 index %d", i)
		require.NotZero(t, i64[i], "int64 index %d", i)
		require.GreaterOrEqual(t, f64[i], 1.0, "float64 index %d", i)
		require.True(t, i8[i] >= 1 && i8[i] <= math.MaxInt8, "int8 index %d = %d", i, i8[i])
	}
}

func TestFillLeavesTrailingSlot(t *testing.T) {
	buf := []int32{0, 0, 0, -5}
	Int32(buf, rng.New(1))

	assert.Equal(t, int32(-5), buf[3])
}

func TestFillRedrawsWrapToZero(t *testing.T) {
	src := &scripted{vals: []uint64{math.MaxUint32, 4}}
	buf := make([]int32, 2)
	Int32(buf, src)
	assert.Equal(t, int32(5), buf[0])

	src = &scripted{vals: []uint64{math.MaxUint64, 9}}
	buf64 := make([]int64, 2)
	Int64(buf64, src)
	assert.Equal(t, int64(10), buf64[0])
}

func TestFillTransforms(t *testing.T) {
	src := &scripted{vals: []uint64{math.MaxInt32}}
	buf := make([]int32, 2)
	Int32(buf, src)
	assert.Equal(t, int32(math.MinInt32), buf[0], "MaxInt32+1 wraps negative")

	src = &scripted{vals: []uint64{127, 126, 300}}
	b8 := make([]int8, 4)
	Int8(b8, src)
	assert.Equal(t, []int8{1, 127, 47, 0}, b8)

	src = &scripted{vals: []uint64{0}}
	f := make([]float64, 2)
	Float64(f, src)
	assert.Equal(t, 1.0, f[0])
}

func TestFillEmptyBuffer(t *testing.T) {
	assert.NotPanics(t, func() {
		Int32(nil, rng.New(1))
		Int8([]int8{}, rng.New(1))
		Float64(nil, rng.New(1))
	})
}

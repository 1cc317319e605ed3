package bench

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInvokesInOrder(t *testing.T) {
	var seen []int
	record := func(_ []int32, i int) { seen = append(seen, i) }

	res := Run[int32]("+", "int", nil, record, 5)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	assert.Equal(t, 5, res.Iterations)
}

func TestRunZeroAndNegativeCounts(t *testing.T) {
	calls := 0
	count := func(_ []int64, _ int) { calls++ }

	res := Run[int64]("-", "long", nil, count, 0)
	assert.Zero(t, calls)
	assert.Zero(t, res.Rate)
	assert.Positive(t, res.DurationNs)

	res = Run[int64]("-", "long", nil, count, -3)
	assert.Zero(t, calls)
	assert.Zero(t, res.Iterations)
}

func TestRunIntAddOverSequence(t *testing.T) {
	const n = 1000
	buf := make([]int32, n+1)
	for i := range buf {
		buf[i] = int32(i + 1)
	}

	res := Run("+", "int", buf, Add[int32], n)

	assert.Equal(t, "+", res.Op)
	assert.Equal(t, "int", res.Type)
	assert.Positive(t, res.DurationNs)
	assert.Positive(t, res.Rate)
	assert.False(t, math.IsInf(res.Rate, 0))
	// prefix sums of 1..n+1
	assert.Equal(t, int32((n+1)*(n+2)/2), buf[n])
}

func TestRate(t *testing.T) {
	assert.InDelta(t, 1e9*1000/2500, Rate(1000, 2500*time.Nanosecond), 1e-9)
	assert.InDelta(t, 1e8, Rate(100_000_000, time.Second), 1e-6)
	assert.Equal(t, 1e9*10, Rate(10, 0))
	assert.Equal(t, 1e9*10, Rate(10, -time.Second))
}

func TestRunRateMatchesDuration(t *testing.T) {
	buf := make([]float64, 101)
	for i := range buf {
		buf[i] = 1.5
	}
	res := Run("*", "double", buf, Mul[float64], 100)

	require.Positive(t, res.DurationNs)
	assert.InDelta(t, 1e9*100/float64(res.DurationNs), res.Rate, 1e-6)
}

package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
		assert.Equal(t, a.Uint32(), b.Uint32())
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a, b := New(1), New(2)
	same := 0
	for i := 0; i < 64; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 64)
}

func TestClockSeededSourcesAreIndependent(t *testing.T) {
	narrow, wide := NewNarrow(), NewWide()
	same := 0
	for i := 0; i < 64; i++ {
		if narrow.Uint64() == wide.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 64)
}

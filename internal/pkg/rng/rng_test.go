package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SameSeedSameStream(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(10), b.IntN(10))
	}
}

func TestNew_DifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	matches := 0
	for i := 0; i < 100; i++ {
		if a.Float64() == b.Float64() {
			matches++
		}
	}
	assert.Less(t, matches, 100)
}

func TestFloat64_Range(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestIntN_Range(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		v := src.IntN(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)

	// Two crypto draws colliding would be astonishing
	assert.NotEqual(t, a, b)
}

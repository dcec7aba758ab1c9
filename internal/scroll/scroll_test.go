package scroll

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	s := New(DefaultParams)
	const count, viewport = 40, 450

	for range 5000 {
		wheel := float32(rng.IntN(7) - 3)
		s.Update(wheel, count, viewport)

		assert.LessOrEqual(t, s.Offset, float32(0))
		assert.GreaterOrEqual(t, s.Offset, -s.LowerBound)
	}
	assert.Equal(t, float32(count*30-viewport), s.LowerBound)
}

func TestShortListCannotScroll(t *testing.T) {
	s := New(DefaultParams)
	s.Update(-10, 5, 450)

	assert.Equal(t, float32(0), s.LowerBound)
	assert.Equal(t, float32(0), s.Offset)
}

func TestFlickSettles(t *testing.T) {
	s := New(DefaultParams)

	s.Update(-1, 100, 450)
	assert.Equal(t, float32(-5), s.Offset)
	assert.InDelta(t, -4.5, s.Velocity, 1e-6)

	for range 200 {
		s.Update(0, 100, 450)
	}
	// Сумма геометрической прогрессии 5 / (1 - 0.9)
	assert.InDelta(t, -50, s.Offset, 0.01)
	assert.InDelta(t, 0, s.Velocity, 1e-6)
}

func TestWheelUpAtTopIsClamped(t *testing.T) {
	s := New(DefaultParams)
	s.Update(3, 100, 450)
	assert.Equal(t, float32(0), s.Offset)
}

func TestVisibleAndRange(t *testing.T) {
	s := New(DefaultParams)
	const viewport = 300 // десять строк

	first, last := s.Range(100, viewport)
	assert.Equal(t, 0, first)
	assert.Equal(t, 10, last)
	assert.True(t, s.Visible(9, viewport))
	assert.False(t, s.Visible(10, viewport))

	s.Offset = -45
	first, last = s.Range(100, viewport)
	assert.Equal(t, 2, first)
	assert.Equal(t, 11, last)
	assert.False(t, s.Visible(1, viewport))

	for i := range 100 {
		assert.Equal(t, i >= first && i < last, s.Visible(i, viewport), "row %d", i)
	}
}

func TestRangeOfShortList(t *testing.T) {
	s := New(DefaultParams)
	first, last := s.Range(3, 300)
	assert.Equal(t, 0, first)
	assert.Equal(t, 3, last)

	first, last = s.Range(0, 300)
	assert.Equal(t, 0, first)
	assert.Equal(t, 0, last)
}

func TestBottomShowsLastRow(t *testing.T) {
	s := New(DefaultParams)
	for range 500 {
		s.Update(-5, 50, 300)
	}
	assert.Equal(t, -s.LowerBound, s.Offset)

	_, last := s.Range(50, 300)
	assert.Equal(t, 50, last)
}

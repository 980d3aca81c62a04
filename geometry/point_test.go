package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointEquals(t *testing.T) {
	assert.True(t, Point{1, 2}.Equals(Point{1, 2}))
	assert.False(t, Point{1, 2}.Equals(Point{2, 1}))

	// Differences within machine epsilon are still equal. This is the
	// round-off budget of the circumcenter arithmetic, nothing more.
	assert.True(t, Point{1, 2}.Equals(Point{1 + Epsilon, 2 - Epsilon}))

	// But it is not general fuzzy matching
	assert.False(t, Point{1, 2}.Equals(Point{1 + 1e-9, 2}))
	assert.False(t, Point{1, 2}.Equals(Point{1, 2 + 1e-9}))

	// Both coordinates must be within tolerance
	assert.False(t, Point{1, 2}.Equals(Point{1, 3}))
	assert.False(t, Point{1, 2}.Equals(Point{0, 2}))
}

func TestPointFinite(t *testing.T) {
	inf := math.Inf(1)

	assert.True(t, Point{0, 0}.Finite())
	assert.True(t, Point{-1e300, 1e300}.Finite())

	assert.False(t, Point{inf, 0}.Finite())
	assert.False(t, Point{0, inf}.Finite())
	assert.False(t, Point{-inf, -inf}.Finite())
}

func TestSlope(t *testing.T) {
	assert.Equal(t, 1.0, Slope(Point{0, 0}, Point{1, 1}))
	assert.Equal(t, -2.0, Slope(Point{0, 0}, Point{1, -2}))
	assert.Equal(t, 0.0, Slope(Point{0, 3}, Point{5, 3}))

	// Slope is symmetric in its arguments
	assert.Equal(t, Slope(Point{2, 5}, Point{7, 1}), Slope(Point{7, 1}, Point{2, 5}))

	// Vertical lines produce the +Inf sentinel
	assert.True(t, math.IsInf(Slope(Point{3, 0}, Point{3, 10}), 1))
}

func TestMidpoint(t *testing.T) {
	assert.Equal(t, Point{1, 2}, Midpoint(Point{0, 0}, Point{2, 4}))
	assert.Equal(t, Point{-0.5, 0.5}, Midpoint(Point{-1, 1}, Point{0, 0}))
}

func TestDistanceSquared(t *testing.T) {
	// 3-4-5 triangle; squared distance, so no square root
	assert.Equal(t, 25.0, Point{0, 0}.DistanceSquared(Point{3, 4}))
	assert.Equal(t, 0.0, Point{2, 2}.DistanceSquared(Point{2, 2}))
	assert.Equal(t, 2.0, Point{1, 1}.DistanceSquared(Point{0, 0}))
}

package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedZeroVector(t *testing.T) {
	assert.Equal(t, Zero, Zero.Normalized())
	assert.Equal(t, Zero, V(math.NaN(), 1).Normalized())

	n := V(3, 4).Normalized()
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
}

func TestPerpHandedness(t *testing.T) {
	// Rope hanging straight down: tangent points left on screen.
	assert.Equal(t, V(-10, 0), V(0, 10).Perp())
	assert.Equal(t, 0.0, V(2, 5).Dot(V(2, 5).Perp()))
}

func TestClampLength(t *testing.T) {
	v := V(30, 40).ClampLength(5)
	assert.InDelta(t, 5, v.Length(), 1e-12)
	assert.Equal(t, V(1, 1), V(1, 1).ClampLength(5))
}

func TestLerpAngleShortestArc(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		t    float64
		want float64
	}{
		{"halfway", 0, math.Pi / 2, 0.5, math.Pi / 4},
		{"across wrap", math.Pi - 0.1, -math.Pi + 0.1, 0.5, math.Pi},
		{"clamped", 0, 1, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 0, DeltaAngle(tt.want, LerpAngle(tt.a, tt.b, tt.t)), 1e-9)
		})
	}
}

func TestUpAngle(t *testing.T) {
	a, ok := UpAngle(Up)
	assert.True(t, ok)
	assert.InDelta(t, 0, a, 1e-12)

	a, ok = UpAngle(Right)
	assert.True(t, ok)
	assert.True(t, UpFromAngle(a).ApproxEqual(Right, 1e-12))

	_, ok = UpAngle(Zero)
	assert.False(t, ok)
}

func TestExpFactor(t *testing.T) {
	assert.Equal(t, 0.0, ExpFactor(0, 0.02))
	f := ExpFactor(10, 0.02)
	assert.Greater(t, f, 0.0)
	assert.Less(t, f, 1.0)
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0.3))
	assert.Equal(t, -1.0, Sign(-2))
	assert.Equal(t, 0.0, Sign(0))
}

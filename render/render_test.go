package render

import (
	"testing"

	"github.com/automoto/tethered/config"
	"github.com/automoto/tethered/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(n int, y float64) []vmath.Vec2 {
	out := make([]vmath.Vec2, n)
	for i := range out {
		out[i] = vmath.V(float64(i)*10, y)
	}
	return out
}

func TestRopeSmoother(t *testing.T) {
	r := NewRopeSmoother(60, 18, 1)

	first := r.Update(line(5, 0))
	assert.Equal(t, line(5, 0), first, "first update snaps")

	moved := line(5, 40)
	got := r.Update(moved)
	assert.Equal(t, moved[0], got[0], "endpoints follow the characters")
	assert.Equal(t, moved[4], got[4])
	for i := 1; i < 4; i++ {
		assert.Greater(t, got[i].Y, 0.0)
		assert.Less(t, got[i].Y, 40.0, "point %d lags its link", i)
	}

	for i := 0; i < 120; i++ {
		got = r.Update(moved)
	}
	for i := range got {
		assert.InDelta(t, 40, got[i].Y, 1e-3)
		assert.True(t, got[i].IsFinite())
	}

	resized := line(7, 10)
	assert.Equal(t, resized, r.Update(resized), "a new link count snaps")
	assert.Len(t, r.Points(), 7)
}

func TestFade(t *testing.T) {
	f := NewFade(0.5)
	assert.False(t, f.Active())
	assert.Equal(t, float32(0), f.Update(0.1))

	f.Start()
	require.True(t, f.Active())
	assert.Equal(t, float32(1), f.Alpha())

	mid := f.Update(0.25)
	assert.InDelta(t, 0.25, mid, 1e-5)
	assert.True(t, f.Active())

	assert.Equal(t, float32(0), f.Update(0.5))
	assert.False(t, f.Active())

	f.Start()
	assert.Equal(t, float32(1), f.Alpha(), "restart begins opaque again")
	assert.Less(t, f.Update(0.1), float32(1))
}

func TestPoseFor(t *testing.T) {
	idle := PoseFor(config.StateGrounded, 0, 0, 0)
	assert.Equal(t, Pose{ScaleX: 1, ScaleY: 1}, idle)

	peak := PoseFor(config.StateGrounded, 0.25, 0, 0)
	assert.InDelta(t, 1.04, peak.ScaleY, 1e-9, "half a cycle at 2 Hz is the top of the pulse")

	anchored := PoseFor(config.StateAnchored, 3, 0, 0)
	assert.Equal(t, Pose{ScaleX: 1.2, ScaleY: 0.8}, anchored)

	squashed := PoseFor(config.StateGrounded, 0, config.LandingSquash, config.LandingSquashSpeed)
	assert.InDelta(t, 1.3, squashed.ScaleX, 1e-9)
	assert.InDelta(t, 0.7, squashed.ScaleY, 1e-9)

	soft := PoseFor(config.StateGrounded, 0, config.LandingSquash, config.LandingSquashSpeed/2)
	assert.InDelta(t, 0.85, soft.ScaleY, 1e-9)

	assert.Equal(t, Pose{ScaleX: 1, ScaleY: 1}, PoseFor(config.StateID(99), 0, 0, 0))
}

func TestCamera(t *testing.T) {
	c := NewCamera(640, 360, 1280, 368)

	c.Snap(vmath.V(600, 200), vmath.V(700, 200))
	assert.Equal(t, vmath.V(650, 188), c.Position, "vertical axis barely scrolls")
	assert.Equal(t, vmath.V(-330, -8), c.Offset())

	c.Snap(vmath.V(0, 0), vmath.V(10, 0))
	assert.Equal(t, vmath.V(320, 180), c.Position, "clamped to the top-left corner")

	c.Follow(vmath.V(1000, 180), vmath.V(1000, 180))
	assert.Greater(t, c.Position.X, 320.0)
	assert.Less(t, c.Position.X, 1000.0)

	small := NewCamera(640, 360, 320, 200)
	small.Snap(vmath.V(0, 0), vmath.V(0, 0))
	assert.Equal(t, vmath.V(160, 100), small.Position)
}

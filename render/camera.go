package render

import "github.com/automoto/tethered/vmath"

// Camera follows the midpoint between the two characters and never shows
// anything outside the level.
type Camera struct {
	Position  vmath.Vec2
	Smoothing float64 // fraction of the distance to the target covered per update

	viewW, viewH   float64
	levelW, levelH float64
}

func NewCamera(viewW, viewH, levelW, levelH float64) *Camera {
	return &Camera{
		Smoothing: 0.12,
		viewW:     viewW,
		viewH:     viewH,
		levelW:    levelW,
		levelH:    levelH,
	}
}

// Follow moves the camera part of the way toward the midpoint of a and b.
func (c *Camera) Follow(a, b vmath.Vec2) {
	target := c.clamp(vmath.LerpVec(a, b, 0.5))
	c.Position = c.clamp(vmath.LerpVec(c.Position, target, vmath.Clamp01(c.Smoothing)))
}

// Snap centres the camera on the midpoint immediately.
func (c *Camera) Snap(a, b vmath.Vec2) {
	c.Position = c.clamp(vmath.LerpVec(a, b, 0.5))
}

// Offset is the translation from world to screen space.
func (c *Camera) Offset() vmath.Vec2 {
	return vmath.V(c.viewW/2-c.Position.X, c.viewH/2-c.Position.Y)
}

func (c *Camera) clamp(p vmath.Vec2) vmath.Vec2 {
	return vmath.V(clampAxis(p.X, c.viewW, c.levelW), clampAxis(p.Y, c.viewH, c.levelH))
}

// Levels smaller than the view are centred.
func clampAxis(v, view, level float64) float64 {
	if level <= view {
		return level / 2
	}
	return vmath.Clamp(v, view/2, level-view/2)
}

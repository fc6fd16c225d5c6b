package render

import (
	"math"

	"github.com/automoto/tethered/config"
	"github.com/automoto/tethered/vmath"
)

// Pose is how a character rectangle is drawn this frame.
type Pose struct {
	ScaleX float64
	ScaleY float64
}

// PoseFor looks up the placeholder animation of state and applies the
// breathing pulse after stateTime seconds in it. A pending landing squash
// flattens the pose in proportion to the impact speed.
func PoseFor(state config.StateID, stateTime, landingTimer, landingImpact float64) Pose {
	def, ok := config.CharacterPoses[state]
	if !ok {
		return Pose{ScaleX: 1, ScaleY: 1}
	}

	p := Pose{ScaleX: def.ScaleX, ScaleY: def.ScaleY}
	if def.Pulse != 0 && def.Speed > 0 {
		wave := 0.5 - 0.5*math.Cos(2*math.Pi*def.Speed*stateTime)
		p.ScaleY += def.Pulse * wave
	}

	if landingTimer > 0 && config.LandingSquash > 0 {
		strength := vmath.Clamp01(landingImpact/config.LandingSquashSpeed) *
			vmath.Clamp01(landingTimer/config.LandingSquash)
		p.ScaleX *= 1 + 0.3*strength
		p.ScaleY *= 1 - 0.3*strength
	}
	return p
}

// Package leveldata provides TMX level parsing for the simulation and the demo.
// It has no dependencies on ebitengine, donburi, or resolv. It holds plain data only.
package leveldata

// Level holds all collision-relevant data parsed from a TMX level file.
type Level struct {
	Name        string
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// SolidRect represents a solid collision rectangle or ramp.
type SolidRect struct {
	X, Y, W, H float64
	SlopeType  string // "", "45_up_right", "45_up_left"
	Jumpable   bool
	Anchorable bool
}

// IsRamp reports whether the rectangle is a 45° slope.
func (r SolidRect) IsRamp() bool {
	return r.SlopeType != ""
}

// SpawnPoint is a character spawn location, the centre of the footprint.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the spawn point for a character index.
func (l *Level) Spawn(index int) (SpawnPoint, bool) {
	for _, s := range l.SpawnPoints {
		if s.Index == index {
			return s, true
		}
	}
	return SpawnPoint{}, false
}

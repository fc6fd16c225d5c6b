package config

// PoseDef is the placeholder animation for one character state: the body
// rectangle is drawn scaled and pulses at Speed cycles per second.
type PoseDef struct {
	ScaleX float64
	ScaleY float64
	Pulse  float64 // extra vertical stretch at the peak of the cycle
	Speed  float64
}

// CharacterPoses maps each reported state to its pose.
var CharacterPoses = map[StateID]PoseDef{
	StateAirborne: {ScaleX: 0.9, ScaleY: 1.1, Pulse: 0, Speed: 0},
	StateGrounded: {ScaleX: 1, ScaleY: 1, Pulse: 0.04, Speed: 2},
	StateAnchored: {ScaleX: 1.2, ScaleY: 0.8, Pulse: 0, Speed: 0},
	StateSwinging: {ScaleX: 0.85, ScaleY: 1.15, Pulse: 0.08, Speed: 4},
}

// LandingSquash is how long a hard landing flattens the character.
const LandingSquash = 0.12

// LandingSquashSpeed is the impact speed that produces the full squash.
const LandingSquashSpeed = 600.0

package config

// StateID is the reported kinematic state of a character.
type StateID int

// Character states in precedence order: an anchored character that is also
// grounded reports StateAnchored.
const (
	StateAirborne StateID = iota
	StateGrounded
	StateAnchored
	StateSwinging
)

func (s StateID) String() string {
	switch s {
	case StateAirborne:
		return "Airborne"
	case StateGrounded:
		return "Grounded"
	case StateAnchored:
		return "Anchored"
	case StateSwinging:
		return "Swinging"
	default:
		return "Unknown"
	}
}

package components

import (
	"github.com/automoto/tethered/character"
	"github.com/yohamta/donburi"
)

// CharacterData is one of the two tethered characters. Index is 0 or 1 and
// fixes the update order.
type CharacterData struct {
	*character.Character
	Index int
}

var Character = donburi.NewComponentType[CharacterData]()

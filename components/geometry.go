package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// GeometryData is one static level rectangle or ramp registered in the space.
type GeometryData struct {
	*resolv.Object
	SlopeType  string
	Jumpable   bool
	Anchorable bool
}

var Geometry = donburi.NewComponentType[GeometryData]()

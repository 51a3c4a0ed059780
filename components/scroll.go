package components

import "github.com/yohamta/donburi"

// ScrollData advances a tiling node's tile offset each tick.
type ScrollData struct {
	SpeedX float64
	SpeedY float64
}

var Scroll = donburi.NewComponentType[ScrollData]()

package components

import "github.com/yohamta/donburi"

// OrbitData moves a node on a circle around a fixed center, spinning it
// around its own pivot as it goes.
type OrbitData struct {
	CenterX float64
	CenterY float64
	Radius  float64
	Angle   float64
	Speed   float64 // radians per tick
	Spin    float64 // radians per tick around the node's pivot
}

var Orbit = donburi.NewComponentType[OrbitData]()

package components

import "github.com/yohamta/donburi"

// FadeData pulses a node's alpha between Min and Max.
type FadeData struct {
	Phase float64
	Speed float64 // radians per tick
	Min   float64
	Max   float64
}

var Fade = donburi.NewComponentType[FadeData]()

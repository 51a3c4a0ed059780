package components

import "github.com/yohamta/donburi"

// MotionData is per-tick velocity in pixels, plus the phase of the scale
// pulse applied while moving.
type MotionData struct {
	SpeedX float64
	SpeedY float64
	Phase  float64
}

var Motion = donburi.NewComponentType[MotionData]()

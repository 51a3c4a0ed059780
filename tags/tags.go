package tags

import "github.com/yohamta/donburi"

var (
	Wall       = donburi.NewTag().SetName("Wall")
	Bouncer    = donburi.NewTag().SetName("Bouncer")
	Orbiter    = donburi.NewTag().SetName("Orbiter")
	Platform   = donburi.NewTag().SetName("Platform")
	Background = donburi.NewTag().SetName("Background")
)

// Resolv tags for collision
const (
	ResolvSolid   = "solid"
	ResolvBouncer = "bouncer"
)

package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/smoothtick/components"
	"github.com/automoto/smoothtick/tags"
)

// UpdateBouncers moves bouncer objects through the collision space,
// reflecting their velocity off solid walls, then syncs their scene nodes.
// The node gets a small scale pulse so scale interpolation has something to
// chew on at low tick rates.
func UpdateBouncers(e *ecs.ECS) {
	tags.Bouncer.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		mo := components.Motion.Get(entry)

		dx := mo.SpeedX
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				contact := check.ContactWithObject(solids[0])
				dx = contact.X()
				mo.SpeedX = -mo.SpeedX
			}
		}
		obj.X += dx

		dy := mo.SpeedY
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				contact := check.ContactWithObject(solids[0])
				dy = contact.Y()
				mo.SpeedY = -mo.SpeedY
			}
		}
		obj.Y += dy
		obj.Update()

		node := components.Node.Get(entry)
		node.X = obj.X + obj.W/2
		node.Y = obj.Y + obj.H/2

		mo.Phase += 0.1
		pulse := 1 + 0.25*math.Sin(mo.Phase)
		node.ScaleX = pulse
		node.ScaleY = pulse
	})
}

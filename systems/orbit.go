package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/smoothtick/components"
	"github.com/automoto/smoothtick/tags"
)

// UpdateOrbiters advances every orbiter one tick along its circle and spins
// it around its own pivot. Radius-zero orbiters only spin, which is how the
// cluster's grouping node rotates.
func UpdateOrbiters(e *ecs.ECS) {
	tags.Orbiter.Each(e.World, func(entry *donburi.Entry) {
		o := components.Orbit.Get(entry)
		node := components.Node.Get(entry)

		o.Angle += o.Speed
		if o.Radius > 0 {
			node.X = o.CenterX + o.Radius*math.Cos(o.Angle)
			node.Y = o.CenterY + o.Radius*math.Sin(o.Angle)
		}
		node.Rotation += o.Spin
	})
}

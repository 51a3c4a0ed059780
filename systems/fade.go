package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/smoothtick/components"
)

// UpdateFades pulses the alpha of every node with a fade component.
func UpdateFades(e *ecs.ECS) {
	for entry := range components.Fade.Iter(e.World) {
		f := components.Fade.Get(entry)
		node := components.Node.Get(entry)

		f.Phase += f.Speed
		t := (math.Sin(f.Phase) + 1) / 2
		node.Alpha = f.Min + (f.Max-f.Min)*t
	}
}

package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/smoothtick/components"
)

// UpdateBackground scrolls the tiling background by advancing its tile
// offset each tick.
func UpdateBackground(e *ecs.ECS) {
	for entry := range components.Scroll.Iter(e.World) {
		s := components.Scroll.Get(entry)
		node := components.Node.Get(entry)

		node.TileOffsetX += s.SpeedX
		node.TileOffsetY += s.SpeedY
	}
}

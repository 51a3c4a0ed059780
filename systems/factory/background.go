package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/smoothtick/archetypes"
	"github.com/automoto/smoothtick/assets"
	"github.com/automoto/smoothtick/components"
	"github.com/automoto/smoothtick/scene"
)

// CreateBackground spawns the scrolling checkerboard behind everything else.
// It is the one node carrying the tile property group.
func CreateBackground(ecs *ecs.ECS, parent *scene.Node, level *assets.Level, speedX, speedY float64) *donburi.Entry {
	background := archetypes.Background.Spawn(ecs)

	node := scene.NewTiled(assets.TileImage(level.TileWidth), float64(level.Width), float64(level.Height))
	parent.AddChild(node)
	components.Node.SetValue(background, components.NodeData{Node: node})

	components.Scroll.SetValue(background, components.ScrollData{
		SpeedX: speedX,
		SpeedY: speedY,
	})

	return background
}

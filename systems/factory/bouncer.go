package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/smoothtick/archetypes"
	"github.com/automoto/smoothtick/assets"
	"github.com/automoto/smoothtick/components"
	"github.com/automoto/smoothtick/scene"
	"github.com/automoto/smoothtick/tags"
)

// CreateBouncer spawns a ball that ricochets around the collision space. Its
// sprite node is pivoted at the center so the scale pulse stays symmetric.
func CreateBouncer(ecs *ecs.ECS, parent *scene.Node, x, y float64, size int, vx, vy float64) *donburi.Entry {
	bouncer := archetypes.Bouncer.Spawn(ecs)

	obj := resolv.NewObject(x-float64(size)/2, y-float64(size)/2, float64(size), float64(size), tags.ResolvBouncer)
	obj.Data = bouncer
	components.Object.SetValue(bouncer, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	node := scene.NewSprite(assets.BallImage(size))
	node.PivotX = float64(size) / 2
	node.PivotY = float64(size) / 2
	node.X = x
	node.Y = y
	parent.AddChild(node)
	components.Node.SetValue(bouncer, components.NodeData{Node: node})

	components.Motion.SetValue(bouncer, components.MotionData{SpeedX: vx, SpeedY: vy})

	return bouncer
}

package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/smoothtick/archetypes"
	"github.com/automoto/smoothtick/assets"
	"github.com/automoto/smoothtick/components"
	"github.com/automoto/smoothtick/scene"
)

// CreateCluster spawns the grouping node the orbiters live under. The group
// itself slowly rotates, carrying its children with it, which is what makes
// group-level rotation interpolation visible.
func CreateCluster(ecs *ecs.ECS, parent *scene.Node, x, y, spin float64) (*donburi.Entry, *scene.Node) {
	cluster := archetypes.Orbiter.Spawn(ecs)

	group := scene.NewGroup()
	group.X = x
	group.Y = y
	parent.AddChild(group)
	components.Node.SetValue(cluster, components.NodeData{Node: group})

	components.Orbit.SetValue(cluster, components.OrbitData{
		CenterX: x,
		CenterY: y,
		Spin:    spin,
	})

	return cluster, group
}

// CreateOrbiter spawns one ball circling the cluster center in the group's
// local coordinates.
func CreateOrbiter(ecs *ecs.ECS, group *scene.Node, size int, radius, angle, speed, spin float64) *donburi.Entry {
	orbiter := archetypes.Orbiter.Spawn(ecs)

	node := scene.NewSprite(assets.BallImage(size))
	node.PivotX = float64(size) / 2
	node.PivotY = float64(size) / 2
	group.AddChild(node)
	components.Node.SetValue(orbiter, components.NodeData{Node: node})

	components.Orbit.SetValue(orbiter, components.OrbitData{
		Radius: radius,
		Angle:  angle,
		Speed:  speed,
		Spin:   spin,
	})

	return orbiter
}

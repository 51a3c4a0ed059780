package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/smoothtick/archetypes"
	"github.com/automoto/smoothtick/assets"
	"github.com/automoto/smoothtick/components"
	"github.com/automoto/smoothtick/scene"
)

// CreateFloatingPlatform spawns a platform that floats up and down on a
// tween sequence while its alpha pulses.
func CreateFloatingPlatform(ecs *ecs.ECS, parent *scene.Node, x, y, w, h, travel float64, period float32) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs, components.Fade)

	node := scene.NewSprite(assets.BoxImage())
	node.W = w
	node.H = h
	node.PivotX = w / 2
	node.PivotY = h / 2
	node.X = x
	node.Y = y
	parent.AddChild(node)
	components.Node.SetValue(platform, components.NodeData{Node: node})

	// The platform moves using a *gween.Sequence of tweens, moving it back
	// and forth.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-travel), period, ease.InOutQuad),
		gween.New(float32(y-travel), float32(y), period, ease.InOutQuad),
	)
	components.Tween.Set(platform, tw)

	components.Fade.SetValue(platform, components.FadeData{
		Speed: 0.05,
		Min:   0.35,
		Max:   1.0,
	})

	return platform
}

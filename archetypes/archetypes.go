package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/smoothtick/components"
	cfg "github.com/automoto/smoothtick/config"
	"github.com/automoto/smoothtick/tags"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Bouncer = newArchetype(
		tags.Bouncer,
		components.Node,
		components.Object,
		components.Motion,
	)
	Orbiter = newArchetype(
		tags.Orbiter,
		components.Node,
		components.Orbit,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Node,
		components.Tween,
	)
	Background = newArchetype(
		tags.Background,
		components.Node,
		components.Scroll,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

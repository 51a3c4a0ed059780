package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/smoothtick/archetypes"
	"github.com/automoto/smoothtick/components"
	"github.com/automoto/smoothtick/scene"
)

func TestUpdatePlatformsLoopsFullSequence(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := archetypes.Platform.Spawn(e)

	node := scene.NewSprite(nil)
	node.Y = 100
	components.Node.SetValue(entry, components.NodeData{Node: node})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(100, 90, 0.1, ease.Linear),
		gween.New(90, 100, 0.1, ease.Linear),
	)
	components.Tween.Set(entry, tw)

	SetTickRate(10) // one tick consumes one full tween leg
	t.Cleanup(func() { SetTickRate(30) })

	// Leg one goes up. The per-tween completion at its end must not
	// restart the sequence; only the full up-and-down cycle does.
	UpdatePlatforms(e)
	assert.InDelta(t, 90, node.Y, 0.001)

	UpdatePlatforms(e)
	assert.InDelta(t, 100, node.Y, 0.001)

	// The finished sequence restarted, so the platform floats up again.
	UpdatePlatforms(e)
	assert.InDelta(t, 90, node.Y, 0.001)
}

package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/smoothtick/components"
	"github.com/automoto/smoothtick/tags"
)

// tickDT is the logic tick length in seconds, fed to the tween sequences.
// Updated by the host whenever the tick rate changes.
var tickDT float32 = 1.0 / 30

// SetTickRate tells the tween systems how long one tick is.
func SetTickRate(rate float64) {
	if rate > 0 {
		tickDT = float32(1.0 / rate)
	}
}

// UpdatePlatforms advances each platform's tween sequence by one tick and
// writes the result to the node's vertical position. Finished sequences
// restart, so the platform floats back and forth forever.
func UpdatePlatforms(e *ecs.ECS) {
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		node := components.Node.Get(entry)

		y, _, seqDone := tw.Update(tickDT)
		node.Y = float64(y)
		if seqDone {
			tw.Reset()
		}
	})
}

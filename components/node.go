package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/smoothtick/scene"
)

// NodeData links an entity to the scene-graph node it animates. Tick systems
// write the node's live values; the loop's interpolator handles everything
// else.
type NodeData struct {
	*scene.Node
}

var Node = donburi.NewComponentType[NodeData]()

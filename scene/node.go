package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Node is a vertex in the retained scene tree. Live property values are plain
// exported fields so tick logic can mutate them directly; the interpolator's
// shadow state lives outside the node, keyed by node identity.
//
// Which groups a node participates in is decided once, at creation, by its
// capability mask: grouping nodes never get size/scale interpolation because
// their bounds are a derived aggregate of their children, and only tiling
// nodes carry the tile group.
type Node struct {
	// position
	X, Y float64

	// rotation, radians
	Rotation float64

	// size
	W, H float64

	// scale
	ScaleX, ScaleY float64

	// alpha, multiplied down the tree at draw time
	Alpha float64

	// tile offset and tile scale, tiling nodes only
	TileOffsetX, TileOffsetY float64
	TileScaleX, TileScaleY   float64

	// Image drawn by leaf renderables; nil for grouping nodes.
	Image          *ebiten.Image
	PivotX, PivotY float64

	caps  Groups
	tiled bool

	parent   *Node
	children []*Node
}

// NewGroup creates a pure grouping node. It draws nothing itself and is only
// eligible for position, rotation and alpha interpolation.
func NewGroup() *Node {
	return &Node{
		ScaleX: 1, ScaleY: 1,
		Alpha: 1,
		caps:  Position | Rotation | Alpha,
	}
}

// NewSprite creates a leaf renderable node sized to img.
func NewSprite(img *ebiten.Image) *Node {
	n := &Node{
		ScaleX: 1, ScaleY: 1,
		Alpha: 1,
		Image: img,
		caps:  Position | Rotation | Size | Scale | Alpha,
	}
	if img != nil {
		b := img.Bounds()
		n.W = float64(b.Dx())
		n.H = float64(b.Dy())
	}
	return n
}

// NewTiled creates a leaf renderable that repeats img across a w x h region.
// In addition to the sprite groups it carries the tile group.
func NewTiled(img *ebiten.Image, w, h float64) *Node {
	n := NewSprite(img)
	n.W = w
	n.H = h
	n.TileScaleX = 1
	n.TileScaleY = 1
	n.caps = n.caps.With(Tile)
	n.tiled = true
	return n
}

// Caps returns the node's capability mask.
func (n *Node) Caps() Groups { return n.caps }

// Has reports whether the node is capable of the given group.
func (n *Node) Has(g Groups) bool { return n.caps.Has(g) }

// Tiled reports whether the node repeats its image across its bounds.
func (n *Node) Tiled() bool { return n.tiled }

// Parent returns the node's parent, nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the ordered child list. The slice is owned by the node.
func (n *Node) Children() []*Node { return n.children }

// AddChild appends c to the child list, detaching it from any previous parent.
func (n *Node) AddChild(c *Node) {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

// RemoveChild detaches c from n. Returns false if c is not a child of n.
// The interpolator sweeps shadow state for detached nodes on its own.
func (n *Node) RemoveChild(c *Node) bool {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

// Walk visits n and every descendant in pre-order, parents before children.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorCapabilities(t *testing.T) {
	group := NewGroup()
	assert.True(t, group.Has(Position))
	assert.True(t, group.Has(Rotation))
	assert.True(t, group.Has(Alpha))
	assert.False(t, group.Has(Size))
	assert.False(t, group.Has(Scale))
	assert.False(t, group.Has(Tile))
	assert.False(t, group.Tiled())

	sprite := NewSprite(nil)
	assert.True(t, sprite.Has(Position|Rotation|Size|Scale|Alpha))
	assert.False(t, sprite.Has(Tile))
	assert.Equal(t, 1.0, sprite.ScaleX)
	assert.Equal(t, 1.0, sprite.Alpha)

	tiled := NewTiled(nil, 320, 240)
	assert.True(t, tiled.Has(Tile))
	assert.True(t, tiled.Tiled())
	assert.Equal(t, 320.0, tiled.W)
	assert.Equal(t, 240.0, tiled.H)
	assert.Equal(t, 1.0, tiled.TileScaleX)
}

func TestAddChildReparents(t *testing.T) {
	a := NewGroup()
	b := NewGroup()
	c := NewSprite(nil)

	a.AddChild(c)
	assert.Same(t, a, c.Parent())
	assert.Len(t, a.Children(), 1)

	// Adding to a second parent detaches from the first.
	b.AddChild(c)
	assert.Same(t, b, c.Parent())
	assert.Empty(t, a.Children())
	assert.Len(t, b.Children(), 1)
}

func TestRemoveChild(t *testing.T) {
	root := NewGroup()
	child := NewSprite(nil)
	other := NewSprite(nil)
	root.AddChild(child)

	assert.False(t, root.RemoveChild(other))
	assert.True(t, root.RemoveChild(child))
	assert.Nil(t, child.Parent())
	assert.False(t, root.RemoveChild(child))
}

func TestWalkPreOrder(t *testing.T) {
	root := NewGroup()
	a := NewGroup()
	a1 := NewSprite(nil)
	a2 := NewSprite(nil)
	b := NewSprite(nil)
	root.AddChild(a)
	a.AddChild(a1)
	a.AddChild(a2)
	root.AddChild(b)

	var order []*Node
	root.Walk(func(n *Node) { order = append(order, n) })

	assert.Equal(t, []*Node{root, a, a1, a2, b}, order)
}

func TestGroupsSetOps(t *testing.T) {
	s := DefaultGroups
	assert.True(t, s.Has(Position))
	assert.False(t, s.Has(Alpha))

	s = s.With(Alpha)
	assert.True(t, s.Has(Alpha))
	s = s.Without(Position)
	assert.False(t, s.Has(Position))
	assert.True(t, s.Has(Rotation))

	// Has is an all-of check over the argument.
	assert.True(t, AllGroups.Has(Position|Tile))
	assert.False(t, (Position | Rotation).Has(Position|Size))
}

func TestGroupsString(t *testing.T) {
	assert.Equal(t, "none", Groups(0).String())
	assert.Equal(t, "position|rotation", DefaultGroups.String())
	assert.Equal(t, "position|rotation|size|scale|alpha|tile", AllGroups.String())
	assert.Equal(t, []string{"size", "alpha"}, (Size | Alpha).Names())
}

func TestParseGroups(t *testing.T) {
	g, err := ParseGroup("rotation")
	assert.NoError(t, err)
	assert.Equal(t, Rotation, g)

	_, err = ParseGroup("bogus")
	assert.Error(t, err)

	s, err := ParseGroups([]string{"position", "tile"})
	assert.NoError(t, err)
	assert.Equal(t, Position|Tile, s)

	_, err = ParseGroups([]string{"position", "bogus"})
	assert.Error(t, err)
}

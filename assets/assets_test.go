package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel("levels/demo.tmx")
	require.NoError(t, err)

	assert.Equal(t, 640, level.Width)
	assert.Equal(t, 384, level.Height)
	assert.Equal(t, 32, level.TileWidth)
	assert.Equal(t, 32, level.TileHeight)

	require.Len(t, level.Walls, 5)
	assert.Equal(t, WallRect{X: 0, Y: 0, W: 640, H: 16}, level.Walls[0])

	spawn, ok := level.Spawn("bouncer")
	require.True(t, ok)
	assert.Equal(t, 320.0, spawn.X)
	assert.Equal(t, 96.0, spawn.Y)

	_, ok = level.Spawn("nope")
	assert.False(t, ok)
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := LoadLevel("levels/missing.tmx")
	assert.Error(t, err)
}

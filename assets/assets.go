package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var levelFS embed.FS

// WallRect is a solid collision rectangle from the level's walls layer.
type WallRect struct {
	X, Y, W, H float64
}

// SpawnPoint is a named point object from the level's spawns layer.
type SpawnPoint struct {
	Name string
	X, Y float64
}

// Level is the parsed demo level: pixel dimensions for the scene bounds, the
// tile grid size for the background, wall rects for the collision space and
// spawn points.
type Level struct {
	Name                  string
	Width, Height         int // pixels
	TileWidth, TileHeight int
	Walls                 []WallRect
	Spawns                []SpawnPoint
}

// LoadLevel parses a TMX level from the embedded level files.
func LoadLevel(tmxPath string) (*Level, error) {
	return LoadLevelFS(levelFS, tmxPath)
}

// LoadLevelFS parses a TMX level from fsys so callers can pass embed.FS or
// os.DirFS.
func LoadLevelFS(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       tmxPath,
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, WallRect{
					X: o.X,
					Y: o.Y,
					W: o.Width,
					H: o.Height,
				})
			}
		case "spawns":
			for _, o := range og.Objects {
				level.Spawns = append(level.Spawns, SpawnPoint{
					Name: o.Name,
					X:    o.X,
					Y:    o.Y,
				})
			}
		}
	}

	if len(level.Walls) == 0 {
		return nil, fmt.Errorf("level %s has no walls layer", tmxPath)
	}

	return level, nil
}

// Spawn returns the first spawn point with the given name.
func (l *Level) Spawn(name string) (SpawnPoint, bool) {
	for _, s := range l.Spawns {
		if s.Name == name {
			return s, true
		}
	}
	return SpawnPoint{}, false
}

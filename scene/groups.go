package scene

import (
	"fmt"
	"strings"
)

// Groups is a bitmask of interpolable property groups. A node's capability
// mask is fixed at creation; the enabled set on the interpolator may change
// between frames.
type Groups uint8

const (
	Position Groups = 1 << iota
	Rotation
	Size
	Scale
	Alpha
	Tile
)

// AllGroups covers every property group.
const AllGroups = Position | Rotation | Size | Scale | Alpha | Tile

// DefaultGroups is the enabled set used when none is configured.
const DefaultGroups = Position | Rotation

var groupNames = map[Groups]string{
	Position: "position",
	Rotation: "rotation",
	Size:     "size",
	Scale:    "scale",
	Alpha:    "alpha",
	Tile:     "tile",
}

// Has reports whether every group in g is present in s.
func (s Groups) Has(g Groups) bool {
	return s&g == g
}

// With returns s with g added.
func (s Groups) With(g Groups) Groups {
	return s | g
}

// Without returns s with g removed.
func (s Groups) Without(g Groups) Groups {
	return s &^ g
}

// Names returns the names of the groups in s, in declaration order.
func (s Groups) Names() []string {
	var parts []string
	for g := Position; g <= Tile; g <<= 1 {
		if s.Has(g) {
			parts = append(parts, groupNames[g])
		}
	}
	return parts
}

func (s Groups) String() string {
	if s == 0 {
		return "none"
	}
	return strings.Join(s.Names(), "|")
}

// ParseGroup resolves a single group name ("position", "rotation", ...).
func ParseGroup(name string) (Groups, error) {
	for g, n := range groupNames {
		if n == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown property group %q", name)
}

// ParseGroups resolves a list of group names into a set.
func ParseGroups(names []string) (Groups, error) {
	var s Groups
	for _, name := range names {
		g, err := ParseGroup(name)
		if err != nil {
			return 0, err
		}
		s = s.With(g)
	}
	return s, nil
}

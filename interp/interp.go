// Package interp blends a scene tree's rendered state between the last two
// logic ticks. Before each tick it snapshots every node's live values, and at
// render time it overwrites the live values with a linear mix of that snapshot
// and the post-tick values, restoring the exact values once the renderer has
// consumed the tree. The blend only ever looks at the two most recent tick
// states, so no error accumulates across frames.
package interp

import (
	"github.com/automoto/smoothtick/scene"
)

// values mirrors the interpolable fields of a scene.Node.
type values struct {
	x, y                   float64
	rotation               float64
	w, h                   float64
	scaleX, scaleY         float64
	alpha                  float64
	tileX, tileY           float64
	tileScaleX, tileScaleY float64
}

// shadow holds the per-node previous/current slots. Kept in a companion map
// rather than on the node itself so shadow-state lifetime stays the
// interpolator's concern.
type shadow struct {
	prev values
	cur  values

	// captured marks groups with a valid previous snapshot; absence is the
	// signal to leave the live value untouched (first tick after creation,
	// or a group freshly enabled).
	captured scene.Groups

	// saved marks groups whose exact value sits in cur between Blend and
	// Restore.
	saved scene.Groups

	// stamp of the last frame that visited this node, for sweeping state of
	// nodes removed from the tree.
	stamp uint64
}

// Interpolator owns the shadow slots for one scene tree. It is not safe for
// concurrent use; capture, blend and restore run strictly sequentially inside
// one driver invocation.
type Interpolator struct {
	enabled scene.Groups
	shadows map[*scene.Node]*shadow
	frame   uint64
}

// New creates an interpolator with the given enabled group set.
func New(enabled scene.Groups) *Interpolator {
	return &Interpolator{
		enabled: enabled,
		shadows: make(map[*scene.Node]*shadow),
	}
}

// Groups returns the enabled group set.
func (it *Interpolator) Groups() scene.Groups { return it.enabled }

// SetGroups replaces the enabled group set. Must be called between frames,
// never between Blend and Restore.
func (it *Interpolator) SetGroups(g scene.Groups) { it.enabled = g }

// Capture copies live values into the previous slots of every node under
// root. Runs once per logic tick, before the tick's logic.
func (it *Interpolator) Capture(root *scene.Node) {
	root.Walk(func(n *scene.Node) {
		sh := it.shadows[n]
		if sh == nil {
			sh = &shadow{}
			it.shadows[n] = sh
		}
		en := it.enabled & n.Caps()
		// Replacing rather than accumulating the mask drops stale snapshots
		// of groups that were disabled for a while.
		sh.captured = en
		if en.Has(scene.Position) {
			sh.prev.x, sh.prev.y = n.X, n.Y
		}
		if en.Has(scene.Rotation) {
			sh.prev.rotation = n.Rotation
		}
		if en.Has(scene.Size) {
			sh.prev.w, sh.prev.h = n.W, n.H
		}
		if en.Has(scene.Scale) {
			sh.prev.scaleX, sh.prev.scaleY = n.ScaleX, n.ScaleY
		}
		if en.Has(scene.Alpha) {
			sh.prev.alpha = n.Alpha
		}
		if en.Has(scene.Tile) {
			sh.prev.tileX, sh.prev.tileY = n.TileOffsetX, n.TileOffsetY
			sh.prev.tileScaleX, sh.prev.tileScaleY = n.TileScaleX, n.TileScaleY
		}
	})
}

// Blend saves every node's exact live values and, where a previous snapshot
// exists, overwrites the live values with previous + (live-previous)*alpha.
// Runs once per frame, after all ticks, before the renderer sees the tree.
func (it *Interpolator) Blend(root *scene.Node, alpha float64) {
	it.frame++
	visited := 0
	root.Walk(func(n *scene.Node) {
		sh := it.shadows[n]
		if sh == nil {
			sh = &shadow{}
			it.shadows[n] = sh
		}
		sh.stamp = it.frame
		visited++

		en := it.enabled & n.Caps()
		sh.saved = en
		if en.Has(scene.Position) {
			sh.cur.x, sh.cur.y = n.X, n.Y
			if sh.captured.Has(scene.Position) {
				n.X = lerp(sh.prev.x, sh.cur.x, alpha)
				n.Y = lerp(sh.prev.y, sh.cur.y, alpha)
			}
		}
		if en.Has(scene.Rotation) {
			sh.cur.rotation = n.Rotation
			if sh.captured.Has(scene.Rotation) {
				n.Rotation = lerp(sh.prev.rotation, sh.cur.rotation, alpha)
			}
		}
		if en.Has(scene.Size) {
			sh.cur.w, sh.cur.h = n.W, n.H
			if sh.captured.Has(scene.Size) {
				n.W = lerp(sh.prev.w, sh.cur.w, alpha)
				n.H = lerp(sh.prev.h, sh.cur.h, alpha)
			}
		}
		if en.Has(scene.Scale) {
			sh.cur.scaleX, sh.cur.scaleY = n.ScaleX, n.ScaleY
			if sh.captured.Has(scene.Scale) {
				n.ScaleX = lerp(sh.prev.scaleX, sh.cur.scaleX, alpha)
				n.ScaleY = lerp(sh.prev.scaleY, sh.cur.scaleY, alpha)
			}
		}
		if en.Has(scene.Alpha) {
			sh.cur.alpha = n.Alpha
			if sh.captured.Has(scene.Alpha) {
				n.Alpha = lerp(sh.prev.alpha, sh.cur.alpha, alpha)
			}
		}
		if en.Has(scene.Tile) {
			sh.cur.tileX, sh.cur.tileY = n.TileOffsetX, n.TileOffsetY
			sh.cur.tileScaleX, sh.cur.tileScaleY = n.TileScaleX, n.TileScaleY
			if sh.captured.Has(scene.Tile) {
				n.TileOffsetX = lerp(sh.prev.tileX, sh.cur.tileX, alpha)
				n.TileOffsetY = lerp(sh.prev.tileY, sh.cur.tileY, alpha)
				n.TileScaleX = lerp(sh.prev.tileScaleX, sh.cur.tileScaleX, alpha)
				n.TileScaleY = lerp(sh.prev.tileScaleY, sh.cur.tileScaleY, alpha)
			}
		}
	})

	if visited != len(it.shadows) {
		it.sweep()
	}
}

// Restore writes the saved exact values back onto the live fields, undoing
// the blend so the next tick's logic operates on exact state.
func (it *Interpolator) Restore(root *scene.Node) {
	root.Walk(func(n *scene.Node) {
		sh := it.shadows[n]
		if sh == nil {
			return
		}
		saved := sh.saved
		if saved.Has(scene.Position) {
			n.X, n.Y = sh.cur.x, sh.cur.y
		}
		if saved.Has(scene.Rotation) {
			n.Rotation = sh.cur.rotation
		}
		if saved.Has(scene.Size) {
			n.W, n.H = sh.cur.w, sh.cur.h
		}
		if saved.Has(scene.Scale) {
			n.ScaleX, n.ScaleY = sh.cur.scaleX, sh.cur.scaleY
		}
		if saved.Has(scene.Alpha) {
			n.Alpha = sh.cur.alpha
		}
		if saved.Has(scene.Tile) {
			n.TileOffsetX, n.TileOffsetY = sh.cur.tileX, sh.cur.tileY
			n.TileScaleX, n.TileScaleY = sh.cur.tileScaleX, sh.cur.tileScaleY
		}
		sh.saved = 0
	})
}

// Reset drops all shadow state. After a reset the next frame renders exact
// values for every node, as if each had just been created. Used when
// interpolation is re-enabled after a disabled spell, so blending never runs
// against snapshots from before the disable.
func (it *Interpolator) Reset() {
	it.shadows = make(map[*scene.Node]*shadow)
}

// Release drops shadow state for a node that left the tree. Removed nodes are
// also swept automatically on the next Blend, so calling this is optional.
func (it *Interpolator) Release(n *scene.Node) {
	delete(it.shadows, n)
}

// sweep removes shadow entries for nodes the current frame did not visit.
func (it *Interpolator) sweep() {
	for n, sh := range it.shadows {
		if sh.stamp != it.frame {
			delete(it.shadows, n)
		}
	}
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

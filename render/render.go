// Package render draws a scene tree onto an ebiten screen.
package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/smoothtick/scene"
)

var drawOp = &ebiten.DrawImageOptions{}

// Ebiten renders a scene tree with composited transforms and alpha. The host
// binds the current frame's screen with SetScreen before stepping the driver.
type Ebiten struct {
	screen *ebiten.Image
}

func NewEbiten() *Ebiten {
	return &Ebiten{}
}

// SetScreen binds the draw target for the current frame.
func (r *Ebiten) SetScreen(screen *ebiten.Image) {
	r.screen = screen
}

// RenderScene draws root and its descendants in pre-order, parents first.
func (r *Ebiten) RenderScene(root *scene.Node) {
	if r.screen == nil {
		return
	}
	r.draw(root, ebiten.GeoM{}, 1.0)
}

func (r *Ebiten) draw(n *scene.Node, parent ebiten.GeoM, alpha float64) {
	local := ebiten.GeoM{}
	local.Translate(-n.PivotX, -n.PivotY)
	local.Scale(n.ScaleX, n.ScaleY)
	local.Rotate(n.Rotation)
	local.Translate(n.X, n.Y)
	local.Concat(parent)

	alpha *= n.Alpha

	if n.Image != nil && alpha > 0 {
		if n.Tiled() {
			r.drawTiled(n, local, alpha)
		} else {
			r.drawSprite(n, local, alpha)
		}
	}

	for _, c := range n.Children() {
		r.draw(c, local, alpha)
	}
}

func (r *Ebiten) drawSprite(n *scene.Node, g ebiten.GeoM, alpha float64) {
	b := n.Image.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}

	drawOp.GeoM.Reset()
	// Size is independent of scale: the image is stretched to W x H first.
	drawOp.GeoM.Scale(n.W/iw, n.H/ih)
	drawOp.GeoM.Concat(g)
	drawOp.ColorScale.Reset()
	drawOp.ColorScale.ScaleAlpha(float32(alpha))
	r.screen.DrawImage(n.Image, drawOp)
}

func (r *Ebiten) drawTiled(n *scene.Node, g ebiten.GeoM, alpha float64) {
	b := n.Image.Bounds()
	tw := float64(b.Dx()) * n.TileScaleX
	th := float64(b.Dy()) * n.TileScaleY
	if tw <= 0 || th <= 0 {
		return
	}

	// Wrap the offset so the first tile starts at or left of the region
	// origin; the grid then covers the full W x H region.
	startX := math.Mod(n.TileOffsetX, tw)
	if startX > 0 {
		startX -= tw
	}
	startY := math.Mod(n.TileOffsetY, th)
	if startY > 0 {
		startY -= th
	}

	for y := startY; y < n.H; y += th {
		for x := startX; x < n.W; x += tw {
			drawOp.GeoM.Reset()
			drawOp.GeoM.Scale(n.TileScaleX, n.TileScaleY)
			drawOp.GeoM.Translate(x, y)
			drawOp.GeoM.Concat(g)
			drawOp.ColorScale.Reset()
			drawOp.ColorScale.ScaleAlpha(float32(alpha))
			r.screen.DrawImage(n.Image, drawOp)
		}
	}
}

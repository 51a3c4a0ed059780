package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Demo sprites are generated at runtime so the repo ships no binary image
// assets. Built lazily because ebiten images should not be created from
// package init.

var (
	tileImages = map[int]*ebiten.Image{}
	ballImages = map[int]*ebiten.Image{}
	boxImage   *ebiten.Image
)

// TileImage returns the checkerboard background tile.
func TileImage(size int) *ebiten.Image {
	if img, ok := tileImages[size]; ok {
		return img
	}
	img := ebiten.NewImage(size, size)
	img.Fill(color.RGBA{28, 32, 44, 255})
	half := float32(size) / 2
	vector.DrawFilledRect(img, 0, 0, half, half, color.RGBA{38, 44, 60, 255}, false)
	vector.DrawFilledRect(img, half, half, half, half, color.RGBA{38, 44, 60, 255}, false)
	tileImages[size] = img
	return img
}

// BallImage returns the round sprite used by bouncers and orbiters.
func BallImage(size int) *ebiten.Image {
	if img, ok := ballImages[size]; ok {
		return img
	}
	img := ebiten.NewImage(size, size)
	r := float32(size) / 2
	vector.DrawFilledCircle(img, r, r, r, color.RGBA{100, 180, 255, 255}, true)
	// Off-center highlight so rotation is visible.
	vector.DrawFilledCircle(img, r+r/2, r, r/4, color.RGBA{255, 255, 255, 255}, true)
	ballImages[size] = img
	return img
}

// BoxImage returns a flat rectangle sprite, stretched by the node's size.
func BoxImage() *ebiten.Image {
	if boxImage == nil {
		boxImage = ebiten.NewImage(8, 8)
		boxImage.Fill(color.RGBA{255, 140, 0, 255})
	}
	return boxImage
}

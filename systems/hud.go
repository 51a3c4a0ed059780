package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/automoto/smoothtick/config"
	"github.com/automoto/smoothtick/fonts"
	"github.com/automoto/smoothtick/loop"
)

// DrawHUD overlays the loop's current state: tick rate, blend factor,
// interpolation toggle and the key bindings. Drawn after the driver stepped,
// directly on the exact (restored) scene.
func DrawHUD(screen *ebiten.Image, d *loop.Driver) {
	face := fonts.HUD.Get()
	small := fonts.HUDSmall.Get()

	margin := cfg.HUD.Margin
	line := cfg.HUD.LineHeight
	y := margin + line

	rate := "uncapped"
	if d.TickRate() != loop.Uncapped {
		rate = fmt.Sprintf("%.0f/s", d.TickRate())
	}
	capStr := "off"
	if d.RenderCap() > 0 {
		capStr = d.RenderCap().String()
	}
	interpStr := "on"
	if !d.Interpolate() {
		interpStr = "off"
	}

	// Blend factor bar
	barW := 120
	vector.DrawFilledRect(screen,
		float32(margin), float32(y-line+4),
		float32(barW), 8, cfg.DarkBlue, false)
	vector.DrawFilledRect(screen,
		float32(margin), float32(y-line+4),
		float32(float64(barW)*d.Alpha()), 8, cfg.LightBlue, false)
	text.Draw(screen, fmt.Sprintf("blend %.2f", d.Alpha()), small,
		margin+barW+8, y, cfg.HUD.TextColor)
	y += line

	text.Draw(screen, fmt.Sprintf("tick %s  interp %s  cap %s", rate, interpStr, capStr),
		face, margin, y, cfg.HUD.TextColor)
	y += line

	text.Draw(screen, fmt.Sprintf("groups %s", d.Groups()), face, margin, y, cfg.HUD.TextColor)
	y += line

	text.Draw(screen, fmt.Sprintf("fps %.0f  ticks %d", ebiten.ActualFPS(), d.Ticks()),
		small, margin, y, cfg.HUD.DimColor)
	y += line

	if d.Paused() {
		text.Draw(screen, "paused", face, margin, y, cfg.Orange)
		y += line
	}

	text.Draw(screen,
		"[1-5] rate  [0] uncapped  [i] interp  [c] cap  [g] groups  [space] pause  [s] save",
		small, margin, y, cfg.HUD.DimColor)
}

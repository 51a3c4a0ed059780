package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/automoto/smoothtick/config"
	"github.com/automoto/smoothtick/fonts"
	"github.com/automoto/smoothtick/loop"
	"github.com/automoto/smoothtick/render"
	"github.com/automoto/smoothtick/scene"
	"github.com/automoto/smoothtick/scenes"
	"github.com/automoto/smoothtick/systems"
)

// Game hosts the loop driver inside ebiten's refresh-driven callbacks: Draw
// runs once per display refresh, binds the frame's screen and steps the
// driver, which runs the due logic ticks and renders the blended tree.
type Game struct {
	driver   *loop.Driver
	renderer *render.Ebiten
	demo     *scenes.DemoScene

	rateIndex int
}

func NewGame() (*Game, error) {
	fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, 14)
	fonts.LoadFontWithSize(fonts.HUDSmall, goregular.TTF, 11)

	demo, err := scenes.NewDemoScene()
	if err != nil {
		return nil, err
	}

	renderer := render.NewEbiten()
	opts := loop.DefaultOptions(demo.Root(), renderer, demo.Tick)
	opts.TickRate = cfg.Loop.TickRate
	opts.RenderCap = cfg.Loop.RenderCap
	opts.Interpolate = cfg.Loop.Interpolate
	opts.Groups = scene.AllGroups
	driver, err := loop.New(opts)
	if err != nil {
		return nil, err
	}
	systems.SetTickRate(cfg.Loop.TickRate)

	g := &Game{
		driver:   driver,
		renderer: renderer,
		demo:     demo,
	}
	for i, r := range cfg.Loop.TickRates {
		if r == cfg.Loop.TickRate {
			g.rateIndex = i
		}
	}
	return g, nil
}

// Update only handles input; all game logic runs inside the driver's tick
// callback so it stays on the fixed timestep.
func (g *Game) Update() error {
	for i, r := range cfg.Loop.TickRates {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			g.rateIndex = i
			g.setRate(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		g.setRate(loop.Uncapped)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.driver.Paused() {
			g.driver.Resume()
		} else {
			g.driver.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.driver.SetInterpolate(!g.driver.Interpolate())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if g.driver.RenderCap() > 0 {
			g.driver.SetRenderCap(0)
		} else {
			g.driver.SetRenderCap(33 * time.Millisecond)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.cycleGroups()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		systems.SaveCurrentSettings(g.driver)
	}
	return nil
}

func (g *Game) setRate(rate float64) {
	if err := g.driver.SetTickRate(rate); err != nil {
		log.Printf("tick rate: %v", err)
		return
	}
	systems.SetTickRate(rate)
}

// cycleGroups walks default -> +scale/size -> +alpha -> all -> default.
func (g *Game) cycleGroups() {
	switch g.driver.Groups() {
	case scene.DefaultGroups:
		g.driver.SetGroups(scene.DefaultGroups | scene.Scale | scene.Size)
	case scene.DefaultGroups | scene.Scale | scene.Size:
		g.driver.SetGroups(scene.DefaultGroups | scene.Scale | scene.Size | scene.Alpha)
	case scene.AllGroups:
		g.driver.SetGroups(scene.DefaultGroups)
	default:
		g.driver.SetGroups(scene.AllGroups)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScreen(screen)
	frame := g.driver.Step(time.Now())
	if !frame.Rendered {
		// Ebiten clears the screen every refresh, so a skipped frame
		// (paused, or under the render cap) still needs the exact tree
		// drawn or the scene flashes black.
		g.renderer.RenderScene(g.demo.Root())
	}
	systems.DrawHUD(screen, g.driver)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle(cfg.C.Title)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatal(err)
	}

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(game.driver, saved)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

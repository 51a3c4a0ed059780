// Package loop decouples fixed-rate logic updates from rendering. The driver
// converts wall-clock elapsed time into zero or more fixed-size logic ticks
// through a leftover-time accumulator, then renders the scene once per
// invocation with the tree blended between the last two tick states.
package loop

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/smoothtick/interp"
	"github.com/automoto/smoothtick/scene"
)

// Uncapped selects one logic tick per invocation with no blending; the
// current state is drawn as-is.
const Uncapped float64 = -1

// spikeLimit bounds a single elapsed-time sample. A sample above it means the
// process was stalled (backgrounded window, debugger breakpoint, pause) and
// is collapsed to one tick's worth instead of triggering a catch-up burst.
const spikeLimit = time.Second

// Renderer consumes the scene tree once per unskipped invocation. During the
// call the tree holds blended values; they are restored right after.
type Renderer interface {
	RenderScene(root *scene.Node)
}

// Options configures a Driver. Root, Renderer and Update are mandatory.
type Options struct {
	Root     *scene.Node
	Renderer Renderer

	// Update advances application logic by exactly one fixed tick. It runs
	// before blending and must not read render-time values.
	Update func()

	// TickRate in ticks per second, or Uncapped.
	TickRate float64

	// RenderCap is an optional minimum interval between rendered frames;
	// zero means no cap. Skipped invocations run no ticks and leave the
	// accumulator untouched.
	RenderCap time.Duration

	// Interpolate enables the capture/blend/restore cycle.
	Interpolate bool

	// Groups is the enabled property-group set; zero means
	// scene.DefaultGroups.
	Groups scene.Groups

	// Clock defaults to SystemClock.
	Clock Clock
}

// DefaultOptions returns Options with a 60 Hz tick rate, interpolation on and
// the default group set.
func DefaultOptions(root *scene.Node, r Renderer, update func()) Options {
	return Options{
		Root:        root,
		Renderer:    r,
		Update:      update,
		TickRate:    60,
		Interpolate: true,
		Groups:      scene.DefaultGroups,
	}
}

// Frame reports what one invocation did.
type Frame struct {
	// Ticks run during the invocation. Zero when the display refreshes
	// faster than the tick rate, several when it stalled.
	Ticks int

	// Alpha is the blend factor the frame rendered with, in [0,1) for
	// capped rates, exactly 1 when uncapped.
	Alpha float64

	// Rendered is false when the invocation was skipped (paused, or under
	// the render cap).
	Rendered bool
}

// Driver is the accumulator/tick driver. Not safe for concurrent use; it is
// meant to be stepped from a single host loop.
type Driver struct {
	root     *scene.Node
	renderer Renderer
	update   func()

	interp      *interp.Interpolator
	interpolate bool

	tickRate     float64
	tickDuration time.Duration
	renderCap    time.Duration

	lastSample         time.Time
	lag                time.Duration
	nextRenderDeadline time.Time

	paused bool
	alpha  float64
	ticks  uint64
}

// New validates opts and creates a Driver. The accumulator is primed with the
// clock's current time.
func New(opts Options) (*Driver, error) {
	if opts.Root == nil {
		return nil, errors.New("loop: scene root is required")
	}
	if opts.Renderer == nil {
		return nil, errors.New("loop: renderer is required")
	}
	if opts.Update == nil {
		return nil, errors.New("loop: update callback is required")
	}
	if opts.TickRate != Uncapped && opts.TickRate <= 0 {
		return nil, fmt.Errorf("loop: tick rate must be positive, got %v", opts.TickRate)
	}
	if opts.RenderCap < 0 {
		return nil, fmt.Errorf("loop: render cap must not be negative, got %v", opts.RenderCap)
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock()
	}
	groups := opts.Groups
	if groups == 0 {
		groups = scene.DefaultGroups
	}

	d := &Driver{
		root:        opts.Root,
		renderer:    opts.Renderer,
		update:      opts.Update,
		interp:      interp.New(groups),
		interpolate: opts.Interpolate,
		renderCap:   opts.RenderCap,
		lastSample:  clock.Now(),
	}
	d.setRate(opts.TickRate)
	return d, nil
}

func (d *Driver) setRate(rate float64) {
	d.tickRate = rate
	if rate == Uncapped {
		d.tickDuration = 0
		return
	}
	d.tickDuration = time.Duration(float64(time.Second) / rate)
}

// Step runs one scheduler invocation at time now: it advances the
// accumulator, runs the due ticks, and renders once with the resulting blend
// factor. The capture, update, blend, render and restore phases execute
// strictly sequentially within the call.
func (d *Driver) Step(now time.Time) Frame {
	if d.paused {
		return Frame{}
	}

	if d.tickRate == Uncapped {
		// One tick per refresh, no interpolation window. The sample time
		// still advances so switching back to a capped rate does not see
		// the whole uncapped span as pending elapsed time.
		d.lastSample = now
		d.update()
		d.ticks++
		d.alpha = 1
		d.renderer.RenderScene(d.root)
		return Frame{Ticks: 1, Alpha: 1, Rendered: true}
	}

	if d.renderCap > 0 && now.Before(d.nextRenderDeadline) {
		// Subsample rendering without touching tick timing: the elapsed
		// time stays pending until the next unskipped invocation.
		return Frame{}
	}

	elapsed := now.Sub(d.lastSample)
	if elapsed > spikeLimit {
		elapsed = d.tickDuration
	}
	if elapsed < 0 {
		elapsed = 0
	}
	d.lastSample = now
	d.lag += elapsed

	ticks := 0
	for d.lag >= d.tickDuration {
		if d.interpolate {
			d.interp.Capture(d.root)
		}
		d.update()
		d.lag -= d.tickDuration
		ticks++
		d.ticks++
	}

	alpha := float64(d.lag) / float64(d.tickDuration)
	d.alpha = alpha
	if d.interpolate {
		d.interp.Blend(d.root, alpha)
		d.renderer.RenderScene(d.root)
		d.interp.Restore(d.root)
	} else {
		d.renderer.RenderScene(d.root)
	}

	if d.renderCap > 0 {
		d.nextRenderDeadline = now.Add(d.renderCap)
	}
	return Frame{Ticks: ticks, Alpha: alpha, Rendered: true}
}

// SetTickRate changes the tick rate (or Uncapped) and recomputes the tick
// duration. The pending accumulator is kept.
func (d *Driver) SetTickRate(rate float64) error {
	if rate != Uncapped && rate <= 0 {
		return fmt.Errorf("loop: tick rate must be positive, got %v", rate)
	}
	d.setRate(rate)
	return nil
}

// TickRate returns the configured tick rate, or Uncapped.
func (d *Driver) TickRate() float64 { return d.tickRate }

// SetRenderCap changes the minimum interval between rendered frames; zero
// removes the cap. The next invocation always renders.
func (d *Driver) SetRenderCap(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	d.renderCap = interval
	d.nextRenderDeadline = time.Time{}
}

// RenderCap returns the configured render interval cap, zero when unset.
func (d *Driver) RenderCap() time.Duration { return d.renderCap }

// SetInterpolate toggles the capture/blend/restore cycle. When off, every
// frame renders exact post-tick state. Turning it back on drops all shadow
// snapshots, since they predate the disable and blending against them would
// cause a one-frame jump.
func (d *Driver) SetInterpolate(on bool) {
	if on && !d.interpolate {
		d.interp.Reset()
	}
	d.interpolate = on
}

// Interpolate reports whether interpolation is enabled.
func (d *Driver) Interpolate() bool { return d.interpolate }

// SetGroups replaces the enabled property-group set. Takes effect on the next
// frame.
func (d *Driver) SetGroups(g scene.Groups) { d.interp.SetGroups(g) }

// Groups returns the enabled property-group set.
func (d *Driver) Groups() scene.Groups { return d.interp.Groups() }

// Pause makes Step a no-op until Resume. Timing state is not reset; the
// first post-resume invocation's elapsed sample exceeds the spike limit and
// is clamped, so no catch-up burst occurs.
func (d *Driver) Pause() { d.paused = true }

// Resume re-enables stepping.
func (d *Driver) Resume() { d.paused = false }

// Paused reports whether the driver is paused.
func (d *Driver) Paused() bool { return d.paused }

// Alpha returns the blend factor the last frame rendered with.
func (d *Driver) Alpha() float64 { return d.alpha }

// Ticks returns the total number of logic ticks run.
func (d *Driver) Ticks() uint64 { return d.ticks }

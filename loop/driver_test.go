package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/smoothtick/scene"
)

// recordingRenderer captures what the tree looked like while the renderer
// held it, i.e. the blended values.
type recordingRenderer struct {
	frames int
	watch  *scene.Node
	lastX  float64
	lastY  float64
}

func (r *recordingRenderer) RenderScene(root *scene.Node) {
	r.frames++
	if r.watch != nil {
		r.lastX = r.watch.X
		r.lastY = r.watch.Y
	}
}

func newTestDriver(t *testing.T, rate float64) (*Driver, *recordingRenderer, *ManualClock, *scene.Node) {
	t.Helper()
	root := scene.NewGroup()
	sprite := scene.NewSprite(nil)
	root.AddChild(sprite)

	r := &recordingRenderer{watch: sprite}
	clock := NewManualClock(time.Unix(100, 0))

	opts := DefaultOptions(root, r, func() {})
	opts.TickRate = rate
	opts.Clock = clock
	d, err := New(opts)
	require.NoError(t, err)
	return d, r, clock, sprite
}

func TestNewValidation(t *testing.T) {
	root := scene.NewGroup()
	r := &recordingRenderer{}
	update := func() {}

	_, err := New(Options{Renderer: r, Update: update, TickRate: 60})
	assert.ErrorContains(t, err, "scene root")

	_, err = New(Options{Root: root, Update: update, TickRate: 60})
	assert.ErrorContains(t, err, "renderer")

	_, err = New(Options{Root: root, Renderer: r, TickRate: 60})
	assert.ErrorContains(t, err, "update callback")

	_, err = New(Options{Root: root, Renderer: r, Update: update, TickRate: 0})
	assert.ErrorContains(t, err, "tick rate")

	_, err = New(Options{Root: root, Renderer: r, Update: update, TickRate: -3})
	assert.ErrorContains(t, err, "tick rate")

	_, err = New(Options{Root: root, Renderer: r, Update: update, TickRate: Uncapped})
	assert.NoError(t, err)
}

func TestSingleTickWithMidTickRender(t *testing.T) {
	d, r, clock, sprite := newTestDriver(t, 60)
	d.update = func() {
		sprite.X = 10
		sprite.Y = 10
	}

	frame := d.Step(clock.Advance(25 * time.Millisecond))

	assert.Equal(t, 1, frame.Ticks)
	assert.InDelta(t, 0.5, frame.Alpha, 0.001)
	assert.True(t, frame.Rendered)

	// Renderer saw the blended position, halfway from (0,0) to (10,10).
	assert.InDelta(t, 5, r.lastX, 0.01)
	assert.InDelta(t, 5, r.lastY, 0.01)

	// After the step the live values are exact again, bit for bit.
	assert.Equal(t, 10.0, sprite.X)
	assert.Equal(t, 10.0, sprite.Y)
}

func TestZeroTicksWhenRefreshOutpacesRate(t *testing.T) {
	d, r, clock, _ := newTestDriver(t, 30)

	// 30 ticks/s is a 33.3 ms tick; 10 ms frames need several refreshes
	// per tick.
	f1 := d.Step(clock.Advance(10 * time.Millisecond))
	f2 := d.Step(clock.Advance(10 * time.Millisecond))
	f3 := d.Step(clock.Advance(10 * time.Millisecond))
	f4 := d.Step(clock.Advance(10 * time.Millisecond))

	assert.Equal(t, 0, f1.Ticks)
	assert.Equal(t, 0, f2.Ticks)
	assert.Equal(t, 0, f3.Ticks)
	assert.Equal(t, 1, f4.Ticks)
	assert.Equal(t, 4, r.frames)
}

func TestAccumulatorConvergence(t *testing.T) {
	d, _, clock, _ := newTestDriver(t, 50)
	ticks := 0
	d.update = func() { ticks++ }

	// Jittery refresh intervals, all below the spike limit.
	intervals := []time.Duration{
		5 * time.Millisecond,
		12 * time.Millisecond,
		19 * time.Millisecond,
		33 * time.Millisecond,
		7 * time.Millisecond,
	}
	var total time.Duration
	for i := 0; i < 2000; i++ {
		dt := intervals[i%len(intervals)]
		total += dt
		frame := d.Step(clock.Advance(dt))
		assert.GreaterOrEqual(t, frame.Alpha, 0.0)
		assert.Less(t, frame.Alpha, 1.0)
	}

	expected := 50 * total.Seconds()
	assert.InDelta(t, expected, float64(ticks), 1.0)
}

func TestStallClampsToOneTick(t *testing.T) {
	d, _, clock, _ := newTestDriver(t, 60)
	ticks := 0
	d.update = func() { ticks++ }

	frame := d.Step(clock.Advance(1500 * time.Millisecond))

	// The 1.5 s gap collapses to one tick's worth, no catch-up burst.
	assert.Equal(t, 1, frame.Ticks)
	assert.Equal(t, 1, ticks)
	assert.InDelta(t, 0, frame.Alpha, 0.001)
}

func TestRenderCapSubsamples(t *testing.T) {
	d, r, clock, _ := newTestDriver(t, 60)
	d.SetRenderCap(33 * time.Millisecond)

	rendered := []bool{}
	for i := 0; i < 6; i++ {
		frame := d.Step(clock.Advance(17 * time.Millisecond))
		rendered = append(rendered, frame.Rendered)
	}

	// 17 ms spacing against a 33 ms cap renders every other invocation.
	assert.Equal(t, []bool{true, false, true, false, true, false}, rendered)
	assert.Equal(t, 3, r.frames)

	// Tick timing is untouched by the skips: elapsed time stays pending
	// and is consumed on the next unskipped invocation. 85 ms of consumed
	// time at a 16.67 ms tick is 5 ticks.
	assert.Equal(t, uint64(5), d.Ticks())
}

func TestRenderCapClearedRendersImmediately(t *testing.T) {
	d, r, clock, _ := newTestDriver(t, 60)
	d.SetRenderCap(100 * time.Millisecond)

	d.Step(clock.Advance(10 * time.Millisecond))
	assert.Equal(t, 1, r.frames)
	frame := d.Step(clock.Advance(10 * time.Millisecond))
	assert.False(t, frame.Rendered)

	d.SetRenderCap(0)
	frame = d.Step(clock.Advance(10 * time.Millisecond))
	assert.True(t, frame.Rendered)
}

func TestUncappedRunsOneTickPerInvocation(t *testing.T) {
	d, r, clock, _ := newTestDriver(t, Uncapped)
	ticks := 0
	d.update = func() { ticks++ }

	for i := 0; i < 3; i++ {
		frame := d.Step(clock.Advance(4 * time.Millisecond))
		assert.Equal(t, 1, frame.Ticks)
		assert.Equal(t, 1.0, frame.Alpha)
		assert.True(t, frame.Rendered)
	}
	assert.Equal(t, 3, ticks)
	assert.Equal(t, 3, r.frames)
}

func TestPauseSkipsEverything(t *testing.T) {
	d, r, clock, _ := newTestDriver(t, 60)
	ticks := 0
	d.update = func() { ticks++ }

	d.Pause()
	frame := d.Step(clock.Advance(100 * time.Millisecond))
	assert.Equal(t, Frame{}, frame)
	assert.Equal(t, 0, r.frames)

	// A long pause does not cause a burst on resume: the first
	// post-resume sample exceeds the spike limit and is clamped.
	clock.Advance(5 * time.Second)
	d.Resume()
	frame = d.Step(clock.Now())
	assert.Equal(t, 1, frame.Ticks)
	assert.Equal(t, 1, ticks)
}

func TestInterpolationDisabledRendersExactState(t *testing.T) {
	d, r, clock, sprite := newTestDriver(t, 60)
	d.update = func() { sprite.X += 10 }
	d.SetInterpolate(false)

	d.Step(clock.Advance(25 * time.Millisecond))

	// One tick ran, renderer saw the exact post-tick value, not a blend.
	assert.Equal(t, 10.0, r.lastX)
	assert.Equal(t, 10.0, sprite.X)
}

func TestFirstTickRendersExactValue(t *testing.T) {
	// A node added mid-run has no previous snapshot; its first frame
	// renders the exact value instead of blending toward it.
	d, r, clock, _ := newTestDriver(t, 60)
	root := d.root
	var late *scene.Node
	d.update = func() {
		if late == nil {
			late = scene.NewSprite(nil)
			late.X = 42
			root.AddChild(late)
			r.watch = late
		}
	}

	d.Step(clock.Advance(25 * time.Millisecond))
	assert.Equal(t, 42.0, r.lastX)
}

func TestSetTickRateRecomputesDuration(t *testing.T) {
	d, _, clock, _ := newTestDriver(t, 60)

	require.NoError(t, d.SetTickRate(10))
	assert.Equal(t, 10.0, d.TickRate())

	frame := d.Step(clock.Advance(150 * time.Millisecond))
	assert.Equal(t, 1, frame.Ticks)
	assert.InDelta(t, 0.5, frame.Alpha, 0.001)

	assert.Error(t, d.SetTickRate(0))
	assert.Error(t, d.SetTickRate(-1))
	assert.NoError(t, d.SetTickRate(Uncapped))
}

func TestSkippedFrameLeavesExactStateForRedraw(t *testing.T) {
	d, r, clock, sprite := newTestDriver(t, 60)
	d.update = func() { sprite.X += 10 }
	d.SetRenderCap(100 * time.Millisecond)

	d.Step(clock.Advance(25 * time.Millisecond))
	assert.Equal(t, 1, r.frames)

	frame := d.Step(clock.Advance(25 * time.Millisecond))
	assert.False(t, frame.Rendered)

	// A skipped frame runs no ticks and leaves the live tree exact, so a
	// host whose screen is cleared every refresh can redraw it directly.
	r.RenderScene(d.root)
	assert.Equal(t, 10.0, r.lastX)
}

func TestReenableInterpolationRendersExact(t *testing.T) {
	d, r, clock, sprite := newTestDriver(t, 60)
	d.update = func() { sprite.X += 10 }

	d.Step(clock.Advance(25 * time.Millisecond))

	// Tick once with interpolation off; no snapshots are taken.
	d.SetInterpolate(false)
	d.Step(clock.Advance(17 * time.Millisecond))
	assert.Equal(t, 20.0, sprite.X)

	// Re-enabling must not blend a zero-tick frame against the snapshot
	// taken before the disable.
	d.SetInterpolate(true)
	frame := d.Step(clock.Advance(5 * time.Millisecond))
	assert.Equal(t, 0, frame.Ticks)
	assert.Equal(t, 20.0, r.lastX)
}

func TestUncappedToCappedSwitchDoesNotBurst(t *testing.T) {
	d, _, clock, _ := newTestDriver(t, Uncapped)
	ticks := 0
	d.update = func() { ticks++ }

	for i := 0; i < 5; i++ {
		d.Step(clock.Advance(100 * time.Millisecond))
	}
	assert.Equal(t, 5, ticks)

	// The uncapped span was consumed as it ran; switching to a capped
	// rate must not replay it through the accumulator.
	require.NoError(t, d.SetTickRate(60))
	frame := d.Step(clock.Advance(10 * time.Millisecond))
	assert.Equal(t, 0, frame.Ticks)
	assert.Equal(t, 5, ticks)
}

func TestAlphaIntrospection(t *testing.T) {
	d, _, clock, _ := newTestDriver(t, 60)

	assert.Equal(t, 0.0, d.Alpha())
	frame := d.Step(clock.Advance(25 * time.Millisecond))
	assert.Equal(t, frame.Alpha, d.Alpha())
}

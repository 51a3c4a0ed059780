package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/smoothtick/scene"
)

func TestFrameLoopRunStop(t *testing.T) {
	root := scene.NewGroup()
	r := &recordingRenderer{}
	d, err := New(DefaultOptions(root, r, func() {}))
	require.NoError(t, err)

	fl := NewFrameLoop(d, 120)
	done := make(chan struct{})
	go func() {
		fl.Run()
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	fl.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("frame loop did not stop")
	}

	assert.Greater(t, r.frames, 0)
	assert.Greater(t, d.Ticks(), uint64(0))
}

package loop

import (
	"log"
	"time"
)

// FrameLoop drives a Driver from a plain ticker at a display-refresh-like
// cadence, for hosts without a vsync callback (headless runs, servers,
// tests). Pause and resume go through the driver; stopping the loop ends it
// for good.
type FrameLoop struct {
	driver      *Driver
	refreshRate int
	clock       Clock
	running     bool
	stopChan    chan struct{}
}

// NewFrameLoop creates a loop stepping driver refreshRate times per second.
func NewFrameLoop(driver *Driver, refreshRate int) *FrameLoop {
	return &FrameLoop{
		driver:      driver,
		refreshRate: refreshRate,
		clock:       SystemClock(),
		stopChan:    make(chan struct{}),
	}
}

// Run blocks, stepping the driver once per tick until Stop is called.
func (l *FrameLoop) Run() {
	l.running = true
	ticker := time.NewTicker(time.Second / time.Duration(l.refreshRate))
	defer ticker.Stop()

	log.Printf("Frame loop started at %d Hz", l.refreshRate)

	for {
		select {
		case <-l.stopChan:
			l.running = false
			log.Println("Frame loop stopped")
			return
		case <-ticker.C:
			l.driver.Step(l.clock.Now())
		}
	}
}

// Stop ends the loop.
func (l *FrameLoop) Stop() {
	close(l.stopChan)
}

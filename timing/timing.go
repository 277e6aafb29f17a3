// Package timing measures per-frame wall-clock deltas, accumulates the
// time-dilated shader clock, and logs the frame rate once per second.
package timing

import (
	"log"
	"time"

	"github.com/MariusDoe/fractal-ray-marching/smooth"
)

const (
	fpsLogInterval = time.Second

	timeFactorKickoff = 0.1
	timeFactorMinimum = 0.1
	timeFactorMaximum = 10
	timeFactorLinear  = 0.05
)

type Timing struct {
	timeFactor     float32
	time           float32
	lastFrame      time.Time
	lastFPSLog     time.Time
	framesSinceLog int

	now func() time.Time
}

func New() *Timing {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Timing {
	start := now()
	return &Timing{
		timeFactor: 1,
		lastFrame:  start,
		lastFPSLog: start,
		now:        now,
	}
}

// Tick returns the wall-clock delta since the previous call, advances the
// shader clock by timeFactor times that delta, and samples the frame rate.
func (t *Timing) Tick() float32 {
	now := t.now()
	delta := float32(now.Sub(t.lastFrame).Seconds())
	t.lastFrame = now
	t.time += t.timeFactor * delta
	t.updateFPS(now)
	return delta
}

// Time is the accumulated, dilation-scaled shader clock.
func (t *Timing) Time() float32 {
	return t.time
}

func (t *Timing) TimeFactor() float32 {
	return t.timeFactor
}

// UpdateTimeFactor adjusts the dilation factor from a scroll delta. The
// factor is deliberately not clamped to non-negative: scrolling past zero
// plays the animation backwards.
func (t *Timing) UpdateTimeFactor(delta float32) {
	t.timeFactor += smooth.LimitedQuadraticDelta(
		t.timeFactor, delta, timeFactorKickoff, timeFactorMinimum, timeFactorMaximum, timeFactorLinear)
}

func (t *Timing) StopTime() {
	t.timeFactor = 0
}

func (t *Timing) updateFPS(now time.Time) {
	t.framesSinceLog++
	elapsed := now.Sub(t.lastFPSLog)
	if elapsed >= fpsLogInterval {
		log.Printf("%.1f FPS", float64(t.framesSinceLog)/elapsed.Seconds())
		t.lastFPSLog = now
		t.framesSinceLog = 0
	}
}

package timing

import (
	"math"
	"testing"
	"time"
)

// fakeClock advances by a fixed step on every call.
func fakeClock(step time.Duration) func() time.Time {
	current := time.Unix(0, 0)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

func TestTickDelta(t *testing.T) {
	tm := newWithClock(fakeClock(16 * time.Millisecond))
	delta := tm.Tick()
	if math.Abs(float64(delta)-0.016) > 1e-6 {
		t.Errorf("expected 16ms delta, got %f", delta)
	}
}

func TestTimeAccumulation(t *testing.T) {
	tm := newWithClock(fakeClock(100 * time.Millisecond))
	for i := 0; i < 10; i++ {
		tm.Tick()
	}
	if math.Abs(float64(tm.Time())-1.0) > 1e-5 {
		t.Errorf("expected one accumulated second, got %f", tm.Time())
	}
}

func TestStopTimeFreezesClock(t *testing.T) {
	tm := newWithClock(fakeClock(100 * time.Millisecond))
	tm.Tick()
	frozen := tm.Time()
	tm.StopTime()
	for i := 0; i < 5; i++ {
		tm.Tick()
	}
	if tm.Time() != frozen {
		t.Errorf("shader clock advanced while stopped: %f -> %f", frozen, tm.Time())
	}
}

func TestNegativeTimeFactorRewinds(t *testing.T) {
	tm := newWithClock(fakeClock(100 * time.Millisecond))
	tm.timeFactor = -1
	tm.Tick()
	if tm.Time() >= 0 {
		t.Errorf("negative time factor should rewind the clock, got %f", tm.Time())
	}
}

func TestUpdateTimeFactorFromZero(t *testing.T) {
	tm := newWithClock(fakeClock(time.Millisecond))
	tm.StopTime()
	tm.UpdateTimeFactor(1)
	want := float32(timeFactorLinear * timeFactorKickoff)
	if math.Abs(float64(tm.TimeFactor()-want)) > 1e-6 {
		t.Errorf("kickoff from stopped time: got %g, want %g", tm.TimeFactor(), want)
	}
}

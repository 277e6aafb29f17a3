package smooth

import (
	"math"
	"testing"
)

const epsilon = 1e-6

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func TestKickoffFromRest(t *testing.T) {
	// A unit delta from a zero rate always produces linear * kickoff.
	got := LimitedQuadraticDelta(0, 1, 0.1, 0.1, 10, 0.05)
	want := float32(0.05 * 0.1)
	if !approxEqual(got, want) {
		t.Errorf("kickoff response: got %g, want %g", got, want)
	}
}

func TestProportionalIncrement(t *testing.T) {
	tests := []struct {
		current, delta, want float32
	}{
		{1, 1, 0.05 * 1},      // within clamp range
		{-2, 1, 0.05 * 2},     // magnitude, not sign
		{0.01, 1, 0.05 * 0.1}, // clamped up to min
		{50, 1, 0.05 * 10},    // clamped down to max
		{3, -2, 0.05 * -2 * 3},
	}
	for _, tt := range tests {
		got := LimitedQuadraticDelta(tt.current, tt.delta, 0.1, 0.1, 10, 0.05)
		if !approxEqual(got, tt.want) {
			t.Errorf("LimitedQuadraticDelta(%f, %f): got %g, want %g",
				tt.current, tt.delta, got, tt.want)
		}
	}
}

func TestZeroDelta(t *testing.T) {
	if got := LimitedQuadraticDelta(5, 0, 0.1, 0.1, 10, 0.05); got != 0 {
		t.Errorf("zero delta should produce zero increment, got %f", got)
	}
}

// Package smooth provides the rate-of-change smoothing shared by the
// orbit-speed and time-factor scroll controls.
package smooth

import "github.com/go-gl/mathgl/mgl32"

// LimitedQuadraticDelta computes the increment to apply to a scalar rate
// for a given input delta. A rate at rest gets a fixed kickoff response; a
// moving rate scales its increment with its own magnitude, clamped to
// [min, max] so large rates cannot run away.
func LimitedQuadraticDelta(current, delta, kickoff, min, max, linear float32) float32 {
	factor := kickoff
	if current != 0 {
		factor = mgl32.Clamp(mgl32.Abs(current), min, max)
	}
	return linear * delta * factor
}

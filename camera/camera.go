// Package camera implements the navigable viewer camera: free movement on
// the yaw plane, keyboard and cursor rotation, orbiting about the origin,
// and the pitch/yaw lock constraints.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/MariusDoe/fractal-ray-marching/input"
	"github.com/MariusDoe/fractal-ray-marching/smooth"
)

// YawLockMode derives yaw from the camera's position relative to the orbit
// center each frame, overriding manual yaw input.
type YawLockMode int

const (
	YawLockNone YawLockMode = iota
	YawLockInward
	YawLockRight
	YawLockOutward
	YawLockLeft
	numYawLockModes
)

const (
	rotationPerSecond = 0.5    // radians per second for keyboard rotation
	rotationPerPixel  = 0.0003 // radians per pixel of cursor movement
	speedScale        = 0.05

	orbitKickoff = 0.1
	orbitMinimum = 0.1
	orbitMaximum = 10
	orbitLinear  = 0.05

	maxPitch = math.Pi / 2
	fullTurn = 2 * math.Pi
)

type Camera struct {
	position          mgl32.Vec3
	pitch             float32
	yaw               float32
	movementPerSecond float32
	orbitPerSecond    float32 // signed, radians per second about the world up axis
	lockPitch         bool
	lockYawMode       YawLockMode
}

func New() *Camera {
	return &Camera{
		movementPerSecond: 1,
	}
}

func (c *Camera) positionMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(c.position.X(), c.position.Y(), c.position.Z())
}

func (c *Camera) pitchMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(c.pitch)
}

func (c *Camera) yawMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DY(c.yaw)
}

func (c *Camera) rotationMatrix() mgl32.Mat4 {
	return c.yawMatrix().Mul4(c.pitchMatrix())
}

// Matrix returns the view transform: translation times rotation. Pure
// query, no side effects.
func (c *Camera) Matrix() mgl32.Mat4 {
	return c.positionMatrix().Mul4(c.rotationMatrix())
}

// Movement basis vectors come from yaw only, so pitch tilts the view but
// never the movement plane.
func (c *Camera) forward() mgl32.Vec3 {
	return c.yawMatrix().Col(2).Vec3()
}

func (c *Camera) right() mgl32.Vec3 {
	return c.yawMatrix().Col(0).Vec3()
}

func (c *Camera) up() mgl32.Vec3 {
	return mgl32.Vec3{0, 1, 0}
}

// Update integrates one frame of continuous motion: held-key movement and
// rotation, the orbit step, then the lock constraints.
func (c *Camera) Update(keys *input.HeldKeys, dt float32) {
	c.doMovement(keys, dt)
	c.doOrbit(dt)
	c.applyLocks()
}

func (c *Camera) doMovement(keys *input.HeldKeys, dt float32) {
	movement := c.forward().Mul(keys.ForwardMagnitude()).
		Add(c.right().Mul(keys.RightMagnitude())).
		Add(c.up().Mul(keys.UpMagnitude()))
	if movement.Len() > 0 {
		c.position = c.position.Add(movement.Normalize().Mul(c.movementPerSecond * dt))
	}
	rotation := float32(rotationPerSecond) * dt
	c.addPitch(rotation * keys.PitchMagnitude())
	c.addYaw(rotation * keys.YawMagnitude())
}

func (c *Camera) doOrbit(dt float32) {
	if c.orbitPerSecond == 0 {
		return
	}
	rotation := mgl32.Rotate3DY(c.orbitPerSecond * dt)
	c.position = rotation.Mul3x1(c.position)
}

func (c *Camera) applyLocks() {
	if c.lockYawMode != YawLockNone {
		base := float32(math.Atan2(float64(-c.position.X()), float64(-c.position.Z())))
		c.updateYaw(base + c.yawLockOffset())
	}
	if c.lockPitch {
		radius := math.Hypot(float64(c.position.X()), float64(c.position.Z()))
		c.pitch = float32(math.Atan2(float64(c.position.Y()), radius))
	}
}

func (c *Camera) yawLockOffset() float32 {
	switch c.lockYawMode {
	case YawLockInward:
		return math.Pi
	case YawLockRight:
		return math.Pi / 2
	case YawLockLeft:
		return -math.Pi / 2
	default: // YawLockOutward
		return 0
	}
}

// RotateFromCursorMovement applies a relative cursor delta in pixels.
func (c *Camera) RotateFromCursorMovement(yawPixels, pitchPixels float32) {
	c.addPitch(rotationPerPixel * pitchPixels)
	c.addYaw(rotationPerPixel * yawPixels)
}

// UpdateSpeed scales the movement speed exponentially, so a fixed scroll
// step is a percentage change and the speed stays strictly positive.
func (c *Camera) UpdateSpeed(delta float32) {
	c.movementPerSecond *= float32(math.Exp(float64(delta * speedScale)))
}

func (c *Camera) UpdateOrbitSpeed(delta float32) {
	c.orbitPerSecond += smooth.LimitedQuadraticDelta(
		c.orbitPerSecond, delta, orbitKickoff, orbitMinimum, orbitMaximum, orbitLinear)
}

func (c *Camera) ResetOrbitSpeed() {
	c.orbitPerSecond = 0
}

func (c *Camera) ToggleLockPitch() {
	c.lockPitch = !c.lockPitch
}

// CycleLockYawMode steps through the five yaw-lock modes, wrapping at
// either end.
func (c *Camera) CycleLockYawMode(backward bool) {
	step := YawLockMode(1)
	if backward {
		step = numYawLockModes - 1
	}
	c.lockYawMode = (c.lockYawMode + step) % numYawLockModes
}

func (c *Camera) addPitch(delta float32) {
	c.updatePitch(c.pitch + delta)
}

func (c *Camera) addYaw(delta float32) {
	c.updateYaw(c.yaw + delta)
}

func (c *Camera) updatePitch(pitch float32) {
	c.pitch = mgl32.Clamp(pitch, -maxPitch, maxPitch)
}

// updateYaw reduces yaw modulo a full turn. The result may be negative;
// only wrap-around is guaranteed.
func (c *Camera) updateYaw(yaw float32) {
	c.yaw = float32(math.Mod(float64(yaw), fullTurn))
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

func (c *Camera) Pitch() float32 {
	return c.pitch
}

func (c *Camera) Yaw() float32 {
	return c.yaw
}

func (c *Camera) MovementSpeed() float32 {
	return c.movementPerSecond
}

func (c *Camera) OrbitSpeed() float32 {
	return c.orbitPerSecond
}

func (c *Camera) LockYawMode() YawLockMode {
	return c.lockYawMode
}

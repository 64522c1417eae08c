package gameplay

import (
	"math"

	"topdown/pkg/engine/world"
)

const (
	// DefaultCameraSpeed is the inverse of the camera's smoothing time
	DefaultCameraSpeed = 5.0
	// cameraDeadzone is the distance below which the camera does not move
	cameraDeadzone = 0.1
)

// Camera follows a target with critically damped smoothing and can shake
type Camera struct {
	Position world.Vec2
	Offset   world.Vec2
	Speed    float64

	velocity world.Vec2
	locked   bool
	lockPos  world.Vec2

	shakeTimer     float64
	shakeIntensity float64
	shake          world.Vec2
}

// NewCamera creates a camera looking at pos
func NewCamera(pos world.Vec2) *Camera {
	return &Camera{Position: pos, Speed: DefaultCameraSpeed}
}

// Lock pins the camera on a fixed point until Unlock
func (c *Camera) Lock(pos world.Vec2) {
	c.locked = true
	c.lockPos = pos
}

// Unlock returns the camera to following its target
func (c *Camera) Unlock() {
	c.locked = false
}

// Locked reports whether the camera is pinned
func (c *Camera) Locked() bool { return c.locked }

// Shake starts a shake effect
func (c *Camera) Shake(intensity, duration float64) {
	c.shakeIntensity = intensity
	c.shakeTimer = duration
}

// Update moves the camera toward target and advances the shake
func (c *Camera) Update(target world.Vec2, dt float64) {
	if c.locked {
		target = c.lockPos
	}
	target = target.Add(c.Offset)

	if c.Position.Dist(target) > cameraDeadzone && c.Speed > 0 {
		smooth := 1 / c.Speed
		c.Position.X = SmoothDamp(c.Position.X, target.X, &c.velocity.X, smooth, dt)
		c.Position.Y = SmoothDamp(c.Position.Y, target.Y, &c.velocity.Y, smooth, dt)
	}

	c.shake = world.Zero
	if c.shakeTimer > 0 {
		c.shakeTimer -= dt
		c.shake = world.V(
			math.Cos(c.shakeTimer*math.Pi*8)*0.02,
			math.Sin(c.shakeTimer*math.Pi*7)*0.02,
		).Scale(c.shakeIntensity)
	}
}

// View returns where the camera is looking, shake included
func (c *Camera) View() world.Vec2 {
	return c.Position.Add(c.shake)
}

// SmoothDamp moves current toward target like a critically damped spring
// that reaches it in roughly smoothTime seconds. velocity carries state
// between calls.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	out := target + (change+temp)*exp

	// no overshoot
	if (target-current > 0) == (out > target) {
		out = target
		*velocity = 0
	}
	return out
}

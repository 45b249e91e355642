package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const maxPitch = 89

// Camera is a free-flying perspective camera. Yaw 0 looks down -Z and
// positive yaw turns towards +X. Angles are in degrees.
//
// The view-projection matrix is rebuilt lazily after any change.
type Camera struct {
	position   mgl32.Vec3
	yaw, pitch float32

	fov, aspect, near, far float32

	dirty    bool
	viewProj mgl32.Mat4
}

// NewCamera creates a camera at the origin for a width x height viewport.
func NewCamera(width, height int, fov, near, far float32) *Camera {
	c := &Camera{fov: fov, near: near, far: far, dirty: true}
	c.SetViewport(width, height)
	return c
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
	c.dirty = true
}

// Orientation returns yaw and pitch in degrees.
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetViewport updates the aspect ratio. Zero heights are ignored (minimised window).
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
	c.dirty = true
}

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))
	cp := math.Cos(pitch)
	return mgl32.Vec3{
		float32(math.Sin(yaw) * cp),
		float32(math.Sin(pitch)),
		float32(-math.Cos(yaw) * cp),
	}
}

// Right returns the horizontal unit vector to the camera's right.
func (c *Camera) Right() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.yaw))
	return mgl32.Vec3{float32(math.Cos(yaw)), 0, float32(math.Sin(yaw))}
}

// Move translates the camera along its forward, right and world-up axes.
func (c *Camera) Move(forward, right, up float32) {
	if forward == 0 && right == 0 && up == 0 {
		return
	}
	d := c.Forward().Mul(forward).Add(c.Right().Mul(right)).Add(mgl32.Vec3{0, up, 0})
	c.position = c.position.Add(d)
	c.dirty = true
}

// Rotate adds to yaw and pitch. Pitch is clamped short of straight up/down.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	if dYaw == 0 && dPitch == 0 {
		return
	}
	c.yaw = float32(math.Mod(float64(c.yaw+dYaw), 360))
	c.pitch = mgl32.Clamp(c.pitch+dPitch, -maxPitch, maxPitch)
	c.dirty = true
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.Forward()), mgl32.Vec3{0, 1, 0})
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
}

// ViewProjection returns projection * view, recomputed only when dirty.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	if c.dirty {
		c.viewProj = c.Projection().Mul4(c.View())
		c.dirty = false
	}
	return c.viewProj
}

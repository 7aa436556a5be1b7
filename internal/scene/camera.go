package scene

import "github.com/chewxy/math32"

const (
	defaultYaw   = math32.Pi / 6
	defaultPitch = math32.Pi / 9
	maxPitch     = math32.Pi/2 - 0.01
	minZoom      = 0.1
	maxZoom      = 20
	// cellAspect compensates for terminal cells being about twice as tall as wide.
	cellAspect = 0.5
)

// Camera is an orbit camera looking at the origin.
type Camera struct {
	Yaw   float32
	Pitch float32
	Zoom  float32
}

// DefaultCamera returns the camera every view starts with.
func DefaultCamera() Camera {
	return Camera{Yaw: defaultYaw, Pitch: defaultPitch, Zoom: 1}
}

// Orbit rotates the camera; pitch is clamped short of the poles.
func (c *Camera) Orbit(dyaw, dpitch float32) {
	c.Yaw = math32.Mod(c.Yaw+dyaw, 2*math32.Pi)
	c.Pitch = math32.Max(-maxPitch, math32.Min(maxPitch, c.Pitch+dpitch))
}

// Scale multiplies the zoom factor, clamped to a sane range.
func (c *Camera) Scale(f float32) {
	c.Zoom = math32.Max(minZoom, math32.Min(maxZoom, c.Zoom*f))
}

// project rotates p into camera space and returns its normalized screen
// position in [-1, 1] (for points within unit extent) and its depth.
// Larger depth is closer to the viewer.
func (c Camera) project(x, y, z float32) (sx, sy, depth float32) {
	sinY, cosY := math32.Sincos(c.Yaw)
	x1 := x*cosY - z*sinY
	z1 := x*sinY + z*cosY

	sinP, cosP := math32.Sincos(c.Pitch)
	y2 := y*cosP - z1*sinP
	z2 := y*sinP + z1*cosP

	return x1 * c.Zoom, y2 * c.Zoom, z2
}

package renderer

import (
	"math"

	"github.com/davel/go-realtime-tracer/pkg/core"
)

// CameraConfig describes a camera placement
type CameraConfig struct {
	Position core.Vec3 // Eye position in world space
	At       core.Vec3 // Forward viewing direction (any length)
	Up       core.Vec3 // Approximate up direction, must not be parallel to At
	VFov     float64   // Vertical field of view in degrees, 0 < VFov < 180
}

// Camera generates primary rays for pixels of a viewport
type Camera struct {
	position  core.Vec3
	right     core.Vec3 // camera-to-world basis
	up        core.Vec3
	forward   core.Vec3
	fovScalar float64 // tan(vfov/2)
}

// NewCamera creates a camera with an orthonormal camera-to-world basis built
// from the configured viewing and up directions.
func NewCamera(config CameraConfig) *Camera {
	forward := config.At.Normalize()
	right := forward.Cross(config.Up).Normalize()
	up := right.Cross(forward)

	theta := config.VFov * math.Pi / 180 / 2

	return &Camera{
		position:  config.Position,
		right:     right,
		up:        up,
		forward:   forward,
		fovScalar: math.Tan(theta),
	}
}

// GetRay generates the ray for pixel (px, py) of a width x height viewport,
// sampling the pixel center. Row 0 is the top of the image.
func (c *Camera) GetRay(px, py, width, height int) core.Ray {
	// Pixel center in normalized device coordinates
	ndcX := (float64(px) + 0.5) / float64(width)
	ndcY := (float64(py) + 0.5) / float64(height)

	// Screen space in [-1, 1], flipping y so image rows run top to bottom
	screenX := 2*ndcX - 1
	screenY := 1 - 2*ndcY

	// Account for aspect ratio
	screenX *= float64(width) / float64(height)

	// Account for field of view
	screenX *= c.fovScalar
	screenY *= c.fovScalar

	// Image plane point sits one unit along the forward axis; transform it
	// through the camera basis and aim the ray at it.
	direction := c.right.Multiply(screenX).
		Add(c.up.Multiply(screenY)).
		Add(c.forward).
		Normalize()

	return core.NewRay(c.position, direction)
}

// Position returns the camera eye position
func (c *Camera) Position() core.Vec3 {
	return c.position
}

// Forward returns the unit forward viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}

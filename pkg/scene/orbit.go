package scene

import (
	"math"

	"github.com/davel/go-realtime-tracer/pkg/core"
	"github.com/davel/go-realtime-tracer/pkg/geometry"
	"github.com/davel/go-realtime-tracer/pkg/renderer"
)

// NewOrbitScene creates a ring of spheres revolving around a shared center,
// watched by a slightly raised camera looking down at the ring
func NewOrbitScene() *Scene {
	const (
		count      = 5
		ringRadius = 2.5
	)
	center := core.NewVec3(0, 0, -7)

	spheres := make([]*geometry.Sphere, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / count
		pos := core.NewVec3(
			center.X+ringRadius*math.Cos(angle),
			center.Y,
			center.Z+ringRadius*math.Sin(angle),
		)
		spheres = append(spheres, geometry.NewSphere(pos, 0.7))
	}

	return &Scene{
		Spheres: spheres,
		Camera: renderer.CameraConfig{
			Position: core.NewVec3(0, 2, 0),
			At:       core.NewVec3(0, -0.3, -1),
			Up:       core.NewVec3(0, 1, 0),
			VFov:     70,
		},
		Animator: NewOrbit(center, 0.8),
	}
}

package scene

import (
	"github.com/davel/go-realtime-tracer/pkg/core"
	"github.com/davel/go-realtime-tracer/pkg/geometry"
	"github.com/davel/go-realtime-tracer/pkg/renderer"
)

// NewDefaultScene creates two spheres drifting toward the camera plane,
// viewed from the origin with a 90 degree field of view
func NewDefaultScene() *Scene {
	return &Scene{
		Spheres: []*geometry.Sphere{
			geometry.NewSphere(core.NewVec3(2, 0, -5), 1.0),
			geometry.NewSphere(core.NewVec3(2, 2, -4), 0.9),
		},
		Camera: renderer.CameraConfig{
			Position: core.NewVec3(0, 0, 0),
			At:       core.NewVec3(0, 0, -1),
			Up:       core.NewVec3(0, 1, 0),
			VFov:     90,
		},
		// 0.01 and 0.015 units per 60Hz tick, expressed per second
		Animator: NewDrift(
			core.NewVec3(0, 0, -0.6),
			core.NewVec3(0, 0, -0.9),
		),
	}
}

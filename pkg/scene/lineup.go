package scene

import (
	"github.com/davel/go-realtime-tracer/pkg/core"
	"github.com/davel/go-realtime-tracer/pkg/geometry"
	"github.com/davel/go-realtime-tracer/pkg/renderer"
)

// NewLineupScene creates a static row of spheres at increasing depth that
// overlap in screen space, useful for eyeballing occlusion ordering
func NewLineupScene() *Scene {
	return &Scene{
		Spheres: []*geometry.Sphere{
			geometry.NewSphere(core.NewVec3(-1.2, 0, -4), 1.0),
			geometry.NewSphere(core.NewVec3(0, 0, -6), 1.3),
			geometry.NewSphere(core.NewVec3(1.4, 0, -9), 1.8),
		},
		Camera: renderer.CameraConfig{
			Position: core.NewVec3(0, 0, 0),
			At:       core.NewVec3(0, 0, -1),
			Up:       core.NewVec3(0, 1, 0),
			VFov:     60,
		},
	}
}

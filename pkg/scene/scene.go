package scene

import (
	"fmt"
	"math"

	"github.com/davel/go-realtime-tracer/pkg/core"
	"github.com/davel/go-realtime-tracer/pkg/geometry"
	"github.com/davel/go-realtime-tracer/pkg/renderer"
)

// Scene contains the objects visible to the renderer, the camera placement
// they are viewed from, and the animator that moves them between frames
type Scene struct {
	Spheres  []*geometry.Sphere
	Camera   renderer.CameraConfig
	Animator Animator // nil for a static scene
}

// ClosestIntersection scans every sphere and returns the one with the
// smallest hit distance along the ray, or false if nothing is hit. The scan
// is linear; scenes here stay at single-digit object counts, so no
// acceleration structure sits behind this contract. On exact distance ties
// the first scanned candidate wins, which callers must not rely on.
func (s *Scene) ClosestIntersection(ray core.Ray) (*geometry.Sphere, float64, bool) {
	var closest *geometry.Sphere
	closestDist := 0.0

	for _, sphere := range s.Spheres {
		dist, ok := sphere.Intersect(ray)
		if !ok || math.IsNaN(dist) {
			continue
		}
		if closest == nil || dist < closestDist {
			closest = sphere
			closestDist = dist
		}
	}

	if closest == nil {
		return nil, 0, false
	}
	return closest, closestDist, true
}

// Advance moves the scene forward by dt seconds. Must only be called between
// renderer invocations; the renderer itself never mutates the scene.
func (s *Scene) Advance(dt float64) {
	if s.Animator != nil {
		s.Animator.Advance(s, dt)
	}
}

// CreateScene builds one of the named built-in scenes
func CreateScene(name string) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(), nil
	case "lineup":
		return NewLineupScene(), nil
	case "orbit":
		return NewOrbitScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", name)
	}
}

// SceneNames lists the built-in scene names accepted by CreateScene
func SceneNames() []string {
	return []string{"default", "lineup", "orbit"}
}

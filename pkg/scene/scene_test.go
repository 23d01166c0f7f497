package scene

import (
	"math"
	"testing"

	"github.com/davel/go-realtime-tracer/pkg/core"
	"github.com/davel/go-realtime-tracer/pkg/geometry"
)

func TestScene_ClosestIntersection_NearestWins(t *testing.T) {
	// Two spheres overlapping in screen space at different depths; the
	// nearer one must win regardless of insertion order.
	near := geometry.NewSphere(core.NewVec3(0, 0, -3), 1.0)
	far := geometry.NewSphere(core.NewVec3(0.5, 0, -8), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	orders := []struct {
		name    string
		spheres []*geometry.Sphere
	}{
		{"near first", []*geometry.Sphere{near, far}},
		{"far first", []*geometry.Sphere{far, near}},
	}

	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scene{Spheres: tt.spheres}

			hit, dist, ok := s.ClosestIntersection(ray)
			if !ok {
				t.Fatal("Expected hit, but got miss")
			}
			if hit != near {
				t.Errorf("Expected nearest sphere to win, got center %v", hit.Center)
			}
			if math.Abs(dist-2.0) > 1e-9 {
				t.Errorf("Expected distance 2.0, got %f", dist)
			}
		})
	}
}

func TestScene_ClosestIntersection_Empty(t *testing.T) {
	s := &Scene{}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, _, ok := s.ClosestIntersection(ray); ok {
		t.Errorf("Expected no hit in empty scene, got sphere at %v", hit.Center)
	}
}

func TestScene_ClosestIntersection_AllMiss(t *testing.T) {
	s := &Scene{Spheres: []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(100, 100, 100), 1.0),
		geometry.NewSphere(core.NewVec3(0, 0, 5), 1.0), // behind origin
	}}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, dist, ok := s.ClosestIntersection(ray); ok {
		t.Errorf("Expected miss, got hit at t=%f", dist)
	}
}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"lineup scene", "lineup", false},
		{"orbit scene", "orbit", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := CreateScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type %q, but got none", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type %q: %v", tt.sceneType, err)
			}
			if len(s.Spheres) == 0 {
				t.Error("Expected scene to contain spheres")
			}
			if s.Camera.VFov <= 0 || s.Camera.VFov >= 180 {
				t.Errorf("Expected valid field of view, got %f", s.Camera.VFov)
			}
		})
	}
}

func TestSceneNames_MatchRegistry(t *testing.T) {
	for _, name := range SceneNames() {
		if _, err := CreateScene(name); err != nil {
			t.Errorf("Listed scene %q failed to build: %v", name, err)
		}
	}
}

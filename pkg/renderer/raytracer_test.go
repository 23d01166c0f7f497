package renderer

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/davel/go-realtime-tracer/pkg/core"
	"github.com/davel/go-realtime-tracer/pkg/geometry"
)

// sphereList is a minimal World for renderer tests
type sphereList []*geometry.Sphere

func (sl sphereList) ClosestIntersection(ray core.Ray) (*geometry.Sphere, float64, bool) {
	var closest *geometry.Sphere
	closestDist := 0.0
	for _, s := range sl {
		if dist, ok := s.Intersect(ray); ok {
			if closest == nil || dist < closestDist {
				closest, closestDist = s, dist
			}
		}
	}
	return closest, closestDist, closest != nil
}

func testCamera() *Camera {
	return NewCamera(CameraConfig{
		Position: core.NewVec3(0, 0, 0),
		At:       core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     90,
	})
}

func TestRenderFrame_BackgroundFill(t *testing.T) {
	r := NewRenderer(RenderOptions{Width: 8, Height: 8})
	img := r.NewFrame()

	stats := r.RenderFrame(sphereList{}, testCamera(), img)

	background := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := img.RGBAAt(x, y); got != background {
				t.Fatalf("Pixel (%d,%d): expected opaque black, got %v", x, y, got)
			}
		}
	}

	if stats.PrimaryRays != 64 || stats.Hits != 0 {
		t.Errorf("Expected 64 rays and 0 hits, got %d and %d", stats.PrimaryRays, stats.Hits)
	}
}

func TestRenderFrame_SphereVisible(t *testing.T) {
	world := sphereList{geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0)}
	r := NewRenderer(RenderOptions{Width: 64, Height: 64})
	img := r.NewFrame()

	stats := r.RenderFrame(world, testCamera(), img)

	// Center pixels look straight at the sphere and shade near white
	center := img.RGBAAt(32, 32)
	if center.R == 0 || center.A != 255 {
		t.Errorf("Expected shaded center pixel, got %v", center)
	}
	if center.R != center.G || center.G != center.B {
		t.Errorf("Expected grayscale shading, got %v", center)
	}

	// Corner pixels miss and stay background black
	if corner := img.RGBAAt(0, 0); corner != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected black corner pixel, got %v", corner)
	}

	if stats.Hits == 0 || stats.Hits >= stats.PrimaryRays {
		t.Errorf("Expected partial coverage, got %d hits of %d rays", stats.Hits, stats.PrimaryRays)
	}
}

func TestRenderFrame_Idempotence(t *testing.T) {
	world := sphereList{
		geometry.NewSphere(core.NewVec3(2, 0, -5), 1.0),
		geometry.NewSphere(core.NewVec3(2, 2, -4), 0.9),
	}
	r := NewRenderer(RenderOptions{Width: 32, Height: 32})

	first := r.NewFrame()
	second := r.NewFrame()
	r.RenderFrame(world, testCamera(), first)
	r.RenderFrame(world, testCamera(), second)

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("Rendering the same static scene twice produced different pixels")
	}
}

func TestRenderFrame_ZeroDimensions(t *testing.T) {
	for _, opts := range []RenderOptions{
		{Width: 0, Height: 0},
		{Width: 16, Height: 0},
		{Width: 0, Height: 16},
	} {
		r := NewRenderer(opts)
		img := r.NewFrame()

		stats := r.RenderFrame(sphereList{}, testCamera(), img)
		if stats.PrimaryRays != 0 {
			t.Errorf("Options %+v: expected no rays, got %d", opts, stats.PrimaryRays)
		}
	}
}

func TestRenderFrame_SerialParallelMatch(t *testing.T) {
	world := sphereList{
		geometry.NewSphere(core.NewVec3(-1.2, 0, -4), 1.0),
		geometry.NewSphere(core.NewVec3(0, 0, -6), 1.3),
		geometry.NewSphere(core.NewVec3(1.4, 0, -9), 1.8),
	}
	camera := testCamera()

	serial := NewRenderer(RenderOptions{Width: 48, Height: 36, NumWorkers: 1})
	parallel := NewRenderer(RenderOptions{Width: 48, Height: 36, NumWorkers: 4})

	serialImg := serial.NewFrame()
	parallelImg := parallel.NewFrame()

	serialStats := serial.RenderFrame(world, camera, serialImg)
	parallelStats := parallel.RenderFrame(world, camera, parallelImg)

	if !bytes.Equal(serialImg.Pix, parallelImg.Pix) {
		t.Error("Parallel render differs from serial render")
	}
	if serialStats.Hits != parallelStats.Hits || serialStats.PrimaryRays != parallelStats.PrimaryRays {
		t.Errorf("Stats mismatch: serial %d/%d, parallel %d/%d",
			serialStats.Hits, serialStats.PrimaryRays, parallelStats.Hits, parallelStats.PrimaryRays)
	}
}

func TestShade_FacingRatio(t *testing.T) {
	// Unit sphere hit dead-on: unnormalized normal has length 1, the facing
	// ratio is exactly 1, and the shade byte lands on 255.
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	dist, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit")
	}
	if got := shade(sphere, ray, dist); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected full white, got %v", got)
	}
}

func TestShade_SaturatesLargeNormals(t *testing.T) {
	// A radius-5 sphere produces a facing ratio of 5 at a dead-on hit; the
	// byte conversion must saturate instead of wrapping.
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -10), 5.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	dist, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit")
	}
	if got := shade(sphere, ray, dist); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected saturated white, got %v", got)
	}
}

func TestShade_GrazingHitDarkens(t *testing.T) {
	// Near the silhouette the normal is almost perpendicular to the ray, so
	// the facing ratio and shade byte drop toward zero.
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0)
	direction := core.NewVec3(0.192, 0, -1).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), direction)

	dist, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected grazing hit")
	}

	got := shade(sphere, ray, dist)
	if got.R >= 128 {
		t.Errorf("Expected dark grazing shade, got %v", got)
	}
	if got.A != 255 {
		t.Errorf("Expected opaque pixel, got alpha %d", got.A)
	}
}

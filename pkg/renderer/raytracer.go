package renderer

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/davel/go-realtime-tracer/pkg/core"
	"github.com/davel/go-realtime-tracer/pkg/geometry"
)

// RenderOptions contains the output viewport configuration
type RenderOptions struct {
	Width      int // Pixel width of the output buffer
	Height     int // Pixel height of the output buffer
	NumWorkers int // Number of parallel row workers (0 = use CPU count, 1 = serial)
}

// World finds the nearest visible object along a ray.
// Interface to avoid circular imports with the scene package.
type World interface {
	ClosestIntersection(ray core.Ray) (*geometry.Sphere, float64, bool)
}

// Renderer casts one ray per pixel and shades the nearest hit.
// It keeps no state between frames; identical inputs yield identical pixels.
type Renderer struct {
	opts RenderOptions
}

// NewRenderer creates a renderer for the given viewport options
func NewRenderer(opts RenderOptions) *Renderer {
	return &Renderer{opts: opts}
}

// Options returns the viewport options the renderer was created with
func (r *Renderer) Options() RenderOptions {
	return r.opts
}

// NewFrame allocates an RGBA buffer matching the renderer's viewport.
// Callers reuse the buffer across frames to avoid per-frame allocation.
func (r *Renderer) NewFrame() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
}

// RenderFrame overwrites every pixel of img with a rendering of the world as
// seen by the camera. img must be exactly Width x Height; a zero-area
// viewport renders nothing. The world and camera are only read, never
// mutated, so animation happens strictly between calls.
func (r *Renderer) RenderFrame(world World, camera *Camera, img *image.RGBA) RenderStats {
	start := time.Now()
	stats := RenderStats{Width: r.opts.Width, Height: r.opts.Height}

	if r.opts.Width <= 0 || r.opts.Height <= 0 {
		return stats
	}

	if r.opts.NumWorkers != 1 {
		pool := newWorkerPool(r.opts.NumWorkers, r.opts.Height)
		total := pool.run(r.opts.Height, func(y int) rowResult {
			return r.renderRow(world, camera, img, y)
		})
		stats.PrimaryRays = total.rays
		stats.Hits = total.hits
	} else {
		for y := 0; y < r.opts.Height; y++ {
			res := r.renderRow(world, camera, img, y)
			stats.PrimaryRays += res.rays
			stats.Hits += res.hits
		}
	}

	stats.Duration = time.Since(start)
	return stats
}

// renderRow renders one pixel row: ray generation, closest intersection,
// shading, pixel write. Rows are independent, which is what makes the
// parallel path safe without locking.
func (r *Renderer) renderRow(world World, camera *Camera, img *image.RGBA, y int) rowResult {
	var res rowResult
	for x := 0; x < r.opts.Width; x++ {
		ray := camera.GetRay(x, y, r.opts.Width, r.opts.Height)
		res.rays++

		if sphere, dist, ok := world.ClosestIntersection(ray); ok {
			img.SetRGBA(x, y, shade(sphere, ray, dist))
			res.hits++
		} else {
			img.SetRGBA(x, y, color.RGBA{R: 0, G: 0, B: 0, A: 255})
		}
	}
	return res
}

// shade converts a hit into a grayscale facing-ratio color: the dot product
// of the surface normal with the reversed ray direction, floored to a byte.
// The normal is deliberately left unnormalized to match the original shading
// of this renderer, so the ratio can exceed 1 for spheres with radius > 1;
// the byte conversion saturates at 255 rather than wrapping.
func shade(sphere *geometry.Sphere, ray core.Ray, dist float64) color.RGBA {
	point := ray.At(dist)
	normal := sphere.NormalAt(point)

	facingRatio := normal.Dot(ray.Direction.Negate())
	if facingRatio < 0 {
		facingRatio = 0
	}

	level := int(255 * facingRatio)
	if level > 255 {
		level = 255
	}

	gray := uint8(level)
	return color.RGBA{R: gray, G: gray, B: gray, A: 255}
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

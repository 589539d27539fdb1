package curve

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/curveforge/pkg/qmap"
)

// Bank is a banked circular arc. The inner and outer radii interpolate
// linearly from their starting to their ending values across the sweep.
// With Fill set, the underside extends down to a flat base so the bank
// sits on solid ground.
type Bank struct {
	N      int
	Ri0    float64
	Ro0    float64
	Ri1    float64
	Ro1    float64
	Theta0 float64 // degrees
	Theta1 float64 // degrees
	H      float64
	T      float64
	Fill   bool
}

// Bake produces N brushes of 8 points each.
func (c Bank) Bake(b *qmap.Builder) ([]*qmap.Brush, error) {
	if err := ValidateSegments(c.N, MaxSegments); err != nil {
		return nil, err
	}

	ri := LerpClosed(c.Ri0, c.Ri1, c.N+1)
	ro := LerpClosed(c.Ro0, c.Ro1, c.N+1)
	theta := LerpClosed(c.Theta0, c.Theta1, c.N+1)

	outerBase := c.H - c.T
	if c.Fill {
		outerBase = -c.T
	}

	sections := make([][]v3.Vec, c.N+1)
	for i := range sections {
		sin, cos := math.Sincos(Deg2Rad(theta[i]))
		sections[i] = []v3.Vec{
			{X: ro[i] * cos, Y: ro[i] * sin, Z: outerBase},
			{X: ri[i] * cos, Y: ri[i] * sin, Z: -c.T},
			{X: ro[i] * cos, Y: ro[i] * sin, Z: c.H},
			{X: ri[i] * cos, Y: ri[i] * sin, Z: 0},
		}
	}

	return bakeSections(b, sections)
}

// bakeSections concatenates each pair of adjacent cross-sections and
// builds one brush per pair.
func bakeSections(b *qmap.Builder, sections [][]v3.Vec) ([]*qmap.Brush, error) {
	brushes := make([]*qmap.Brush, 0, len(sections)-1)
	for i := 0; i+1 < len(sections); i++ {
		points := make([]v3.Vec, 0, len(sections[i])+len(sections[i+1]))
		points = append(points, sections[i]...)
		points = append(points, sections[i+1]...)
		brush, err := b.FromPoints(points)
		if err != nil {
			return nil, err
		}
		brushes = append(brushes, brush)
	}
	return brushes, nil
}

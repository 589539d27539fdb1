package curve

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/curveforge/pkg/qmap"
)

// Rayto fans rays from an arc to a single corner point, producing a
// pie-slice transition between a curved edge and a square corner.
type Rayto struct {
	N      int
	R0     float64
	R1     float64
	Theta0 float64 // degrees
	Theta1 float64 // degrees
	X      float64
	Y      float64
	H      float64
}

// Bake produces N triangular prisms of 6 points each.
func (c Rayto) Bake(b *qmap.Builder) ([]*qmap.Brush, error) {
	if err := ValidateSegments(c.N, MaxSegments); err != nil {
		return nil, err
	}

	r := LerpClosed(c.R0, c.R1, c.N+1)
	theta := LerpClosed(c.Theta0, c.Theta1, c.N+1)

	brushes := make([]*qmap.Brush, 0, c.N)
	for i := 0; i < c.N; i++ {
		x0 := r[i] * math.Cos(Deg2Rad(theta[i]))
		y0 := r[i] * math.Sin(Deg2Rad(theta[i]))
		x1 := r[i+1] * math.Cos(Deg2Rad(theta[i+1]))
		y1 := r[i+1] * math.Sin(Deg2Rad(theta[i+1]))

		brush, err := b.FromPoints([]v3.Vec{
			{X: c.X, Y: c.Y, Z: 0},
			{X: x0, Y: y0, Z: 0},
			{X: x1, Y: y1, Z: 0},
			{X: c.X, Y: c.Y, Z: c.H},
			{X: x0, Y: y0, Z: c.H},
			{X: x1, Y: y1, Z: c.H},
		})
		if err != nil {
			return nil, err
		}
		brushes = append(brushes, brush)
	}
	return brushes, nil
}

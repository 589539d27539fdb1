package curve

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/curveforge/pkg/qmap"
)

// Slope is a circular arc whose four corner heights (inner/outer x
// top/bottom) interpolate independently from start to end, with an
// optional hill offset per corner. The hill offset scales by
// (1+cos(phi))/2 with phi sweeping -pi..pi across the arc, a smooth
// bump that is zero at both ends and maximal at the midpoint.
type Slope struct {
	N      int
	Ri0    float64
	Ro0    float64
	Ri1    float64
	Ro1    float64
	Theta0 float64 // degrees
	Theta1 float64 // degrees

	HeightInnerTop0 float64
	HeightInnerBot0 float64
	HeightOuterTop0 float64
	HeightOuterBot0 float64
	HeightInnerTop1 float64
	HeightInnerBot1 float64
	HeightOuterTop1 float64
	HeightOuterBot1 float64

	HillInnerTop float64
	HillInnerBot float64
	HillOuterTop float64
	HillOuterBot float64
}

// Bake produces 2N brushes: the sloped quad between adjacent
// cross-sections is non-planar in general, so each segment splits into
// an inner and an outer six-point wedge to keep every solid convex.
func (c Slope) Bake(b *qmap.Builder) ([]*qmap.Brush, error) {
	if err := ValidateSegments(c.N, MaxSegments); err != nil {
		return nil, err
	}

	ri := LerpClosed(c.Ri0, c.Ri1, c.N+1)
	ro := LerpClosed(c.Ro0, c.Ro1, c.N+1)
	theta := LerpClosed(c.Theta0, c.Theta1, c.N+1)
	innerTop := LerpClosed(c.HeightInnerTop0, c.HeightInnerTop1, c.N+1)
	innerBot := LerpClosed(c.HeightInnerBot0, c.HeightInnerBot1, c.N+1)
	outerTop := LerpClosed(c.HeightOuterTop0, c.HeightOuterTop1, c.N+1)
	outerBot := LerpClosed(c.HeightOuterBot0, c.HeightOuterBot1, c.N+1)
	hill := LerpClosed(-math.Pi, math.Pi, c.N+1)

	sections := make([][]v3.Vec, c.N+1)
	for i := range sections {
		bump := (1.0 + math.Cos(hill[i])) / 2.0
		sin, cos := math.Sincos(Deg2Rad(theta[i]))
		sections[i] = []v3.Vec{
			{X: ri[i] * cos, Y: ri[i] * sin, Z: innerTop[i] + c.HillInnerTop*bump},
			{X: ri[i] * cos, Y: ri[i] * sin, Z: innerBot[i] + c.HillInnerBot*bump},
			{X: ro[i] * cos, Y: ro[i] * sin, Z: outerTop[i] + c.HillOuterTop*bump},
			{X: ro[i] * cos, Y: ro[i] * sin, Z: outerBot[i] + c.HillOuterBot*bump},
		}
	}

	brushes := make([]*qmap.Brush, 0, 2*c.N)
	for i := 0; i+1 < len(sections); i++ {
		s1, s2 := sections[i], sections[i+1]

		// Outer wedge: this section's four corners plus the next
		// section's outer pair.
		outer, err := b.FromPoints([]v3.Vec{s1[0], s1[1], s1[2], s1[3], s2[2], s2[3]})
		if err != nil {
			return nil, err
		}
		// Inner wedge: this section's inner pair plus the next
		// section's four corners.
		inner, err := b.FromPoints([]v3.Vec{s1[0], s1[1], s2[0], s2[1], s2[2], s2[3]})
		if err != nil {
			return nil, err
		}
		brushes = append(brushes, outer, inner)
	}
	return brushes, nil
}

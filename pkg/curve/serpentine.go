package curve

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/curveforge/pkg/qmap"
)

// MaxSerpentineSegments bounds each arc of the two-sided serpentine
// generator so the total stays within the overall segment budget.
const MaxSerpentineSegments = 2048

// OffsetMode selects where the serpentine's nominal surface sits
// relative to its thickness.
type OffsetMode int

const (
	OffsetMiddle OffsetMode = iota
	OffsetTop
	OffsetBottom
)

func (m OffsetMode) String() string {
	switch m {
	case OffsetTop:
		return "top"
	case OffsetMiddle:
		return "middle"
	case OffsetBottom:
		return "bottom"
	}
	return fmt.Sprintf("OffsetMode(%d)", int(m))
}

// HeightOrderError reports serpentine heights that are not strictly
// increasing from start to midpoint to end.
type HeightOrderError struct {
	Msg string
}

func (e HeightOrderError) Error() string { return e.Msg }

// Serpentine is an S-shaped ramp made of two tangent circular arcs,
// rising from the origin to (X, Z) through the midpoint (Xm, Zm), with
// width W and thickness T.
type Serpentine struct {
	N0     int // segments in the lower arc
	N1     int // segments in the upper arc
	X      float64
	Z      float64
	Xm     float64
	Zm     float64
	W      float64
	T      float64
	Offset OffsetMode
}

// Bake produces N0+N1 brushes of 8 points each.
func (c Serpentine) Bake(b *qmap.Builder) ([]*qmap.Brush, error) {
	if err := ValidateSegments(c.N0, MaxSerpentineSegments); err != nil {
		return nil, err
	}
	if err := ValidateSegments(c.N1, MaxSerpentineSegments); err != nil {
		return nil, err
	}
	if c.Z <= 0 {
		return nil, HeightOrderError{Msg: "ending height must be greater than the starting height"}
	}
	if c.Zm <= 0 {
		return nil, HeightOrderError{Msg: "midpoint height must be greater than the starting height"}
	}
	if c.Z <= c.Zm {
		return nil, HeightOrderError{Msg: "ending height must be greater than the midpoint height"}
	}

	// Radii of the two tangent arcs through the midpoint.
	r0 := (c.Zm*c.Zm + c.Xm*c.Xm) / (2.0 * c.Zm)
	zd := c.Z - c.Zm
	xd := c.X - c.Xm
	r1 := (zd*zd + xd*xd) / (2.0 * zd)

	theta0 := LerpClosed(-math.Pi/2.0, math.Asin(c.Xm/r0)-math.Pi/2.0, c.N0+1)
	theta1 := LerpClosed(math.Pi/2.0+math.Asin(xd/r1), math.Pi/2.0, c.N1+1)

	// Lower arc curves upward: its center sits above the start point.
	rIn0, rOut0 := c.offsetRadii(r0, false)
	sections0 := make([][]v3.Vec, c.N0+1)
	for i, t := range theta0 {
		sin, cos := math.Sincos(t)
		pa := v3.Vec{X: rIn0 * cos, Y: 0, Z: rIn0*sin + rIn0}
		pb := v3.Vec{X: rOut0 * cos, Y: 0, Z: rOut0*sin + rIn0}
		sections0[i] = []v3.Vec{pa, pb, {X: pa.X, Y: c.W, Z: pa.Z}, {X: pb.X, Y: c.W, Z: pb.Z}}
	}

	// Upper arc curves downward from the far end.
	rIn1, rOut1 := c.offsetRadii(r1, true)
	sections1 := make([][]v3.Vec, c.N1+1)
	for i, t := range theta1 {
		sin, cos := math.Sincos(t)
		pa := v3.Vec{X: rOut1*cos + c.X, Y: 0, Z: rOut1*sin - rOut1 + c.Z}
		pb := v3.Vec{X: rIn1*cos + c.X, Y: 0, Z: rIn1*sin - rOut1 + c.Z}
		sections1[i] = []v3.Vec{pa, pb, {X: pa.X, Y: c.W, Z: pa.Z}, {X: pb.X, Y: c.W, Z: pb.Z}}
	}

	lower, err := bakeSections(b, sections0)
	if err != nil {
		return nil, err
	}
	upper, err := bakeSections(b, sections1)
	if err != nil {
		return nil, err
	}
	return append(lower, upper...), nil
}

// offsetRadii returns the inner and outer surface radii of an arc of
// nominal radius r under the configured offset mode. The upper arc
// bends the other way, so its thickness grows outward instead.
func (c Serpentine) offsetRadii(r float64, upper bool) (rIn, rOut float64) {
	switch c.Offset {
	case OffsetTop:
		if upper {
			return r - c.T, r
		}
		return r, r + c.T
	case OffsetBottom:
		if upper {
			return r, r + c.T
		}
		return r - c.T, r
	default: // OffsetMiddle
		return r - c.T/2.0, r + c.T/2.0
	}
}

package extrude

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/curveforge/pkg/curve"
)

// Profile produces a single convex 2D cross-section for a progress
// value t in [0,1]. Coordinates are local and unrotated; the extrusion
// engine places them in 3D.
type Profile interface {
	Profile(t float64) []v2.Vec
}

// CompoundProfile produces a set of convex polygons per progress value.
type CompoundProfile interface {
	CompoundProfile(t float64) [][]v2.Vec
}

// Single adapts a Profile to the CompoundProfile interface as a
// compound of size 1.
type Single struct {
	P Profile
}

func (s Single) CompoundProfile(t float64) [][]v2.Vec {
	return [][]v2.Vec{s.P.Profile(t)}
}

// TooFewPointsError reports a profile point count below 1.
type TooFewPointsError struct {
	N int
}

func (e TooFewPointsError) Error() string {
	return fmt.Sprintf("n = %d; number of points must be at least 1", e.N)
}

// TooManyPointsError reports a profile point count above the maximum.
type TooManyPointsError struct {
	N int
}

func (e TooManyPointsError) Error() string {
	return fmt.Sprintf("n = %d; number of points must be no greater than %d", e.N, curve.MaxSegments)
}

func validatePoints(n int) error {
	if n < 1 {
		return TooFewPointsError{N: n}
	}
	if n > curve.MaxSegments {
		return TooManyPointsError{N: n}
	}
	return nil
}

// ==================== Circle ====================

// Circle is a circular profile approximated by n points.
type Circle struct {
	n      int
	radius float64
}

// NewCircle returns a circle profile with 1 <= n <= 4096 points.
func NewCircle(n int, radius float64) (*Circle, error) {
	if err := validatePoints(n); err != nil {
		return nil, err
	}
	return &Circle{n: n, radius: radius}, nil
}

func (c *Circle) Profile(_ float64) []v2.Vec {
	points := make([]v2.Vec, c.n)
	for i, theta := range curve.LerpOpen(0, 2.0*math.Pi, c.n) {
		points[i] = v2.Vec{X: c.radius * math.Cos(theta), Y: c.radius * math.Sin(theta)}
	}
	return points
}

// ==================== Circular sector ====================

// AngleOrderError reports sector angles that are not strictly
// increasing.
type AngleOrderError struct{}

func (AngleOrderError) Error() string {
	return "end angle must be greater than start angle"
}

// AngleSpanError reports a sector spanning more than 180 degrees, which
// would not be convex.
type AngleSpanError struct{}

func (AngleSpanError) Error() string {
	return "the difference between the start and end angle must be no greater than 180 degrees"
}

// CircleSector is a pie-slice profile: an arc of n+1 points closed
// through the circle's center.
type CircleSector struct {
	n        int
	radius   float64
	startRad float64
	endRad   float64
}

// NewCircleSector returns a sector profile. Angles are in degrees, must
// be ordered, and may span at most 180 degrees.
func NewCircleSector(n int, radius, startAngle, endAngle float64) (*CircleSector, error) {
	if err := validatePoints(n); err != nil {
		return nil, err
	}
	if startAngle >= endAngle {
		return nil, AngleOrderError{}
	}
	if endAngle-startAngle > 180.0 {
		return nil, AngleSpanError{}
	}
	return &CircleSector{
		n:        n,
		radius:   radius,
		startRad: curve.Deg2Rad(startAngle),
		endRad:   curve.Deg2Rad(endAngle),
	}, nil
}

func (c *CircleSector) Profile(_ float64) []v2.Vec {
	points := make([]v2.Vec, 0, c.n+2)
	for _, theta := range curve.LerpClosed(c.startRad, c.endRad, c.n+1) {
		points = append(points, v2.Vec{X: c.radius * math.Cos(theta), Y: c.radius * math.Sin(theta)})
	}
	return append(points, v2.Vec{})
}

// ==================== Rectangle ====================

// Anchor selects which of a profile's nine reference points sits on the
// extrusion path. For example, AnchorTopLeft places the profile so that
// its top-left corner rides the path.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTopLeft
	AnchorTopCenter
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

// Rectangle is an axis-aligned rectangular profile.
type Rectangle struct {
	width  float64
	height float64
	anchor Anchor
}

// NewRectangle returns a rectangle profile with the given anchor.
func NewRectangle(width, height float64, anchor Anchor) *Rectangle {
	return &Rectangle{width: width, height: height, anchor: anchor}
}

func (r *Rectangle) Profile(_ float64) []v2.Vec {
	var hoff float64
	switch r.anchor {
	case AnchorTopLeft, AnchorCenterLeft, AnchorBottomLeft:
		hoff = r.width / 2.0
	case AnchorTopRight, AnchorCenterRight, AnchorBottomRight:
		hoff = -r.width / 2.0
	}
	var voff float64
	switch r.anchor {
	case AnchorTopLeft, AnchorTopCenter, AnchorTopRight:
		voff = -r.height / 2.0
	case AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight:
		voff = r.height / 2.0
	}
	return []v2.Vec{
		{X: hoff + r.width/2.0, Y: voff + r.height/2.0},
		{X: hoff + r.width/2.0, Y: voff - r.height/2.0},
		{X: hoff - r.width/2.0, Y: voff + r.height/2.0},
		{X: hoff - r.width/2.0, Y: voff - r.height/2.0},
	}
}

// ==================== Parallelogram ====================

// Parallelogram is a sheared quad profile: a base edge from the origin
// to (width, height), copied to a top edge offset by (offsetX, offsetZ).
type Parallelogram struct {
	width   float64
	height  float64
	offsetX float64
	offsetZ float64
	anchor  Anchor
}

// NewParallelogram returns a parallelogram profile with the given
// anchor.
func NewParallelogram(width, height, offsetX, offsetZ float64, anchor Anchor) *Parallelogram {
	return &Parallelogram{
		width:   width,
		height:  height,
		offsetX: offsetX,
		offsetZ: offsetZ,
		anchor:  anchor,
	}
}

func (p *Parallelogram) Profile(_ float64) []v2.Vec {
	bottomLeft := v2.Vec{}
	bottomRight := v2.Vec{X: p.width, Y: p.height}
	topLeft := v2.Vec{X: p.offsetX, Y: p.offsetZ}
	topRight := v2.Vec{X: p.offsetX + p.width, Y: p.offsetZ + p.height}

	var anchorPoint v2.Vec
	switch p.anchor {
	case AnchorBottomLeft:
		anchorPoint = bottomLeft
	case AnchorBottomCenter:
		anchorPoint = bottomLeft.Add(bottomRight).DivScalar(2.0)
	case AnchorBottomRight:
		anchorPoint = bottomRight
	case AnchorCenterLeft:
		anchorPoint = bottomLeft.Add(topLeft).DivScalar(2.0)
	case AnchorCenter:
		anchorPoint = bottomLeft.Add(topRight).DivScalar(2.0)
	case AnchorCenterRight:
		anchorPoint = bottomRight.Add(topRight).DivScalar(2.0)
	case AnchorTopLeft:
		anchorPoint = topLeft
	case AnchorTopCenter:
		anchorPoint = topLeft.Add(topRight).DivScalar(2.0)
	case AnchorTopRight:
		anchorPoint = topRight
	}

	return []v2.Vec{
		bottomLeft.Sub(anchorPoint),
		bottomRight.Sub(anchorPoint),
		topLeft.Sub(anchorPoint),
		topRight.Sub(anchorPoint),
	}
}

// ==================== Annulus ====================

// Annulus is a ring-sector profile: the area between two concentric
// arcs, decomposed into n convex quads.
type Annulus struct {
	n           int
	innerRadius float64
	outerRadius float64
	startAngle  float64 // degrees
	endAngle    float64 // degrees
}

// NewAnnulus returns an annulus profile with 1 <= n <= 4096 quads.
func NewAnnulus(n int, innerRadius, outerRadius, startAngle, endAngle float64) (*Annulus, error) {
	if err := validatePoints(n); err != nil {
		return nil, err
	}
	return &Annulus{
		n:           n,
		innerRadius: innerRadius,
		outerRadius: outerRadius,
		startAngle:  startAngle,
		endAngle:    endAngle,
	}, nil
}

func (a *Annulus) CompoundProfile(_ float64) [][]v2.Vec {
	theta := curve.LerpClosed(curve.Deg2Rad(a.startAngle), curve.Deg2Rad(a.endAngle), a.n+1)
	rims := make([][2]v2.Vec, len(theta))
	for i, t := range theta {
		sin, cos := math.Sincos(t)
		rims[i] = [2]v2.Vec{
			{X: a.innerRadius * cos, Y: a.innerRadius * sin},
			{X: a.outerRadius * cos, Y: a.outerRadius * sin},
		}
	}
	polygons := make([][]v2.Vec, 0, a.n)
	for i := 0; i+1 < len(rims); i++ {
		polygons = append(polygons, []v2.Vec{rims[i][0], rims[i][1], rims[i+1][0], rims[i+1][1]})
	}
	return polygons
}

// ==================== Arbitrary ====================

// Arbitrary is a compound profile defined by explicit convex polygons.
type Arbitrary struct {
	polygons [][]v2.Vec
}

// NewArbitrary returns a compound profile over the given polygons. Each
// polygon must be convex; that is not checked here, but non-convex
// input produces hulls that do not match the polygon.
func NewArbitrary(polygons [][]v2.Vec) *Arbitrary {
	return &Arbitrary{polygons: polygons}
}

func (a *Arbitrary) CompoundProfile(_ float64) [][]v2.Vec {
	return a.polygons
}

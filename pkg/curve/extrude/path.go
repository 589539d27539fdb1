package extrude

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/curveforge/pkg/catenary"
	"github.com/chazu/curveforge/pkg/curve"
)

// Path is a parametric curve in 3D space with a local orientation at
// every parameter value.
type Path interface {
	// Point maps t in [0,1] to a point in 3D space.
	Point(t float64) v3.Vec
	// Frame returns the orientation frame at t. The tangent is the
	// normalized derivative of the path with respect to t.
	Frame(t float64) FrenetFrame
}

// FixedOrientationOnly marks a Path whose Frame returns placeholder
// vectors. Extruding such a path with OrientFollowPath fails instead of
// silently falling back to a constant plane.
type FixedOrientationOnly interface {
	FixedOrientationOnly()
}

// FrenetFrame is the (tangent, normal, binormal) basis describing a
// path's local orientation. At any regular parameter value the three
// vectors are mutually orthogonal unit vectors obeying the right-hand
// rule; degenerate tangents normalize to the zero vector.
type FrenetFrame struct {
	Tangent  v3.Vec
	Normal   v3.Vec
	Binormal v3.Vec
}

// normalizeOrZero normalizes v, mapping degenerate vectors to the zero
// vector instead of NaN.
func normalizeOrZero(v v3.Vec) v3.Vec {
	l := v.Length()
	if l == 0 || l != l {
		return v3.Vec{}
	}
	return v.DivScalar(l)
}

// ==================== Line ====================

// Line runs from the origin to (X, Y, Z).
type Line struct {
	x, y, z float64
}

// NewLine returns a straight-line path to the given point.
func NewLine(x, y, z float64) *Line {
	return &Line{x: x, y: y, z: z}
}

func (l *Line) Point(t float64) v3.Vec {
	return v3.Vec{X: l.x, Y: l.y, Z: l.z}.MulScalar(t)
}

// Frame is constant along the line; the normal comes from a fixed
// perpendicular construction in the XY plane.
func (l *Line) Frame(_ float64) FrenetFrame {
	tangent := normalizeOrZero(v3.Vec{X: l.x, Y: l.y, Z: l.z})
	normal := normalizeOrZero(v3.Vec{X: -l.y, Y: l.x, Z: 0})
	return FrenetFrame{
		Tangent:  tangent,
		Normal:   normal,
		Binormal: tangent.Cross(normal),
	}
}

// ==================== Revolve ====================

// Revolve is a circular arc of fixed radius around the vertical axis.
type Revolve struct {
	radius   float64
	startRad float64
	endRad   float64
}

// NewRevolve returns a circular path between the given angles
// (degrees).
func NewRevolve(radius, startAngle, endAngle float64) *Revolve {
	return &Revolve{
		radius:   radius,
		startRad: curve.Deg2Rad(startAngle),
		endRad:   curve.Deg2Rad(endAngle),
	}
}

func (r *Revolve) Point(t float64) v3.Vec {
	theta := curve.Lerp(r.startRad, r.endRad, t)
	return v3.Vec{X: r.radius * math.Cos(theta), Y: r.radius * math.Sin(theta)}
}

func (r *Revolve) Frame(t float64) FrenetFrame {
	theta := curve.Lerp(r.startRad, r.endRad, t)
	return FrenetFrame{
		Tangent:  v3.Vec{X: -math.Sin(theta), Y: math.Cos(theta)},
		Normal:   v3.Vec{X: -math.Cos(theta), Y: -math.Sin(theta)},
		Binormal: v3.Vec{Z: 1},
	}
}

// ==================== Sinusoid ====================

// PeriodError reports a non-positive sinusoid period.
type PeriodError struct {
	Period float64
}

func (e PeriodError) Error() string {
	return fmt.Sprintf("period of %v is invalid; must be positive", e.Period)
}

// Sinusoid runs along the x axis from start to end, oscillating in z.
// Period and phase are in units of space.
type Sinusoid struct {
	amplitude float64
	period    float64
	phase     float64
	start     float64
	end       float64
}

// NewSinusoid returns a sinusoidal path; the period must be positive.
func NewSinusoid(amplitude, period, phase, start, end float64) (*Sinusoid, error) {
	if !(period > 0) {
		return nil, PeriodError{Period: period}
	}
	return &Sinusoid{amplitude: amplitude, period: period, phase: phase, start: start, end: end}, nil
}

func (s *Sinusoid) Point(t float64) v3.Vec {
	x := curve.Lerp(s.start, s.end, t)
	omega := 2.0 * math.Pi / s.period
	return v3.Vec{X: x, Z: s.amplitude * math.Sin(omega*(x+s.phase))}
}

func (s *Sinusoid) Frame(t float64) FrenetFrame {
	x := curve.Lerp(s.start, s.end, t)
	omega := 2.0 * math.Pi / s.period
	slope := s.amplitude * math.Cos(omega*(x+s.phase)) * omega
	return FrenetFrame{
		Tangent:  normalizeOrZero(v3.Vec{X: 1, Z: slope}),
		Normal:   v3.Vec{Y: 1},
		Binormal: normalizeOrZero(v3.Vec{X: -slope, Z: 1}),
	}
}

// ==================== Bezier ====================

// BezierPointsError reports a control point list too short to define a
// curve.
type BezierPointsError struct {
	N int
}

func (e BezierPointsError) Error() string {
	return fmt.Sprintf("bezier curve requires at least two points; %d provided", e.N)
}

// Bezier is a Bezier curve of arbitrary degree in the XZ plane, defined
// by 2D control points.
type Bezier struct {
	points []v2.Vec
	// Forward-difference control points of the derivative, precomputed
	// at construction.
	derivative []v2.Vec
}

// NewBezier returns a Bezier path over at least two control points.
func NewBezier(points []v2.Vec) (*Bezier, error) {
	if len(points) < 2 {
		return nil, BezierPointsError{N: len(points)}
	}
	owned := make([]v2.Vec, len(points))
	copy(owned, points)

	scale := float64(len(owned))
	derivative := make([]v2.Vec, len(owned)-1)
	for i := range derivative {
		derivative[i] = owned[i+1].Sub(owned[i]).MulScalar(scale)
	}
	return &Bezier{points: owned, derivative: derivative}, nil
}

// deCasteljau evaluates a Bezier curve by iterative linear reduction of
// a scratch copy of the control points; no recursion, so the degree of
// the control-point list is not bounded by stack depth.
func deCasteljau(points []v2.Vec, t float64) v2.Vec {
	buf := make([]v2.Vec, len(points))
	copy(buf, points)
	for m := len(buf) - 1; m > 0; m-- {
		for i := 0; i < m; i++ {
			buf[i] = buf[i].Add(buf[i+1].Sub(buf[i]).MulScalar(t))
		}
	}
	return buf[0]
}

func (b *Bezier) Point(t float64) v3.Vec {
	p := deCasteljau(b.points, t)
	return v3.Vec{X: p.X, Z: p.Y}
}

func (b *Bezier) Frame(t float64) FrenetFrame {
	d := deCasteljau(b.derivative, t)
	tangent := normalizeOrZero(v3.Vec{X: d.X, Z: d.Y})
	normal := v3.Vec{Y: 1}
	return FrenetFrame{
		Tangent:  tangent,
		Normal:   normal,
		Binormal: tangent.Cross(normal),
	}
}

// ==================== Catenary ====================

// catenaryPathMaxIter caps the Newton iteration for the path variant,
// which faces a wider range of spans than the standalone generator.
const catenaryPathMaxIter = 10000

// Catenary is a hanging-cable path between x=0 and x=span in the XZ
// plane, solved from span, height delta, and rope length.
type Catenary struct {
	sol  catenary.Solution
	span float64
}

// NewCatenary solves the catenary through (0,0) and (span, height) with
// rope length s.
func NewCatenary(span, height, s float64) (*Catenary, error) {
	sol, err := catenary.Solve(span, height, s, 0, catenaryPathMaxIter)
	if err != nil {
		return nil, err
	}
	return &Catenary{sol: sol, span: span}, nil
}

func (c *Catenary) Point(t float64) v3.Vec {
	x := curve.Lerp(0, c.span, t)
	return v3.Vec{X: x, Z: c.sol.At(x)}
}

func (c *Catenary) Frame(t float64) FrenetFrame {
	x := curve.Lerp(0, c.span, t)
	tangent := normalizeOrZero(v3.Vec{X: 1, Z: c.sol.Slope(x)})
	normal := v3.Vec{Y: 1}
	return FrenetFrame{
		Tangent:  tangent,
		Normal:   normal,
		Binormal: tangent.Cross(normal),
	}
}

// ==================== Serpentine ====================

// SerpentineHeightError reports a non-positive serpentine rise.
type SerpentineHeightError struct{}

func (SerpentineHeightError) Error() string {
	return "ending height must be greater than the starting height"
}

// SerpentineTooTallError reports a serpentine taller than it is long,
// for which no pair of tangent arcs exists.
type SerpentineTooTallError struct{}

func (SerpentineTooTallError) Error() string {
	return "serpentine curve height cannot be greater than its length"
}

// Serpentine is an S-curve of two tangent circular arcs from the origin
// to (X, 0, Z); t < 0.5 traverses the lower arc, t >= 0.5 the upper,
// each re-parameterized to its own [0,1].
type Serpentine struct {
	x float64
	z float64
}

// NewSerpentine returns a serpentine path; requires 0 < z <= x.
func NewSerpentine(x, z float64) (*Serpentine, error) {
	if z <= 0 {
		return nil, SerpentineHeightError{}
	}
	if z > x {
		return nil, SerpentineTooTallError{}
	}
	return &Serpentine{x: x, z: z}, nil
}

// geometry returns the radii and angle ranges of the two arcs. The
// midpoint is fixed at half the run and half the rise.
func (s *Serpentine) geometry() (r0, r1, theta0Start, theta0End, theta1Start, theta1End float64) {
	xm := s.x / 2.0
	zm := s.z / 2.0
	zd := s.z - zm
	xd := s.x - xm

	r0 = (zm*zm + xm*xm) / (2.0 * zm)
	r1 = (zd*zd + xd*xd) / (2.0 * zd)

	theta0Start = -math.Pi / 2.0
	theta0End = math.Asin(xm/r0) - math.Pi/2.0
	theta1Start = math.Pi/2.0 + math.Asin(xd/r1)
	theta1End = math.Pi / 2.0
	return
}

func (s *Serpentine) Point(t float64) v3.Vec {
	r0, r1, t0s, t0e, t1s, t1e := s.geometry()
	if t < 0.5 {
		theta := curve.Lerp(t0s, t0e, t*2.0)
		return v3.Vec{X: r0 * math.Cos(theta), Z: r0*math.Sin(theta) + r0}
	}
	theta := curve.Lerp(t1s, t1e, (t-0.5)*2.0)
	return v3.Vec{X: r1*math.Cos(theta) + s.x, Z: r1*math.Sin(theta) - r0 + s.z}
}

func (s *Serpentine) Frame(t float64) FrenetFrame {
	_, _, t0s, t0e, t1s, t1e := s.geometry()
	var tangent v3.Vec
	if t < 0.5 {
		theta := curve.Lerp(t0s, t0e, t*2.0)
		tangent = v3.Vec{X: -math.Sin(theta), Z: math.Cos(theta)}
	} else {
		theta := curve.Lerp(t1s, t1e, (t-0.5)*2.0)
		tangent = v3.Vec{X: math.Sin(theta), Z: -math.Cos(theta)}
	}
	normal := v3.Vec{Y: 1}
	return FrenetFrame{
		Tangent:  tangent,
		Normal:   normal,
		Binormal: tangent.Cross(normal),
	}
}

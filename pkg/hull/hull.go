// Package hull defines the abstract convex hull engine interface.
// Implementations (quickhull) compute convex polytopes behind this
// interface. The abstraction allows swapping hull backends without
// changing the brush construction pipeline.
package hull

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Options carries tunables for a hull computation. The iteration cap is
// threaded explicitly from call sites rather than living in a package
// constant, so generators can pick their own budget.
type Options struct {
	// MaxIterations bounds the work a backend may spend refining the
	// hull. Zero means no cap. Backends whose algorithm terminates
	// unconditionally may ignore it.
	MaxIterations int
}

// Result is the output of a hull computation. Vertices is a
// deduplicated subset (or recombination) of the input points defining a
// convex polytope. FaceIndices holds index triples into Vertices, one
// triple per triangulated hull face; its length is a multiple of 3.
type Result struct {
	Vertices    []v3.Vec
	FaceIndices []int
}

// Engine computes convex hulls of 3D point sets.
type Engine interface {
	// ComputeHull requires at least 4 non-coplanar points.
	ComputeHull(points []v3.Vec, opts Options) (*Result, error)
}

// TooFewPointsError reports an input set too small to span a volume.
type TooFewPointsError struct {
	Count int
}

func (e TooFewPointsError) Error() string {
	return fmt.Sprintf("convex hull requires at least 4 points; %d provided", e.Count)
}

// DegenerateError reports an input set whose points are all coplanar
// (or collinear, or coincident), so no polytope exists.
type DegenerateError struct {
	Count int
}

func (e DegenerateError) Error() string {
	return fmt.Sprintf("convex hull input of %d points is degenerate: all points are coplanar", e.Count)
}

// IterationError reports a backend that exhausted its iteration cap
// before producing a valid hull.
type IterationError struct {
	Iterations int
}

func (e IterationError) Error() string {
	return fmt.Sprintf("convex hull did not complete within %d iterations", e.Iterations)
}

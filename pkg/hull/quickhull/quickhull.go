// Package quickhull implements the hull.Engine interface using the
// github.com/markus-wa/quickhull-go quickhull implementation.
package quickhull

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/golang/geo/r3"
	qh "github.com/markus-wa/quickhull-go/v2"

	"github.com/chazu/curveforge/pkg/hull"
)

// Compile-time interface check.
var _ hull.Engine = (*Engine)(nil)

// coplanarEps is the volume tolerance below which an input tetrahedron
// is considered flat.
const coplanarEps = 1e-12

// Engine implements hull.Engine using quickhull-go.
type Engine struct{}

// New returns a new quickhull Engine.
func New() *Engine {
	return &Engine{}
}

// unwrap converts a quickhull vertex back to the module's vector type.
func unwrap(v r3.Vector) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// wrap converts a point to the coordinate type quickhull-go consumes.
func wrap(v v3.Vec) r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// ComputeHull computes the convex hull of the given points.
//
// The MaxIterations option is accepted for interface compatibility but
// ignored: quickhull terminates after a bounded number of face
// expansions on its own, so no external cap is needed.
func (e *Engine) ComputeHull(points []v3.Vec, opts hull.Options) (*hull.Result, error) {
	if len(points) < 4 {
		return nil, hull.TooFewPointsError{Count: len(points)}
	}
	if coplanar(points) {
		return nil, hull.DegenerateError{Count: len(points)}
	}

	cloud := make([]r3.Vector, len(points))
	for i, p := range points {
		cloud[i] = wrap(p)
	}

	// ccw=true yields counter-clockwise winding viewed from outside;
	// useOriginalIndices=false deduplicates the vertex list; epsilon 0
	// selects the library default.
	computed := new(qh.QuickHull).ConvexHull(cloud, true, false, 0)

	if len(computed.Vertices) < 4 || len(computed.Indices)%3 != 0 {
		return nil, hull.DegenerateError{Count: len(points)}
	}

	vertices := make([]v3.Vec, len(computed.Vertices))
	for i, v := range computed.Vertices {
		vertices[i] = unwrap(v)
	}
	indices := make([]int, len(computed.Indices))
	copy(indices, computed.Indices)

	return &hull.Result{Vertices: vertices, FaceIndices: indices}, nil
}

// coplanar reports whether every point lies on one plane. It fixes a
// base point, finds two independent edge directions, and then checks
// the scalar triple product of every remaining point against the plane
// they span.
func coplanar(points []v3.Vec) bool {
	base := points[0]

	// First direction: any point distinct from base.
	var d1 v3.Vec
	i := 1
	for ; i < len(points); i++ {
		d1 = points[i].Sub(base)
		if d1.Length() > coplanarEps {
			break
		}
	}
	if i == len(points) {
		return true // all points coincident
	}

	// Second direction: any point off the base-d1 line.
	var n v3.Vec
	j := i + 1
	for ; j < len(points); j++ {
		d2 := points[j].Sub(base)
		n = d1.Cross(d2)
		if n.Length() > coplanarEps {
			break
		}
	}
	if j == len(points) {
		return true // all points collinear
	}

	for k := j + 1; k < len(points); k++ {
		if math.Abs(n.Dot(points[k].Sub(base))) > coplanarEps {
			return false
		}
	}
	return true
}

// Package qmap holds the brush geometry model for Quake3-style maps and
// its textual serialization. Brushes are convex solids described by the
// planes of their faces; entities group brushes with key/value
// parameters; a Document is the serializable top-level map.
package qmap

import (
	"fmt"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/curveforge/pkg/hull"
)

// DefaultMaterial is the texture applied to generated faces.
const DefaultMaterial = "mtrl/invisible"

// planeEps is the tolerance for treating two faces as coplanar: normals
// parallel within this dot-product slack and plane offsets within this
// distance.
const planeEps = 1e-9

// Side is one planar face of a brush: three ordered points defining a
// plane plus a material tag. The outward normal is (p1-p0)x(p2-p0).
type Side struct {
	Points   [3]v3.Vec
	Material string
}

// Normal returns the unit normal of the side's plane, or the zero
// vector for a degenerate triple.
func (s Side) Normal() v3.Vec {
	n := s.Points[1].Sub(s.Points[0]).Cross(s.Points[2].Sub(s.Points[0]))
	return normalizeOrZero(n)
}

// Dist returns the signed distance of the side's plane from the origin
// along its normal.
func (s Side) Dist() float64 {
	return s.Normal().Dot(s.Points[0])
}

// Equivalent reports whether two sides lie on the same plane with the
// same orientation, within tolerance.
func (s Side) Equivalent(other Side) bool {
	if s.Normal().Dot(other.Normal()) < 1.0-planeEps {
		return false
	}
	if diff := s.Dist() - other.Dist(); diff < -planeEps || diff > planeEps {
		return false
	}
	return true
}

// String renders the side in .map face syntax with 6-decimal
// fixed-point coordinates.
func (s Side) String() string {
	p := s.Points
	return fmt.Sprintf(
		"( %.6f %.6f %.6f ) ( %.6f %.6f %.6f ) ( %.6f %.6f %.6f ) %s 0 0 0 0.5 0.5 0 0 0",
		p[0].X, p[0].Y, p[0].Z,
		p[1].X, p[1].Y, p[1].Z,
		p[2].X, p[2].Y, p[2].Z,
		s.Material,
	)
}

// face is a side stored as vertex indices into a brush's vertex list.
type face struct {
	indices  [3]int
	material string
}

// Brush is a single convex solid. It owns its vertex list and a face
// list with at most one entry per maximal planar face.
type Brush struct {
	vertices []v3.Vec
	faces    []face
}

// Vertices returns the brush's deduplicated hull vertices.
func (b *Brush) Vertices() []v3.Vec {
	return b.vertices
}

// Sides materializes the brush's faces as point triples.
func (b *Brush) Sides() []Side {
	sides := make([]Side, len(b.faces))
	for i, f := range b.faces {
		sides[i] = Side{
			Points: [3]v3.Vec{
				b.vertices[f.indices[0]],
				b.vertices[f.indices[1]],
				b.vertices[f.indices[2]],
			},
			Material: f.material,
		}
	}
	return sides
}

// write renders the brush as a {...} block of face lines.
func (b *Brush) write(sb *strings.Builder) {
	sb.WriteString("{\n")
	for _, side := range b.Sides() {
		sb.WriteString(side.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n")
}

// Builder constructs brushes from point sets via a convex hull engine.
// The hull iteration cap is carried here so call sites can tune it.
type Builder struct {
	Engine        hull.Engine
	MaxIterations int
}

// NewBuilder returns a Builder with the given engine and iteration cap.
func NewBuilder(engine hull.Engine, maxIterations int) *Builder {
	return &Builder{Engine: engine, MaxIterations: maxIterations}
}

// FromPoints computes the convex hull of the given points and collapses
// the hull's triangulated face list into a minimal set of planar faces,
// one retained side per maximal face. Face winding is normalized so
// that outward normals point away from the solid's interior.
func (b *Builder) FromPoints(points []v3.Vec) (*Brush, error) {
	result, err := b.Engine.ComputeHull(points, hull.Options{MaxIterations: b.MaxIterations})
	if err != nil {
		return nil, fmt.Errorf("failed to find convex hull: %w", err)
	}

	triples := make([][3]int, 0, len(result.FaceIndices)/3)
	for i := 0; i+2 < len(result.FaceIndices); i += 3 {
		triples = append(triples, [3]int{
			result.FaceIndices[i],
			result.FaceIndices[i+1],
			result.FaceIndices[i+2],
		})
	}

	centroid := centroid(result.Vertices)
	for i, tri := range triples {
		triples[i] = orientOutward(result.Vertices, tri, centroid)
	}

	faces := make([]face, 0, len(triples))
	for _, tri := range dedupFaces(result.Vertices, triples) {
		faces = append(faces, face{indices: tri, material: DefaultMaterial})
	}

	return &Brush{vertices: result.Vertices, faces: faces}, nil
}

// dedupFaces drops every triangle whose plane coincides, in both
// normal direction and offset, with the plane of an earlier retained
// triangle. The hull triangulates each planar face, so this collapses
// the triangle fan back to one representative per face. The comparison
// is quadratic; per-brush face counts stay in the tens.
func dedupFaces(vertices []v3.Vec, triples [][3]int) [][3]int {
	kept := make([][3]int, 0, len(triples))
	for _, tri := range triples {
		candidate := sideOf(vertices, tri)
		unique := true
		for _, k := range kept {
			if candidate.Equivalent(sideOf(vertices, k)) {
				unique = false
				break
			}
		}
		if unique {
			kept = append(kept, tri)
		}
	}
	return kept
}

// orientOutward swaps the triangle winding if its normal points toward
// the hull centroid rather than away from it.
func orientOutward(vertices []v3.Vec, tri [3]int, centroid v3.Vec) [3]int {
	s := sideOf(vertices, tri)
	if s.Normal().Dot(s.Points[0].Sub(centroid)) < 0 {
		return [3]int{tri[0], tri[2], tri[1]}
	}
	return tri
}

func sideOf(vertices []v3.Vec, tri [3]int) Side {
	return Side{Points: [3]v3.Vec{vertices[tri[0]], vertices[tri[1]], vertices[tri[2]]}}
}

func centroid(vertices []v3.Vec) v3.Vec {
	var sum v3.Vec
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return sum.DivScalar(float64(len(vertices)))
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

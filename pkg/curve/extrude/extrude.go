// Package extrude produces curves by sweeping a 2D profile along a
// path in 3D space. The engine samples path and profile at evenly
// spaced parameter values, orients each cross-section, and pairs
// consecutive cross-sections into convex brushes.
package extrude

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/curveforge/pkg/curve"
	"github.com/chazu/curveforge/pkg/qmap"
)

// Orientation determines how a profile is placed at each sample point.
// The set is closed; every mode is handled explicitly and an
// unsupported combination is an error, never a silent fallback.
type Orientation int

const (
	// OrientFollowPath rotates the profile into the path's local
	// normal/binormal plane using its Frenet frame.
	OrientFollowPath Orientation = iota
	// OrientConstantXZ..OrientConstantXY place the profile on a fixed
	// coordinate plane, ignoring the path's frame.
	OrientConstantXZ
	OrientConstantYZ
	OrientConstantXY
)

func (o Orientation) String() string {
	switch o {
	case OrientFollowPath:
		return "Follow Path"
	case OrientConstantXZ:
		return "Constant (XZ)"
	case OrientConstantYZ:
		return "Constant (YZ)"
	case OrientConstantXY:
		return "Constant (XY)"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// FollowPathUnsupportedError reports a follow-path extrusion over a
// path that only provides placeholder frames.
type FollowPathUnsupportedError struct{}

func (FollowPathUnsupportedError) Error() string {
	return "follow-path orientation is not supported for this path"
}

// make3D places a local 2D profile point onto a fixed coordinate plane.
func make3D(p v2.Vec, o Orientation) v3.Vec {
	switch o {
	case OrientConstantYZ:
		return v3.Vec{Y: -p.X, Z: p.Y}
	case OrientConstantXY:
		return v3.Vec{X: p.X, Y: p.Y}
	default: // OrientConstantXZ
		return v3.Vec{X: p.X, Z: p.Y}
	}
}

// place positions one profile point in 3D for the given sample.
func place(p v2.Vec, o Orientation, frame FrenetFrame, at v3.Vec) v3.Vec {
	var point v3.Vec
	if o == OrientFollowPath {
		// The profile lies in the normal/binormal plane: rotate the
		// YZ-plane embedding by the matrix whose columns are
		// (tangent, normal, binormal).
		local := make3D(p, OrientConstantYZ)
		point = frame.Tangent.MulScalar(local.X).
			Add(frame.Normal.MulScalar(local.Y)).
			Add(frame.Binormal.MulScalar(local.Z))
	} else {
		point = make3D(p, o)
	}
	return point.Add(at)
}

// Extrude sweeps a single-polygon profile along a path, producing n
// brushes. The orientation decides whether cross-sections stay on a
// fixed plane or follow the path's frame.
func Extrude(n int, profile Profile, path Path, o Orientation, b *qmap.Builder) ([]*qmap.Brush, error) {
	if err := curve.ValidateSegments(n, curve.MaxSegments); err != nil {
		return nil, err
	}
	if err := checkOrientation(path, o); err != nil {
		return nil, err
	}

	sections := make([][]v3.Vec, n+1)
	for i, t := range curve.LerpClosed(0, 1, n+1) {
		at := path.Point(t)
		frame := path.Frame(t)
		polygon := profile.Profile(t)
		section := make([]v3.Vec, len(polygon))
		for j, p := range polygon {
			section[j] = place(p, o, frame, at)
		}
		sections[i] = section
	}

	brushes := make([]*qmap.Brush, 0, n)
	for i := 0; i+1 < len(sections); i++ {
		brush, err := b.FromPoints(append(append([]v3.Vec{}, sections[i]...), sections[i+1]...))
		if err != nil {
			return nil, err
		}
		brushes = append(brushes, brush)
	}
	return brushes, nil
}

// ExtrudeCompound sweeps a multi-polygon profile along a path. Adjacent
// cross-sections pair polygon-by-polygon, producing n brushes per
// polygon; the segment bound applies to n times the polygon count.
func ExtrudeCompound(n int, profile CompoundProfile, path Path, o Orientation, b *qmap.Builder) ([]*qmap.Brush, error) {
	total := n * len(profile.CompoundProfile(0))
	if err := curve.ValidateSegments(total, curve.MaxSegments); err != nil {
		return nil, err
	}
	if err := checkOrientation(path, o); err != nil {
		return nil, err
	}

	sections := make([][][]v3.Vec, n+1)
	for i, t := range curve.LerpClosed(0, 1, n+1) {
		at := path.Point(t)
		frame := path.Frame(t)
		polygons := profile.CompoundProfile(t)
		placed := make([][]v3.Vec, len(polygons))
		for j, polygon := range polygons {
			section := make([]v3.Vec, len(polygon))
			for k, p := range polygon {
				section[k] = place(p, o, frame, at)
			}
			placed[j] = section
		}
		sections[i] = placed
	}

	var brushes []*qmap.Brush
	for i := 0; i+1 < len(sections); i++ {
		for j := range sections[i] {
			brush, err := b.FromPoints(append(append([]v3.Vec{}, sections[i][j]...), sections[i+1][j]...))
			if err != nil {
				return nil, err
			}
			brushes = append(brushes, brush)
		}
	}
	return brushes, nil
}

func checkOrientation(path Path, o Orientation) error {
	if o != OrientFollowPath {
		return nil
	}
	if _, ok := path.(FixedOrientationOnly); ok {
		return FollowPathUnsupportedError{}
	}
	return nil
}

package extrude

import (
	"errors"
	"math"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/curveforge/pkg/curve"
)

func TestCirclePointCount(t *testing.T) {
	c, err := NewCircle(12, 32)
	if err != nil {
		t.Fatalf("NewCircle failed: %v", err)
	}
	points := c.Profile(0)
	if len(points) != 12 {
		t.Fatalf("point count = %d, want 12", len(points))
	}
	for i, p := range points {
		if r := math.Hypot(p.X, p.Y); math.Abs(r-32) > 1e-9 {
			t.Errorf("point %d radius = %v, want 32", i, r)
		}
	}
	// The open interval must not duplicate the start point.
	last := points[len(points)-1]
	if math.Abs(last.X-points[0].X) < 1e-9 && math.Abs(last.Y-points[0].Y) < 1e-9 {
		t.Error("last point duplicates the first")
	}
}

func TestCircleValidation(t *testing.T) {
	if _, err := NewCircle(0, 32); err == nil {
		t.Error("expected error for n=0")
	}
	var tooMany TooManyPointsError
	if _, err := NewCircle(curve.MaxSegments+1, 32); !errors.As(err, &tooMany) {
		t.Errorf("error = %v, want TooManyPointsError", err)
	}
}

func TestCircleSector(t *testing.T) {
	c, err := NewCircleSector(4, 10, 0, 90)
	if err != nil {
		t.Fatalf("NewCircleSector failed: %v", err)
	}
	points := c.Profile(0)
	// n+1 arc points plus the center.
	if len(points) != 6 {
		t.Fatalf("point count = %d, want 6", len(points))
	}
	center := points[len(points)-1]
	if center.X != 0 || center.Y != 0 {
		t.Errorf("sector not closed through center, last point = %+v", center)
	}
	first, last := points[0], points[4]
	if math.Abs(first.X-10) > 1e-9 || math.Abs(first.Y) > 1e-9 {
		t.Errorf("arc start = %+v, want (10, 0)", first)
	}
	if math.Abs(last.X) > 1e-9 || math.Abs(last.Y-10) > 1e-9 {
		t.Errorf("arc end = %+v, want (0, 10)", last)
	}
}

func TestCircleSectorValidation(t *testing.T) {
	var orderErr AngleOrderError
	if _, err := NewCircleSector(4, 10, 90, 0); !errors.As(err, &orderErr) {
		t.Errorf("error = %v, want AngleOrderError", err)
	}
	if _, err := NewCircleSector(4, 10, 45, 45); !errors.As(err, &orderErr) {
		t.Errorf("error for equal angles = %v, want AngleOrderError", err)
	}
	var spanErr AngleSpanError
	if _, err := NewCircleSector(4, 10, 0, 181); !errors.As(err, &spanErr) {
		t.Errorf("error = %v, want AngleSpanError", err)
	}
	// Exactly 180 degrees is allowed.
	if _, err := NewCircleSector(4, 10, 0, 180); err != nil {
		t.Errorf("unexpected error for 180 degree span: %v", err)
	}
}

func TestRectangleAnchors(t *testing.T) {
	tests := []struct {
		name   string
		anchor Anchor
		// Expected bounds of the produced quad.
		minX, maxX, minY, maxY float64
	}{
		{name: "center", anchor: AnchorCenter, minX: -2, maxX: 2, minY: -1, maxY: 1},
		{name: "bottom left", anchor: AnchorBottomLeft, minX: 0, maxX: 4, minY: 0, maxY: 2},
		{name: "top right", anchor: AnchorTopRight, minX: -4, maxX: 0, minY: -2, maxY: 0},
		{name: "bottom center", anchor: AnchorBottomCenter, minX: -2, maxX: 2, minY: 0, maxY: 2},
		{name: "center left", anchor: AnchorCenterLeft, minX: 0, maxX: 4, minY: -1, maxY: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := NewRectangle(4, 2, tt.anchor).Profile(0)
			if len(points) != 4 {
				t.Fatalf("point count = %d, want 4", len(points))
			}
			minX, maxX := math.Inf(1), math.Inf(-1)
			minY, maxY := math.Inf(1), math.Inf(-1)
			for _, p := range points {
				minX = math.Min(minX, p.X)
				maxX = math.Max(maxX, p.X)
				minY = math.Min(minY, p.Y)
				maxY = math.Max(maxY, p.Y)
			}
			if minX != tt.minX || maxX != tt.maxX || minY != tt.minY || maxY != tt.maxY {
				t.Errorf("bounds = x[%v,%v] y[%v,%v], want x[%v,%v] y[%v,%v]",
					minX, maxX, minY, maxY, tt.minX, tt.maxX, tt.minY, tt.maxY)
			}
		})
	}
}

func TestParallelogramAnchorBottomLeft(t *testing.T) {
	p := NewParallelogram(4, 0, 1, 2, AnchorBottomLeft).Profile(0)
	if len(p) != 4 {
		t.Fatalf("point count = %d, want 4", len(p))
	}
	// Anchored at the bottom-left corner, which therefore sits at the
	// origin.
	if p[0].X != 0 || p[0].Y != 0 {
		t.Errorf("bottom left = %+v, want origin", p[0])
	}
	if p[3].X != 5 || p[3].Y != 2 {
		t.Errorf("top right = %+v, want (5, 2)", p[3])
	}
}

func TestParallelogramAnchorCenter(t *testing.T) {
	p := NewParallelogram(4, 0, 0, 2, AnchorCenter).Profile(0)
	// The centroid of a parallelogram is the midpoint of its diagonal;
	// anchoring there centers the shape on the origin.
	var sum v2.Vec
	for _, pt := range p {
		sum = sum.Add(pt)
	}
	if math.Abs(sum.X) > 1e-9 || math.Abs(sum.Y) > 1e-9 {
		t.Errorf("point sum = %+v, want origin-centered shape", sum)
	}
}

func TestAnnulusPolygons(t *testing.T) {
	a, err := NewAnnulus(8, 24, 32, 0, 360)
	if err != nil {
		t.Fatalf("NewAnnulus failed: %v", err)
	}
	polygons := a.CompoundProfile(0)
	if len(polygons) != 8 {
		t.Fatalf("polygon count = %d, want 8", len(polygons))
	}
	for i, poly := range polygons {
		if len(poly) != 4 {
			t.Fatalf("polygon %d point count = %d, want 4", i, len(poly))
		}
		for j, p := range poly {
			r := math.Hypot(p.X, p.Y)
			if math.Abs(r-24) > 1e-9 && math.Abs(r-32) > 1e-9 {
				t.Errorf("polygon %d point %d radius = %v, want 24 or 32", i, j, r)
			}
		}
	}
}

func TestAnnulusValidation(t *testing.T) {
	if _, err := NewAnnulus(0, 24, 32, 0, 360); err == nil {
		t.Error("expected error for n=0")
	}
}

func TestArbitraryPassthrough(t *testing.T) {
	polys := [][]v2.Vec{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}},
	}
	a := NewArbitrary(polys)
	got := a.CompoundProfile(0.5)
	if len(got) != 2 {
		t.Fatalf("polygon count = %d, want 2", len(got))
	}
	if got[0][1].X != 1 || got[1][2].Y != 3 {
		t.Error("polygons not passed through unchanged")
	}
}

func TestSingleAdapter(t *testing.T) {
	c, err := NewCircle(6, 10)
	if err != nil {
		t.Fatalf("NewCircle failed: %v", err)
	}
	compound := Single{P: c}.CompoundProfile(0)
	if len(compound) != 1 {
		t.Fatalf("compound size = %d, want 1", len(compound))
	}
	if len(compound[0]) != 6 {
		t.Fatalf("polygon point count = %d, want 6", len(compound[0]))
	}
}

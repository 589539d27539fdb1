package curve

import (
	"errors"
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestClassicBrushCount(t *testing.T) {
	c := Classic{
		N: 4, Ri0: 96, Ro0: 160, Ri1: 96, Ro1: 160,
		Theta0: 0, Theta1: 90, T: 8,
	}
	brushes, err := c.Bake(testBuilder())
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}
	if len(brushes) != 4 {
		t.Fatalf("brush count = %d, want 4", len(brushes))
	}
	for i, brush := range brushes {
		if got := len(brush.Vertices()); got != 8 {
			t.Errorf("brush %d vertex count = %d, want 8", i, got)
		}
		if got := len(brush.Sides()); got != 6 {
			t.Errorf("brush %d side count = %d, want 6", i, got)
		}
	}
}

func TestClassicRejectsBadSegments(t *testing.T) {
	c := Classic{N: 0, Ri0: 96, Ro0: 160, Ri1: 96, Ro1: 160, Theta0: 0, Theta1: 90, T: 8}
	if _, err := c.Bake(testBuilder()); err == nil {
		t.Fatal("expected error for n=0")
	}
	c.N = MaxSegments + 1
	if _, err := c.Bake(testBuilder()); err == nil {
		t.Fatal("expected error for n over max")
	}
}

func TestBankBrushCount(t *testing.T) {
	c := Bank{
		N: 6, Ri0: 96, Ro0: 160, Ri1: 96, Ro1: 160,
		Theta0: 0, Theta1: 90, H: 32, T: 8,
	}
	brushes, err := c.Bake(testBuilder())
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}
	if len(brushes) != 6 {
		t.Fatalf("brush count = %d, want 6", len(brushes))
	}
}

func TestBankFillExtendsToBase(t *testing.T) {
	base := Bank{
		N: 4, Ri0: 96, Ro0: 160, Ri1: 96, Ro1: 160,
		Theta0: 0, Theta1: 90, H: 32, T: 8,
	}

	minZ := func(c Bank) float64 {
		brushes, err := c.Bake(testBuilder())
		if err != nil {
			t.Fatalf("Bake failed: %v", err)
		}
		min := math.Inf(1)
		for _, brush := range brushes {
			for _, v := range brush.Vertices() {
				if v.Z < min {
					min = v.Z
				}
			}
		}
		return min
	}

	unfilled := base
	filled := base
	filled.Fill = true

	// Without fill the outer underside floats at H-T; with fill it
	// drops to -T.
	if got := minZ(unfilled); math.Abs(got-(-8)) > 1e-9 {
		t.Errorf("unfilled min z = %v, want -8", got)
	}
	if got := minZ(filled); math.Abs(got-(-8)) > 1e-9 {
		t.Errorf("filled min z = %v, want -8", got)
	}

	// The filled bank occupies the volume under the outer edge; compare
	// the outer-bottom corner height at the sweep start.
	ufBrushes, _ := unfilled.Bake(testBuilder())
	fBrushes, _ := filled.Bake(testBuilder())
	outerLowUnfilled := lowestAtRadius(t, ufBrushes[0].Vertices(), 160)
	outerLowFilled := lowestAtRadius(t, fBrushes[0].Vertices(), 160)
	if !(outerLowFilled < outerLowUnfilled) {
		t.Errorf("filled outer underside (%v) not below unfilled (%v)", outerLowFilled, outerLowUnfilled)
	}
}

func lowestAtRadius(t *testing.T, vertices []v3.Vec, radius float64) float64 {
	t.Helper()
	min := math.Inf(1)
	found := false
	for _, v := range vertices {
		r := math.Hypot(v.X, v.Y)
		if math.Abs(r-radius) < 1e-6 {
			found = true
			if v.Z < min {
				min = v.Z
			}
		}
	}
	if !found {
		t.Fatalf("no vertex at radius %v", radius)
	}
	return min
}

func TestSlopeBrushCount(t *testing.T) {
	c := Slope{
		N: 5, Ri0: 96, Ro0: 160, Ri1: 96, Ro1: 160,
		Theta0: 0, Theta1: 90,
		HeightInnerTop0: 8, HeightInnerBot0: 0,
		HeightOuterTop0: 8, HeightOuterBot0: 0,
		HeightInnerTop1: 40, HeightInnerBot1: 32,
		HeightOuterTop1: 40, HeightOuterBot1: 32,
	}
	brushes, err := c.Bake(testBuilder())
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}
	// Each segment splits into an inner and an outer wedge.
	if len(brushes) != 10 {
		t.Fatalf("brush count = %d, want 10", len(brushes))
	}
}

func TestSlopeHillRaisesMidpoint(t *testing.T) {
	flat := Slope{
		N: 8, Ri0: 96, Ro0: 160, Ri1: 96, Ro1: 160,
		Theta0: 0, Theta1: 90,
		HeightInnerTop0: 8, HeightOuterTop0: 8,
		HeightInnerTop1: 8, HeightOuterTop1: 8,
	}
	hilly := flat
	hilly.HillInnerTop = 16
	hilly.HillOuterTop = 16
	hilly.HillInnerBot = 16
	hilly.HillOuterBot = 16

	maxZ := func(c Slope) float64 {
		brushes, err := c.Bake(testBuilder())
		if err != nil {
			t.Fatalf("Bake failed: %v", err)
		}
		max := math.Inf(-1)
		for _, brush := range brushes {
			for _, v := range brush.Vertices() {
				if v.Z > max {
					max = v.Z
				}
			}
		}
		return max
	}

	// The bump peaks at the sweep midpoint with the full hill height.
	if got, want := maxZ(hilly), 8.0+16.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("hilly max z = %v, want %v", got, want)
	}
	if got := maxZ(flat); math.Abs(got-8.0) > 1e-9 {
		t.Errorf("flat max z = %v, want 8", got)
	}
}

func TestRaytoSingleSegment(t *testing.T) {
	c := Rayto{
		N: 1, R0: 64, R1: 64, Theta0: 0, Theta1: 90,
		X: 0, Y: 0, H: 8,
	}
	brushes, err := c.Bake(testBuilder())
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}
	if len(brushes) != 1 {
		t.Fatalf("brush count = %d, want 1", len(brushes))
	}
	// A triangular prism: 6 vertices, 5 sides.
	if got := len(brushes[0].Vertices()); got != 6 {
		t.Errorf("vertex count = %d, want 6", got)
	}
	if got := len(brushes[0].Sides()); got != 5 {
		t.Errorf("side count = %d, want 5", got)
	}
}

func TestRaytoBrushCount(t *testing.T) {
	c := Rayto{
		N: 7, R0: 32, R1: 64, Theta0: 10, Theta1: 120,
		X: -8, Y: -8, H: 8,
	}
	brushes, err := c.Bake(testBuilder())
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}
	if len(brushes) != 7 {
		t.Fatalf("brush count = %d, want 7", len(brushes))
	}
}

func TestSerpentineBrushCount(t *testing.T) {
	c := Serpentine{
		N0: 4, N1: 6, X: 256, Z: 128, Xm: 128, Zm: 64,
		W: 64, T: 8, Offset: OffsetMiddle,
	}
	brushes, err := c.Bake(testBuilder())
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}
	if len(brushes) != 10 {
		t.Fatalf("brush count = %d, want 10", len(brushes))
	}
}

func TestSerpentineOffsetModes(t *testing.T) {
	for _, mode := range []OffsetMode{OffsetTop, OffsetMiddle, OffsetBottom} {
		c := Serpentine{
			N0: 4, N1: 4, X: 256, Z: 128, Xm: 128, Zm: 64,
			W: 64, T: 8, Offset: mode,
		}
		brushes, err := c.Bake(testBuilder())
		if err != nil {
			t.Fatalf("Bake with offset %v failed: %v", mode, err)
		}
		if len(brushes) != 8 {
			t.Errorf("offset %v brush count = %d, want 8", mode, len(brushes))
		}
	}
}

func TestSerpentineHeightValidation(t *testing.T) {
	base := Serpentine{
		N0: 4, N1: 4, X: 256, Z: 128, Xm: 128, Zm: 64, W: 64, T: 8,
	}
	tests := []struct {
		name   string
		mutate func(*Serpentine)
	}{
		{name: "non-positive end height", mutate: func(c *Serpentine) { c.Z = 0 }},
		{name: "non-positive midpoint height", mutate: func(c *Serpentine) { c.Zm = 0 }},
		{name: "midpoint above end", mutate: func(c *Serpentine) { c.Zm = 200 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			_, err := c.Bake(testBuilder())
			if err == nil {
				t.Fatal("expected error")
			}
			var heightErr HeightOrderError
			if !errors.As(err, &heightErr) {
				t.Fatalf("error = %v, want HeightOrderError", err)
			}
		})
	}
}

func TestSerpentineSegmentBound(t *testing.T) {
	c := Serpentine{
		N0: MaxSerpentineSegments + 1, N1: 4,
		X: 256, Z: 128, Xm: 128, Zm: 64, W: 64, T: 8,
	}
	_, err := c.Bake(testBuilder())
	var tooMany TooManySegmentsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("error = %v, want TooManySegmentsError", err)
	}
	if tooMany.Max != MaxSerpentineSegments {
		t.Errorf("Max = %d, want %d", tooMany.Max, MaxSerpentineSegments)
	}
}

func TestCatenaryBrushCount(t *testing.T) {
	c := Catenary{
		N: 8, X0: 0, Z0: 0, X1: 256, Z1: 0, S: 300, W: 16, T: 8,
	}
	brushes, err := c.Bake(testBuilder())
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}
	if len(brushes) != 8 {
		t.Fatalf("brush count = %d, want 8", len(brushes))
	}
}

func TestCatenaryEndpointHeights(t *testing.T) {
	c := Catenary{
		N: 16, X0: 10, Z0: 5, X1: 266, Z1: 37, S: 300, W: 16, T: 8,
	}
	brushes, err := c.Bake(testBuilder())
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}

	// The top surface passes through both anchor points.
	maxZAtX := func(x float64) float64 {
		max := math.Inf(-1)
		for _, brush := range brushes {
			for _, v := range brush.Vertices() {
				if math.Abs(v.X-x) < 1e-6 && v.Z > max {
					max = v.Z
				}
			}
		}
		return max
	}
	if got := maxZAtX(10); math.Abs(got-5) > 1e-6 {
		t.Errorf("height at x0 = %v, want 5", got)
	}
	if got := maxZAtX(266); math.Abs(got-37) > 1e-6 {
		t.Errorf("height at x1 = %v, want 37", got)
	}
}

func TestCatenaryRejectsShortRope(t *testing.T) {
	c := Catenary{
		N: 8, X0: 0, Z0: 0, X1: 256, Z1: 0, S: 100, W: 16, T: 8,
	}
	if _, err := c.Bake(testBuilder()); err == nil {
		t.Fatal("expected error for rope shorter than the span")
	}
}

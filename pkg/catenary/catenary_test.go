package catenary

import (
	"errors"
	"math"
	"testing"
)

func TestSolveLevelEndpoints(t *testing.T) {
	sol, err := Solve(1.0, 0.0, 1.1, 0, 200)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if got := sol.At(0); math.Abs(got) > 1e-6 {
		t.Errorf("At(0) = %v, want 0", got)
	}
	if got := sol.At(1); math.Abs(got) > 1e-6 {
		t.Errorf("At(1) = %v, want 0", got)
	}
	// The rope sags below its endpoints.
	if mid := sol.At(0.5); mid >= 0 {
		t.Errorf("At(0.5) = %v, want negative sag", mid)
	}
}

func TestSolveUnevenEndpoints(t *testing.T) {
	span, height := 2.0, 0.5
	sol, err := Solve(span, height, 3.0, 0, 200)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if got := sol.At(0); math.Abs(got) > 1e-6 {
		t.Errorf("At(0) = %v, want 0", got)
	}
	if got := sol.At(span); math.Abs(got-height) > 1e-6 {
		t.Errorf("At(span) = %v, want %v", got, height)
	}
}

func TestSolveArcLength(t *testing.T) {
	span, s := 1.0, 1.3
	sol, err := Solve(span, 0, s, 0, 200)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	// Numerically integrate arc length and compare with the requested
	// rope length.
	const steps = 10000
	var length float64
	for i := 0; i < steps; i++ {
		x0 := span * float64(i) / steps
		x1 := span * float64(i+1) / steps
		dz := sol.At(x1) - sol.At(x0)
		dx := x1 - x0
		length += math.Sqrt(dx*dx + dz*dz)
	}
	if math.Abs(length-s) > 1e-3 {
		t.Errorf("arc length = %v, want %v", length, s)
	}
}

func TestSolveLengthTooShort(t *testing.T) {
	// The rope cannot be shorter than the straight-line distance
	// between the endpoints.
	_, err := Solve(1.0, 0.5, 1.0, 0, 200)
	if err == nil {
		t.Fatal("expected error for too-short rope")
	}
	var tooShort LengthTooShortError
	if !errors.As(err, &tooShort) {
		t.Fatalf("error = %v, want LengthTooShortError", err)
	}
	if tooShort.Given != 1.0 {
		t.Errorf("Given = %v, want 1.0", tooShort.Given)
	}
	if tooShort.Min <= 1.0 {
		t.Errorf("Min = %v, want > 1.0", tooShort.Min)
	}
}

func TestSolveExhaustsIterations(t *testing.T) {
	_, err := Solve(1.0, 0.0, 1.1, 0, 1)
	if err == nil {
		t.Fatal("expected error with a one-iteration budget")
	}
	var conv ConvergenceError
	if !errors.As(err, &conv) {
		t.Fatalf("error = %v, want ConvergenceError", err)
	}
}

func TestSlopeMatchesNumericDerivative(t *testing.T) {
	sol, err := Solve(2.0, 0.3, 2.5, 0, 200)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	const h = 1e-6
	for _, x := range []float64{0.2, 0.7, 1.3, 1.9} {
		numeric := (sol.At(x+h) - sol.At(x-h)) / (2 * h)
		if got := sol.Slope(x); math.Abs(got-numeric) > 1e-4 {
			t.Errorf("Slope(%v) = %v, numeric derivative %v", x, got, numeric)
		}
	}
}

// Package catenary solves for the parameters of a catenary curve, the
// shape a cable of fixed length takes when hung between two points.
//
// The curve through (0,0) and (span,height) with arc length s is
// z = a*cosh((x-k)/a) + c. Finding a reduces to a one-dimensional root
// of a closed-form function of b = a/span, solved by Newton-Raphson.
package catenary

import (
	"fmt"
	"math"
)

// epsilon bounds the positional error at both endpoints. Output
// coordinates carry six decimal places, so 1e-9 is comfortably below
// the precision that survives serialization.
const epsilon = 1e-9

// Solution holds the parameters of a solved catenary
// z = A*cosh((x-K)/A) + C.
type Solution struct {
	A float64
	K float64
	C float64
}

// At evaluates the catenary height at x.
func (s Solution) At(x float64) float64 {
	return s.A*math.Cosh((x-s.K)/s.A) + s.C
}

// Slope evaluates dz/dx at x.
func (s Solution) Slope(x float64) float64 {
	return math.Sinh((x - s.K) / s.A)
}

// LengthTooShortError reports a rope shorter than the straight-line
// distance between the endpoints; no catenary exists for it.
type LengthTooShortError struct {
	Given float64
	Min   float64
}

func (e LengthTooShortError) Error() string {
	return fmt.Sprintf("given length %v is too short; must be greater than %v", e.Given, e.Min)
}

// ConvergenceError reports a Newton iteration that exhausted its cap or
// produced a non-finite residual.
type ConvergenceError struct {
	Iterations   int
	InitialGuess float64
}

func (e ConvergenceError) Error() string {
	return fmt.Sprintf(
		"newton's method failed to converge to an accurate solution after %d iterations; "+
			"the initial guess was %v; change the parameters to a less extreme catenary curve, "+
			"or try again with a different initial guess",
		e.Iterations, e.InitialGuess)
}

// Solve finds the catenary through (0,0) and (span,height) with arc
// length s. A zero guess selects the analytic initial guess. maxIter
// caps the Newton iteration count.
func Solve(span, height, s, guess float64, maxIter int) (Solution, error) {
	v := height
	h := span

	minLen := math.Sqrt(height*height + span*span)
	if s <= minLen {
		return Solution{}, LengthTooShortError{Given: s, Min: minLen}
	}

	if guess == 0 {
		guess = initialGuess(v, h, s)
	}

	a, err := newtonA(v, h, s, 0, 0, span, height, guess, maxIter)
	if err != nil {
		return Solution{}, err
	}

	// The remaining parameters follow in closed form.
	k := 0.5 * (h - a*math.Log((s+v)/(s-v)))
	c := -a * math.Cosh(-k/a)
	return Solution{A: a, K: k, C: c}, nil
}

// initialGuess is an analytic starting point for b = a/h derived from a
// series expansion of the arc-length relation.
func initialGuess(v, h, s float64) float64 {
	return 1.0 / math.Sqrt(math.Sqrt(s*s-v*v)/h-1.0) / (2.0 * math.Sqrt(6.0))
}

// newtonA iterates b until the catenary through both endpoints is
// positionally accurate to epsilon, then returns a = b*h.
func newtonA(v, h, s, x0, z0, x1, z1, guess float64, maxIter int) (float64, error) {
	b := guess
	next := b
	count := 0
	for boundsErr(x0, z0, x1, z1, next*h, s) > epsilon && count < maxIter {
		b = next
		next = b - f2b(b, v, h, s)/df2b(b)
		count++
	}
	if count >= maxIter || !isFinite(boundsErr(x0, z0, x1, z1, next*h, s)) {
		return 0, ConvergenceError{Iterations: maxIter, InitialGuess: guess}
	}
	return next * h, nil
}

// f2b is the root function: zero when b produces a catenary of arc
// length s between the endpoints.
func f2b(b, v, h, s float64) float64 {
	return 1.0/math.Sqrt(2.0*b*math.Sinh(1.0/(2.0*b))-1.0) -
		1.0/math.Sqrt(math.Sqrt(s*s-v*v)/h-1.0)
}

// df2b is the derivative of f2b with respect to b.
func df2b(b float64) float64 {
	m := 1.0 / (2.0 * b)
	return (m*math.Cosh(m) - math.Sinh(m)) * math.Pow(math.Sinh(m)/m-1.0, -1.5)
}

// boundsErr is the larger of the positional errors at the two endpoints
// for the catenary implied by shape parameter a.
func boundsErr(x0, z0, x1, z1, a, s float64) float64 {
	v := z1 - z0
	h := x1 - x0
	k := x0 + 0.5*(h-a*math.Log((s+v)/(s-v)))
	c := z0 - a*math.Cosh((x0-k)/a)
	err0 := math.Abs(a*math.Cosh((x0-k)/a) + c - z0)
	err1 := math.Abs(a*math.Cosh((x1-k)/a) + c - z1)
	return math.Max(err0, err1)
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Package curve holds self-contained curve generators. Each generator
// is a bag of numeric parameters with a Bake method that produces the
// convex brushes approximating the shape. Validation happens before any
// geometry is built, and a single failing brush aborts the whole bake.
package curve

import (
	"fmt"
	"math"

	"github.com/chazu/curveforge/pkg/qmap"
)

// MaxSegments is the upper bound on segment counts for every generator
// and for the extrusion engine.
const MaxSegments = 4096

// Curve is a baked shape rule. Bake returns one brush per differential
// segment (generators document their exact brush count).
type Curve interface {
	Bake(b *qmap.Builder) ([]*qmap.Brush, error)
}

// TooFewSegmentsError reports a segment count below 1.
type TooFewSegmentsError struct {
	N int
}

func (e TooFewSegmentsError) Error() string {
	return fmt.Sprintf("n = %d; number of segments must be at least 1", e.N)
}

// TooManySegmentsError reports a segment count above the allowed
// maximum.
type TooManySegmentsError struct {
	N   int
	Max int
}

func (e TooManySegmentsError) Error() string {
	return fmt.Sprintf("n = %d; number of segments must be no greater than %d", e.N, e.Max)
}

// ValidateSegments checks 1 <= n <= max.
func ValidateSegments(n, max int) error {
	if n < 1 {
		return TooFewSegmentsError{N: n}
	}
	if n > max {
		return TooManySegmentsError{N: n, Max: max}
	}
	return nil
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpClosed returns count evenly spaced values from start to end with
// both endpoints included exactly once. count must be at least 2.
func LerpClosed(start, end float64, count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = Lerp(start, end, float64(i)/float64(count-1))
	}
	return out
}

// LerpOpen returns count evenly spaced values from start toward end
// with the end point excluded.
func LerpOpen(start, end float64, count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = Lerp(start, end, float64(i)/float64(count))
	}
	return out
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

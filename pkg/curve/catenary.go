package curve

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/curveforge/pkg/catenary"
	"github.com/chazu/curveforge/pkg/qmap"
)

// catenaryMaxIter caps the Newton iteration for the standalone
// generator. The direct generator works on user-supplied endpoints that
// are already sane, so a short budget suffices.
const catenaryMaxIter = 200

// Catenary is a hanging-cable segment of rope length S between
// (X0, Z0) and (X1, Z1), extruded to width W and thickness T. A zero
// InitialGuess selects the analytic starting point for the solver.
type Catenary struct {
	N            int
	X0           float64
	Z0           float64
	X1           float64
	Z1           float64
	S            float64
	W            float64
	T            float64
	InitialGuess float64
}

// Bake produces N brushes of 8 points each.
func (c Catenary) Bake(b *qmap.Builder) ([]*qmap.Brush, error) {
	if err := ValidateSegments(c.N, MaxSegments); err != nil {
		return nil, err
	}

	span := c.X1 - c.X0
	height := c.Z1 - c.Z0
	sol, err := catenary.Solve(span, height, c.S, c.InitialGuess, catenaryMaxIter)
	if err != nil {
		return nil, err
	}

	// The solver works in coordinates relative to (X0, Z0).
	z := func(x float64) float64 {
		return sol.At(x-c.X0) + c.Z0
	}

	x := LerpClosed(c.X0, c.X1, c.N+1)
	sections := make([][]v3.Vec, c.N+1)
	for i := range sections {
		top := z(x[i])
		bot := top - c.T
		sections[i] = []v3.Vec{
			{X: x[i], Y: 0, Z: bot},
			{X: x[i], Y: c.W, Z: bot},
			{X: x[i], Y: 0, Z: top},
			{X: x[i], Y: c.W, Z: top},
		}
	}

	return bakeSections(b, sections)
}

// A small, fast solver for two dimensional linear programs.
//
// Given half-plane constraints a*x + b*y <= c and an objective (cx, cy), Solve
// finds the point minimizing cx*x + cy*y, or reports that no point satisfies the
// constraints, or that the objective can decrease forever. It uses Seidel's
// randomized incremental algorithm, which runs in expected linear time.
//
// The seidel package has the engine itself, for callers who want line solves,
// feasible regions, or panics instead of errors.
package lp2d

import (
	"math"

	"github.com/osuushi/lp2d/seidel"
)

type HalfPlane = seidel.HalfPlane
type Solution = seidel.Solution
type Status = seidel.Status
type Option = seidel.Option

const (
	Optimal           = seidel.Optimal
	PrimaryInfeasible = seidel.PrimaryInfeasible
	DualInfeasible    = seidel.DualInfeasible
)

var (
	ErrNonFinite = seidel.ErrNonFinite
	ErrBadBound  = seidel.ErrBadBound

	WithSeed  = seidel.WithSeed
	WithRand  = seidel.WithRand
	WithBound = seidel.WithBound
	SetLogger = seidel.SetLogger
)

// Minimize cx*x + cy*y subject to every constraint. The returned error is only
// for bad input (NaN or infinite coefficients, a bad bound); infeasible and
// unbounded problems are reported through Solution.Status.
func Solve(cx, cy float64, constraints []HalfPlane, opts ...Option) (solution Solution, err error) {
	defer func() {
		recoveredErr := seidel.HandleSolvePanicRecover(recover())
		if recoveredErr != nil {
			solution = Solution{}
			err = recoveredErr
		}
	}()
	return seidel.NewSolver(opts...).Solve(cx, cy, constraints), nil
}

// Minimize y. This predates Solve and signals the outcome through y alone:
// -Inf when y is unbounded below, +Inf when no point satisfies the constraints.
// x is 0 in both cases. Bad input panics.
func SolveMinY(constraints []HalfPlane, opts ...Option) (x, y float64) {
	solution, err := Solve(0, 1, constraints, opts...)
	if err != nil {
		panic(err)
	}
	switch solution.Status {
	case DualInfeasible:
		return 0, math.Inf(-1)
	case PrimaryInfeasible:
		return 0, math.Inf(1)
	}
	return solution.X, solution.Y
}

// Number of constraints that (x, y) violates, with the solver's tolerance.
func Check(constraints []HalfPlane, x, y float64) int {
	return seidel.Check(constraints, seidel.Point{X: x, Y: y})
}

// Convert {a, b, c} triples into constraints.
func FromTriples(triples [][3]float64) []HalfPlane {
	constraints := make([]HalfPlane, len(triples))
	for i, t := range triples {
		constraints[i] = HalfPlane{A: t[0], B: t[1], C: t[2]}
	}
	return constraints
}

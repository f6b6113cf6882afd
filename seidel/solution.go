package seidel

// Solution is the outcome of a solve. Which fields carry information depends on
// Status:
//
//   - Optimal: X, Y is a minimizer and Basis lists the constraints that pin it.
//   - PrimaryInfeasible: Conflict lists constraints with no common point. It can be
//     empty when the conflict only involves the artificial box.
//   - DualInfeasible: Ray is a unit direction along which the objective decreases
//     forever, and X, Y is the point where the artificial box stopped it.
//
// Indices in Basis and Conflict refer to the caller's constraint slice.
type Solution struct {
	X, Y     float64
	Status   Status
	Basis    []int
	Conflict []int
	Ray      Point
	Stats    Stats
}

type Stats struct {
	// Constraints fed to the incremental loop (degenerate ones are not counted)
	Constraints int
	// Times a constraint rejected the candidate and the line solver ran
	Violations int
}

func (s Solution) Point() Point {
	return Point{X: s.X, Y: s.Y}
}

func (s Solution) IsOptimal() bool {
	return s.Status == Optimal
}

func (s Solution) IsInfeasible() bool {
	return s.Status == PrimaryInfeasible
}

func (s Solution) IsUnbounded() bool {
	return s.Status == DualInfeasible
}

// Objective value at the returned point.
func (s Solution) Objective(cx, cy float64) float64 {
	return cx*s.X + cy*s.Y
}

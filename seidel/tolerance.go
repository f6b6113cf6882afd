package seidel

import "math"

// Every comparison in the engine goes through this constant: the primitives, the
// line solver and the certifier all agree on what "on the line" means.
const Tolerance = 1e-9

// DefaultBound is the half-width of the artificial box the solver starts from. It
// is measured in the normalized frame, where every constraint has a unit normal
// and |C| <= 1.
const DefaultBound = 1e10

// Equality is tolerance based, relative to the larger magnitude once that exceeds 1.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package seidel

// This contains no actual tests. It is just a helper for checking that a
// solution is consistent with the problem it claims to solve.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The rules are:
// 1. An optimal point violates no constraint, and its basis constraints are tight.
// 2. An infeasibility conflict is itself infeasible.
// 3. An unbounded ray is a unit vector in the recession cone, along which the
//    objective decreases.
// 4. Only the fields that belong to the status are set.
func AssertValidSolution(t *testing.T, constraints []HalfPlane, cx, cy float64, solution Solution) {
	t.Helper()
	switch solution.Status {
	case Optimal:
		p := solution.Point()
		require.Zero(t, Check(constraints, p), "optimal point %v violates %v", p, Violations(constraints, p))
		for _, i := range solution.Basis {
			hp := constraints[i]
			slack := hp.C - hp.Eval(p)
			scale := math.Abs(hp.A*p.X) + math.Abs(hp.B*p.Y) + math.Abs(hp.C) + 1
			assert.InDelta(t, 0, slack/scale, 1e-6, "basis constraint %d (%v) is not tight at %v", i, hp, p)
		}
		assert.Empty(t, solution.Conflict)
		assert.Zero(t, solution.Ray)

	case PrimaryInfeasible:
		if len(solution.Conflict) > 0 {
			subset := make([]HalfPlane, len(solution.Conflict))
			for i, index := range solution.Conflict {
				subset[i] = constraints[index]
			}
			sub := NewSolver(WithSeed(1)).Solve(cx, cy, subset)
			assert.Equal(t, PrimaryInfeasible, sub.Status, "conflict %v is feasible", solution.Conflict)
		}
		assert.Empty(t, solution.Basis)
		assert.Zero(t, solution.X)
		assert.Zero(t, solution.Y)

	case DualInfeasible:
		ray := solution.Ray
		assert.InDelta(t, 1, ray.Norm(), 1e-9, "ray %v is not a unit vector", ray)
		assert.Less(t, cx*ray.X+cy*ray.Y, 0.0, "objective does not decrease along %v", ray)
		for i, hp := range constraints {
			cone := HalfPlane{hp.A, hp.B, 0}
			assert.False(t, Violates(cone, ray), "ray %v leaves constraint %d (%v)", ray, i, hp)
		}
		assert.Empty(t, solution.Basis)
		assert.Empty(t, solution.Conflict)

	default:
		t.Fatalf("unknown status %v", solution.Status)
	}
}

package lp2d

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The engine is tested in the seidel package.
func TestSolve(t *testing.T) {
	constraints := FromTriples([][3]float64{{0, -1, 2}, {0, -1, 1.5}, {-1, -1, 0}, {-1, -1, 0.2}, {1, -1, 2}})
	solution, err := Solve(0, 1, constraints)
	require.NoError(t, err)
	assert.Equal(t, Optimal, solution.Status)
	assert.InDelta(t, -1, solution.Y, 1e-9)
	assert.Zero(t, Check(constraints, solution.X, solution.Y))
}

func TestSolveError(t *testing.T) {
	solution, err := Solve(0, 1, []HalfPlane{{A: math.NaN()}})
	assert.True(t, errors.Is(err, ErrNonFinite))
	assert.Equal(t, Solution{}, solution)

	_, err = Solve(0, 1, nil, WithBound(-1))
	assert.True(t, errors.Is(err, ErrBadBound))
}

func TestSolveMinY(t *testing.T) {
	x, y := SolveMinY(FromTriples([][3]float64{{-1, 1, -2}, {1, -4, 9}}))
	assert.Equal(t, -1.0/3, x)
	assert.Equal(t, -7.0/3, y)

	x, y = SolveMinY(nil)
	assert.Zero(t, x)
	assert.True(t, math.IsInf(y, -1))

	x, y = SolveMinY(FromTriples([][3]float64{{-1, 4, -3}, {1, -4, 2}}))
	assert.Zero(t, x)
	assert.True(t, math.IsInf(y, 1))

	assert.Panics(t, func() {
		SolveMinY([]HalfPlane{{A: math.Inf(1)}})
	})
}

func TestSolveMinYAgreesWithSolve(t *testing.T) {
	constraints := FromTriples([][3]float64{{1, 1, 1}, {-1, 1, 1}, {1, -1, 1}, {-1, -1, 1}, {0.3, -1, 0.8}})
	solution, err := Solve(0, 1, constraints, WithSeed(9))
	require.NoError(t, err)
	x, y := SolveMinY(constraints, WithSeed(9))
	assert.Equal(t, solution.X, x)
	assert.Equal(t, solution.Y, y)
}

func TestFromTriples(t *testing.T) {
	assert.Equal(t, []HalfPlane{{A: 1, B: 2, C: 3}}, FromTriples([][3]float64{{1, 2, 3}}))
	assert.Empty(t, FromTriples(nil))
}

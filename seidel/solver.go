// Seidel's randomized incremental algorithm for two dimensional linear programs,
// and the geometry it is built from.
//
// Errors in the input are raised as panics carrying a SolveError, the same way
// all the way down, and recovered at the edge with HandleSolvePanicRecover. The
// lp2d package does that for you.
package seidel

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/osuushi/lp2d/internal/dbg"
)

// The first boxSides entries of every work slice are the artificial bounding box,
// in this order: x <= M, -x <= M, y <= M, -y <= M.
const boxSides = 4

func boxHalfPlanes(bound float64) []HalfPlane {
	return []HalfPlane{
		{1, 0, bound},
		{-1, 0, bound},
		{0, 1, bound},
		{0, -1, bound},
	}
}

// A Solver runs Seidel's randomized incremental algorithm. It holds only
// options, so one Solver can be reused, and shared between goroutines as long as
// it wasn't given a *rand.Rand.
type Solver struct {
	opts Options
}

func NewSolver(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver{opts: o}
}

func (s *Solver) Options() Options {
	return s.opts
}

// Minimize y. This is exactly Solve(0, 1, constraints), so with the same seed the
// two return identical solutions.
func (s *Solver) SolveMinY(constraints []HalfPlane) Solution {
	return s.Solve(0, 1, constraints)
}

// Minimize cx*x + cy*y subject to every constraint. The constraints slice is
// read, never modified.
//
// A zero objective asks for any feasible point; the result is then Optimal or
// PrimaryInfeasible, never DualInfeasible.
//
// Non-finite input or a bad bound panics with a SolveError. Use the lp2d package
// for an API that returns those as errors.
func (s *Solver) Solve(cx, cy float64, constraints []HalfPlane) Solution {
	s.opts.validate()
	if !isFinite(cx) || !isFinite(cy) {
		fatalWrapf(ErrNonFinite, "objective (%g, %g)", cx, cy)
	}
	for i, hp := range constraints {
		if !hp.IsFinite() {
			fatalWrapf(ErrNonFinite, "constraint %d (%v)", i, hp)
		}
	}

	var objective Point
	zeroObjective := math.Abs(cx) <= Tolerance && math.Abs(cy) <= Tolerance
	if !zeroObjective {
		objective = Point{X: cx, Y: cy}.Normalize()
	}

	// Normalize, and remember where each working constraint came from. Box sides
	// map to -1.
	work := append(make([]HalfPlane, 0, boxSides+len(constraints)), boxHalfPlanes(s.opts.Bound)...)
	index := append(make([]int, 0, cap(work)), -1, -1, -1, -1)
	scale := 1.0
	for i, hp := range constraints {
		normal, ok := hp.Normalized()
		if !ok {
			if !Violates(hp, Point{}) {
				continue
			}
			// 0 <= C with C < 0: nothing satisfies this one
			return Solution{Status: PrimaryInfeasible, Conflict: []int{i}}
		}
		scale = math.Max(scale, math.Abs(normal.C))
		work = append(work, normal)
		index = append(index, i)
	}
	for i := boxSides; i < len(work); i++ {
		work[i].C /= scale
	}

	// Shuffle the constraints, but not the box. This is what gives us expected
	// linear time.
	rng := s.opts.rng()
	rng.Shuffle(len(work)-boxSides, func(i, j int) {
		i, j = i+boxSides, j+boxSides
		work[i], work[j] = work[j], work[i]
		index[i], index[j] = index[j], index[i]
	})

	result := incremental(work, objective)
	solution := Solution{
		Status: result.status,
		Stats: Stats{
			Constraints: len(work) - boxSides,
			Violations:  result.violations,
		},
	}

	switch result.status {
	case PrimaryInfeasible:
		solution.Conflict = callerIndices(result.conflict, index)
	case DualInfeasible:
		solution.X, solution.Y = result.point.X*scale, result.point.Y*scale
		solution.Ray = result.ray
	case Optimal:
		solution.X, solution.Y = result.point.X*scale, result.point.Y*scale
		if !zeroObjective && result.touchesBox(s.opts.Bound) {
			if ray, ok := recession(work, objective); ok {
				solution.Status = DualInfeasible
				solution.Ray = ray
				break
			}
		}
		solution.Basis = callerIndices(result.basis[:], index)
		if len(solution.Basis) == 2 {
			p := polish(constraints, solution.Basis, solution.Point())
			solution.X, solution.Y = p.X, p.Y
		}
	}

	if logger := Logger(); logger.Enabled(context.Background(), slog.LevelInfo) {
		logger.Info("solved",
			"status", solution.Status.String(),
			"x", solution.X,
			"y", solution.Y,
			"constraints", solution.Stats.Constraints,
			"violations", solution.Stats.Violations,
		)
	}
	return solution
}

type outcome struct {
	status Status
	point  Point
	// Work indices of the constraints that pinned point, -1 for unused slots
	basis    [2]int
	conflict []int
	ray      Point

	violations int
}

// Check if the point is pinned by the artificial box rather than by real
// constraints. Only then can the problem without the box be unbounded.
func (o outcome) touchesBox(bound float64) bool {
	for _, b := range o.basis {
		if b >= 0 && b < boxSides {
			return true
		}
	}
	edge := bound * (1 - Tolerance)
	return math.Abs(o.point.X) >= edge || math.Abs(o.point.Y) >= edge
}

// The incremental loop. work[:boxSides] is the box, the rest is already shuffled.
func incremental(work []HalfPlane, objective Point) outcome {
	candidate, basis := initialCorner(objective, work[0].C)
	violations := 0

	logger := Logger()
	debug := logger.Enabled(context.Background(), slog.LevelDebug)

	for i := boxSides; i < len(work); i++ {
		if !exceeds(work[i], candidate) {
			continue
		}
		violations++

		// The new optimum lies on this constraint's line, so solve the 1D problem
		// against everything seen so far, box included.
		line := SolveOnLine(work[i], work[:i], objective)
		if debug {
			logger.Debug("constraint rejected candidate",
				"constraint", dbg.Name(&work[i]),
				"halfplane", work[i].String(),
				"candidate", candidate,
				"outcome", line.Outcome.String(),
				"interval", line.Interval,
			)
		}

		switch line.Outcome {
		case LineOptimal:
			candidate = line.Point
			basis = [2]int{i, line.Limit}
		case LineInfeasible:
			return outcome{
				status:     PrimaryInfeasible,
				conflict:   append(line.Conflict, i),
				basis:      [2]int{-1, -1},
				violations: violations,
			}
		case LineUnbounded:
			// Only reachable without a box
			ray := work[i].Direction()
			if objective.Dot(ray) > 0 {
				ray = ray.Mul(-1)
			}
			return outcome{
				status:     DualInfeasible,
				point:      candidate,
				basis:      [2]int{-1, -1},
				ray:        ray,
				violations: violations,
			}
		default:
			fatalf("line solve on %v gave %v", work[i], line.Outcome)
		}
	}

	return outcome{status: Optimal, point: candidate, basis: basis, violations: violations}
}

// The box corner with the least objective value. On a tie, prefer the
// lexicographically smallest corner. The basis is the two box sides through it.
func initialCorner(objective Point, bound float64) (Point, [2]int) {
	corner := Point{X: -bound, Y: -bound}
	basis := [2]int{1, 3}
	if objective.X < -Tolerance {
		corner.X = bound
		basis[0] = 0
	}
	if objective.Y < -Tolerance {
		corner.Y = bound
		basis[1] = 2
	}
	return corner, basis
}

// Decide whether an optimum found on the box is an artifact of the box. The
// recession cone of the feasible region is {d : A*dx + B*dy <= 0 for every
// constraint}; the problem is unbounded exactly when the objective decreases along
// some d in it. Minimizing over the cone inside a unit box is another instance
// of the same problem.
func recession(work []HalfPlane, objective Point) (Point, bool) {
	cone := make([]HalfPlane, len(work))
	copy(cone, boxHalfPlanes(1))
	for i := boxSides; i < len(work); i++ {
		cone[i] = HalfPlane{work[i].A, work[i].B, 0}
	}

	result := incremental(cone, objective)
	if result.status != Optimal || result.point.Dot(objective) >= -Tolerance {
		return Point{}, false
	}
	return result.point.Normalize(), true
}

// Recompute a vertex from the caller's own coefficients. The solver works on
// normalized and rescaled copies, which costs a few ulps; intersecting the
// originals gives results like -7/3 exactly. The polished point is only used if it
// is still feasible.
func polish(constraints []HalfPlane, basis []int, fallback Point) Point {
	p, ok := Intersect(constraints[basis[0]], constraints[basis[1]])
	if !ok || Check(constraints, p) != 0 {
		return fallback
	}
	return p
}

// Translate work indices into caller indices, dropping box sides and unused
// slots. The result is sorted.
func callerIndices(workIndices []int, index []int) []int {
	var result []int
	for _, w := range workIndices {
		if w < 0 || index[w] < 0 {
			continue
		}
		result = append(result, index[w])
	}
	sort.Ints(result)
	return result
}

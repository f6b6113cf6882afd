package seidel

import (
	"math"

	"github.com/golang/geo/r1"
)

// The one dimensional problem solved when a new constraint rejects the current
// candidate: the new optimum has to lie on that constraint's boundary line, so
// the line is parameterized as Reference + t*Direction, every other half-plane
// turns into a bound on t, and the objective turns into k*t.

type LineOutcome int

const (
	LineOptimal LineOutcome = iota
	LineInfeasible
	LineUnbounded
)

func (o LineOutcome) String() string {
	switch o {
	case LineOptimal:
		return "LineOptimal"
	case LineInfeasible:
		return "LineInfeasible"
	case LineUnbounded:
		return "LineUnbounded"
	}
	return "LineOutcome(?)"
}

type LineResult struct {
	Outcome LineOutcome
	// Only set for LineOptimal
	Point Point
	T     float64
	// The feasible range of t. Lo/Hi are infinite when nothing bounds that side.
	Interval r1.Interval
	// Index (into others) of the bound that pinned T, or -1 when T is interior
	// (or for non-optimal outcomes).
	Limit int
	// For LineInfeasible, indices (into others) of the half-planes that exclude
	// the entire line between them.
	Conflict []int
}

// Minimize objective·p over the points p on the boundary of line that satisfy
// every half-plane in others. line and others must be normalized (unit normals).
func SolveOnLine(line HalfPlane, others []HalfPlane, objective Point) LineResult {
	origin := line.Reference()
	dir := line.Direction()

	interval := r1.Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}
	loIndex, hiIndex := -1, -1

	for i, other := range others {
		den := other.A*dir.X + other.B*dir.Y
		if math.Abs(den) <= Tolerance {
			// Parallel: the other half-plane either contains the whole line or none of it
			if exceeds(other, origin) {
				return LineResult{Outcome: LineInfeasible, Limit: -1, Interval: interval, Conflict: []int{i}}
			}
			continue
		}
		num := other.C - other.Eval(origin)
		bound := num / den
		if den > 0 {
			if bound < interval.Hi {
				interval.Hi = bound
				hiIndex = i
			}
		} else if bound > interval.Lo {
			interval.Lo = bound
			loIndex = i
		}
	}

	if interval.IsEmpty() {
		// The bounds cross, but maybe only by rounding. Give the midpoint a chance
		// before calling the line infeasible.
		mid := interval.Lo + (interval.Hi-interval.Lo)/2
		p := origin.Add(dir.Mul(mid))
		if exceeds(others[loIndex], p) || exceeds(others[hiIndex], p) {
			return LineResult{Outcome: LineInfeasible, Limit: -1, Interval: interval, Conflict: []int{loIndex, hiIndex}}
		}
		return LineResult{Outcome: LineOptimal, Point: p, T: mid, Interval: interval, Limit: loIndex}
	}

	k := objective.Dot(dir)
	var t float64
	limit := -1
	switch {
	case math.Abs(k) <= Tolerance:
		// Every feasible t is optimal. Take the one closest to the reference point
		// so the answer doesn't depend on the order constraints arrived in.
		t = interval.ClampPoint(0)
		if t == interval.Lo && t != 0 {
			limit = loIndex
		} else if t == interval.Hi && t != 0 {
			limit = hiIndex
		}
	case k > 0:
		if math.IsInf(interval.Lo, -1) {
			return LineResult{Outcome: LineUnbounded, Limit: -1, Interval: interval}
		}
		t = interval.Lo
		limit = loIndex
	default:
		if math.IsInf(interval.Hi, 1) {
			return LineResult{Outcome: LineUnbounded, Limit: -1, Interval: interval}
		}
		t = interval.Hi
		limit = hiIndex
	}

	return LineResult{
		Outcome:  LineOptimal,
		Point:    origin.Add(dir.Mul(t)),
		T:        t,
		Interval: interval,
		Limit:    limit,
	}
}

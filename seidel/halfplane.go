package seidel

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// A HalfPlane is the closed region A*x + B*y <= C. It is a value type and is never
// mutated once it has been handed to the solver.
type HalfPlane struct {
	A, B, C float64
}

type Point = r2.Point

func (hp HalfPlane) String() string {
	return fmt.Sprintf("%gx + %gy <= %g", hp.A, hp.B, hp.C)
}

// Left hand side of the inequality at p.
func (hp HalfPlane) Eval(p Point) float64 {
	return hp.A*p.X + hp.B*p.Y
}

func (hp HalfPlane) IsFinite() bool {
	return isFinite(hp.A) && isFinite(hp.B) && isFinite(hp.C)
}

// A half-plane with A = B = 0 has no boundary line. It is either the whole plane
// or nothing, depending on the sign of C. A normal that is tiny next to C counts
// as zero; small coefficients on their own do not.
func (hp HalfPlane) IsDegenerate() bool {
	norm := math.Hypot(hp.A, hp.B)
	return norm == 0 || norm <= Tolerance*math.Abs(hp.C)
}

// Scale the half-plane so that its normal (A, B) has unit length. Returns false
// for degenerate half-planes, which have no normal to scale.
func (hp HalfPlane) Normalized() (HalfPlane, bool) {
	norm := math.Hypot(hp.A, hp.B)
	if norm == 0 || hp.IsDegenerate() {
		return hp, false
	}
	return HalfPlane{hp.A / norm, hp.B / norm, hp.C / norm}, true
}

// The point on the boundary closest to the origin. Only meaningful for
// normalized half-planes.
func (hp HalfPlane) Reference() Point {
	return Point{X: hp.A * hp.C, Y: hp.B * hp.C}
}

// Unit direction of the boundary line, with the inside of the half-plane on its
// left. Only meaningful for normalized half-planes.
func (hp HalfPlane) Direction() Point {
	return Point{X: -hp.B, Y: hp.A}
}

// Check if p lies outside the half-plane by more than the tolerance. The slack is
// relative to the magnitude of the terms involved, so multiplying A, B and C by
// the same positive factor never changes the answer.
func Violates(hp HalfPlane, p Point) bool {
	ax := hp.A * p.X
	by := hp.B * p.Y
	return ax+by-hp.C > Tolerance*(math.Abs(ax)+math.Abs(by)+math.Abs(hp.C))
}

// Rounding error bound for one Eval, relative to the magnitude of its terms.
const evalEpsilon = 4 * 0x1p-52

// The solver's own violation test, for normalized half-planes only. The slack is
// measured in distance from the line and does not grow with p, so a candidate far
// out on the artificial box is still rejected by a line it misses by a small gap.
// Only rounding in the evaluation itself scales with p.
func exceeds(hp HalfPlane, p Point) bool {
	ax := hp.A * p.X
	by := hp.B * p.Y
	slack := Tolerance*math.Max(1, math.Abs(hp.C)) + evalEpsilon*(math.Abs(ax)+math.Abs(by))
	return ax+by-hp.C > slack
}

// Intersect the boundary lines of two half-planes. The second return value is
// false when the lines are parallel (or coincident), in which case there is no
// unique intersection point and the caller has to classify the pair itself.
func Intersect(hp1, hp2 HalfPlane) (Point, bool) {
	det := hp1.A*hp2.B - hp2.A*hp1.B
	if math.Abs(det) <= Tolerance*math.Hypot(hp1.A, hp1.B)*math.Hypot(hp2.A, hp2.B) {
		return Point{}, false
	}
	return Point{
		X: (hp1.C*hp2.B - hp2.C*hp1.B) / det,
		Y: (hp1.A*hp2.C - hp2.A*hp1.C) / det,
	}, true
}

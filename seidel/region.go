package seidel

import "math"

// A convex polygon. Regions are produced in counterclockwise order.
type Polygon struct {
	Points []Point
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Shoelace formula. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	area := 0.0
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += p.Cross(q)
	}
	return area / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsEmpty() bool {
	return len(poly.Points) < 3
}

// Check if every turn goes the same way. Collinear vertices are allowed.
func (poly Polygon) IsConvex() bool {
	if poly.IsEmpty() {
		return false
	}
	sign := 1.0
	if !poly.IsCCW() {
		sign = -1
	}
	n := len(poly.Points)
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, n)]
		r := poly.Points[CircularIndex(i+2, n)]
		turn := q.Sub(p).Cross(r.Sub(q))
		scale := q.Sub(p).Norm() * r.Sub(q).Norm()
		if sign*turn < -Tolerance*scale {
			return false
		}
	}
	return true
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// The edges of a convex polygon as constraints, one per edge, with the polygon on
// the inside. Clockwise polygons are reversed first. Zero length edges are skipped.
func (poly Polygon) HalfPlanes() []HalfPlane {
	if !poly.IsCCW() {
		poly = poly.Reverse()
	}
	var result []HalfPlane
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		d := q.Sub(p)
		if d.Norm() == 0 {
			continue
		}
		// Outward normal of a counterclockwise edge
		hp := HalfPlane{A: d.Y, B: -d.X}
		hp.C = hp.Eval(p)
		result = append(result, hp)
	}
	return result
}

// Check if p is inside the convex polygon, within tolerance.
func (poly Polygon) ContainsPoint(p Point) bool {
	return !poly.IsEmpty() && Check(poly.HalfPlanes(), p) == 0
}

// The feasible region of the constraints, clipped to the square |x|, |y| <= bound
// (in the caller's coordinates). Each constraint cuts the polygon down in turn
// (Sutherland-Hodgman against a single convex clip edge). The result is
// counterclockwise, and empty when the constraints are infeasible inside the
// square.
func Region(constraints []HalfPlane, bound float64) Polygon {
	if !(bound > 0) || !isFinite(bound) {
		fatalWrapf(ErrBadBound, "region bound %g", bound)
	}
	poly := Polygon{Points: []Point{
		{X: -bound, Y: -bound},
		{X: bound, Y: -bound},
		{X: bound, Y: bound},
		{X: -bound, Y: bound},
	}}
	for i, hp := range constraints {
		if !hp.IsFinite() {
			fatalWrapf(ErrNonFinite, "constraint %d (%v)", i, hp)
		}
		if hp.IsDegenerate() {
			if !Violates(hp, Point{}) {
				continue
			}
			return Polygon{}
		}
		poly = poly.clip(hp)
		if poly.IsEmpty() {
			return Polygon{}
		}
	}
	return poly
}

func (poly Polygon) clip(hp HalfPlane) Polygon {
	result := Polygon{}
	n := len(poly.Points)
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, n)]
		pIn, qIn := !Violates(hp, p), !Violates(hp, q)
		if pIn {
			result.push(p)
		}
		if pIn != qIn {
			// The edge crosses the boundary line
			ep, eq := hp.Eval(p)-hp.C, hp.Eval(q)-hp.C
			t := 0.0
			if ep != eq {
				// Tolerance can put both ends on the same side; stay on the edge
				t = math.Max(0, math.Min(1, ep/(ep-eq)))
			}
			result.push(p.Add(q.Sub(p).Mul(t)))
		}
	}
	if n := len(result.Points); n > 1 && samePoint(result.Points[0], result.Points[n-1]) {
		result.Points = result.Points[:n-1]
	}
	return result
}

// Append, skipping repeats of the last point.
func (poly *Polygon) push(p Point) {
	if n := len(poly.Points); n > 0 && samePoint(poly.Points[n-1], p) {
		return
	}
	poly.Points = append(poly.Points, p)
}

func samePoint(p, q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

package seidel

// Count the constraints that p violates, using the same tolerance as the solver.
// An Optimal solution always checks to 0.
func Check(constraints []HalfPlane, p Point) int {
	count := 0
	for _, hp := range constraints {
		if Violates(hp, p) {
			count++
		}
	}
	return count
}

// Indices of the constraints that p violates, in order.
func Violations(constraints []HalfPlane, p Point) []int {
	var result []int
	for i, hp := range constraints {
		if Violates(hp, p) {
			result = append(result, i)
		}
	}
	return result
}

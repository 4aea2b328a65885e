package stepper

import "math"

// logLinearFactor scales n·log₂(n) for the divide-and-conquer estimators.
const logLinearFactor = 1.5

// EstimateQuadratic returns n·(n−1), the loose upper bound shared by the
// quadratic family (bubble, selection, insertion).
func EstimateQuadratic(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1)
}

// EstimateLogLinear returns round(n·log₂(n)·1.5), the heuristic shared by
// quick, heap and merge sort. Inputs with fewer than two elements yield 0.
func EstimateLogLinear(n int) int {
	if n < 2 {
		return 0
	}

	return int(math.Round(float64(n) * math.Log2(float64(n)) * logLinearFactor))
}

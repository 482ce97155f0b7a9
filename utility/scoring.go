package utility

import "math"

// Aggregate combines factor scores by geometric mean
// Empty input scores 0; any score at or below 0 vetoes the whole list
func Aggregate(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	product := 1.0
	for _, s := range scores {
		if !(s > 0) {
			return 0
		}
		product *= s
	}
	return math.Pow(product, 1/float64(len(scores)))
}

// ApplyWeight scales a score by importance; the result is not clamped
func ApplyWeight(score, weight float64) float64 {
	return score * weight
}

package results

// Mean returns the arithmetic mean (sum/len) of vals.
func Mean(vals []float64) (float64, error) {
	if len(vals) == 0 {
		return 0, ErrEmptyDataset
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), nil
}

// MinMax returns the smallest and largest value in vals. It returns (0, 0)
// for an empty slice; callers that care should validate first.
func MinMax(vals []float64) (float64, float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

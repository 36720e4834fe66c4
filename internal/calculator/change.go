package calculator

import "errors"

// PercentChange returns the signed percent move from earlier to later.
// Requires a positive earlier close; zero or below means corrupt data.
func PercentChange(earlier, later float64) (float64, error) {
	if earlier <= 0 {
		return 0, errors.New("earlier close must be positive")
	}
	return ((later - earlier) / earlier) * 100, nil
}

// AverageAbs returns the mean of the absolute values of changes.
func AverageAbs(changes []float64) (float64, error) {
	if len(changes) == 0 {
		return 0, errors.New("changes must not be empty")
	}

	var sum float64
	for _, c := range changes {
		if c < 0 {
			c = -c
		}
		sum += c
	}
	return sum / float64(len(changes)), nil
}

package stats

import (
	"fmt"
	"math"

	"github.com/concordlabs/concord/sample"
)

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// Variance returns the uncorrected (population, divisor n) variance of values.
// It is 0 for n <= 1 and for constant series.
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}

	return sum / float64(len(values))
}

// StdDev returns the uncorrected standard deviation, sqrt(Variance(values)).
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Covariance returns the uncorrected (divisor n) covariance of x and y.
// The slices must have equal length; it is 0 for n <= 1.
func Covariance(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}

	meanX := Mean(x)
	meanY := Mean(y)
	sum := 0.0
	for i := range x {
		sum += (x[i] - meanX) * (y[i] - meanY)
	}

	return sum / float64(len(x))
}

// Pearson returns the Pearson correlation coefficient of x and y.
//
// Returns:
//   - float64: Correlation in [-1, 1]
//   - error: Wrapped sample.ErrDegenerateInput when either series has zero
//     standard deviation
func Pearson(x, y []float64) (float64, error) {
	sx := StdDev(x)
	sy := StdDev(y)
	if sx == 0 || sy == 0 {
		return 0, fmt.Errorf("correlation undefined for constant series: %w", sample.ErrDegenerateInput)
	}

	return Covariance(x, y) / (sx * sy), nil
}

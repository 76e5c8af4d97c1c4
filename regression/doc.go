// Package regression provides the four closed-form linear estimators used by
// the agreement analysis: vertical and horizontal ordinary least squares,
// major axis, and standardized major axis.
//
// Each estimator expresses the fitted relationship in the same orientation,
// Predicted = Slope*Observed + Intercept, regardless of which variable it
// treats as error-free:
//
//   - ols-vertical fits Predicted on Observed (vertical residuals).
//   - ols-horizontal fits Observed on Predicted, then inverts the result.
//   - major-axis minimizes perpendicular distance, assuming equal error
//     variance in both variables.
//   - sma scales both variables to unit variance before fitting, making the
//     slope the (correlation-signed) ratio of standard deviations.
//
// All fits are closed-form with no iterative solving, operate in double
// precision, and never mutate the input sample:
//
//	line, err := regression.Fit(regression.KindSMA, s)
//	if err != nil {
//	    // errors.Is(err, sample.ErrDegenerateInput) for constant series
//	}
//	fitted := line.Predict(obs)
package regression

package regression

import (
	"fmt"
	"math"

	"github.com/concordlabs/concord/sample"
	"github.com/concordlabs/concord/stats"
)

// Fit fits a line of the requested kind to the sample.
//
// All four estimators are closed-form and never mutate the sample. Each
// returns a wrapped sample.ErrDegenerateInput when its formula would divide
// by a zero variance, standard deviation, or covariance.
func Fit(kind Kind, s *sample.Sample) (Line, error) {
	switch kind {
	case KindOLSVertical:
		return FitOLSVertical(s)
	case KindOLSHorizontal:
		return FitOLSHorizontal(s)
	case KindMajorAxis:
		return FitMajorAxis(s)
	case KindSMA:
		return FitSMA(s)
	default:
		return Line{}, fmt.Errorf("unknown estimator kind: %d", kind)
	}
}

// FitOLSVertical fits Predicted on Observed, minimizing squared vertical
// residuals: slope = Cov(O,P)/Var(O).
func FitOLSVertical(s *sample.Sample) (Line, error) {
	varO := stats.Variance(s.Observed())
	if varO == 0 {
		return Line{}, fmt.Errorf("ols-vertical slope undefined for constant observed series: %w", sample.ErrDegenerateInput)
	}

	slope := stats.Covariance(s.Observed(), s.Predicted()) / varO

	return newLine(KindOLSVertical, slope, s), nil
}

// FitOLSHorizontal fits Observed on Predicted and re-expresses the result as
// Predicted = slope*Observed + intercept: slope = Var(P)/Cov(O,P).
func FitOLSHorizontal(s *sample.Sample) (Line, error) {
	cov := stats.Covariance(s.Observed(), s.Predicted())
	if cov == 0 {
		return Line{}, fmt.Errorf("ols-horizontal slope undefined for zero covariance: %w", sample.ErrDegenerateInput)
	}

	slope := stats.Variance(s.Predicted()) / cov

	return newLine(KindOLSHorizontal, slope, s), nil
}

// FitMajorAxis fits the major axis, minimizing perpendicular distance under
// the equal error-variance assumption:
//
//	slope = [Var(P) - Var(O) + sqrt((Var(P)-Var(O))^2 + 4*Cov^2)] / (2*Cov)
func FitMajorAxis(s *sample.Sample) (Line, error) {
	cov := stats.Covariance(s.Observed(), s.Predicted())
	if cov == 0 {
		return Line{}, fmt.Errorf("major-axis slope undefined for zero covariance: %w", sample.ErrDegenerateInput)
	}

	varO := stats.Variance(s.Observed())
	varP := stats.Variance(s.Predicted())
	diff := varP - varO
	slope := (diff + math.Sqrt(diff*diff+4*cov*cov)) / (2 * cov)

	return newLine(KindMajorAxis, slope, s), nil
}

// FitSMA fits the standardized major axis: |slope| = StdDev(P)/StdDev(O),
// signed to match the sign of the correlation (equivalently, of the
// OLS-vertical slope). Standard deviation ratios are always non-negative, so
// the sign must be applied explicitly; with zero covariance there is no
// defensible sign and the fit reports degenerate input instead of guessing.
func FitSMA(s *sample.Sample) (Line, error) {
	stdO := stats.StdDev(s.Observed())
	stdP := stats.StdDev(s.Predicted())
	if stdO == 0 || stdP == 0 {
		return Line{}, fmt.Errorf("sma slope undefined for constant series: %w", sample.ErrDegenerateInput)
	}

	cov := stats.Covariance(s.Observed(), s.Predicted())
	if cov == 0 {
		return Line{}, fmt.Errorf("sma slope sign undefined for zero covariance: %w", sample.ErrDegenerateInput)
	}

	slope := math.Copysign(stdP/stdO, cov)

	return newLine(KindSMA, slope, s), nil
}

// FitAll fits all four estimators to the sample and returns them keyed by
// kind. The first failing fit aborts; callers that tolerate partial results
// fit the kinds individually.
func FitAll(s *sample.Sample) (map[Kind]Line, error) {
	lines := make(map[Kind]Line, 4)
	for _, kind := range Kinds() {
		line, err := Fit(kind, s)
		if err != nil {
			return nil, fmt.Errorf("fitting %s: %w", kind, err)
		}
		lines[kind] = line
	}

	return lines, nil
}

// newLine completes a fit with the shared intercept formula
// mean(P) - slope*mean(O).
func newLine(kind Kind, slope float64, s *sample.Sample) Line {
	intercept := stats.Mean(s.Predicted()) - slope*stats.Mean(s.Observed())

	return Line{Kind: kind, Slope: slope, Intercept: intercept}
}

package regression

import (
	"fmt"
	"strings"
)

// Kind identifies one of the four linear estimators.
type Kind int

const (
	// KindOLSVertical is ordinary least squares of Predicted on Observed,
	// minimizing squared vertical residuals.
	KindOLSVertical Kind = iota
	// KindOLSHorizontal is ordinary least squares of Observed on Predicted,
	// re-expressed as Predicted = slope*Observed + intercept.
	KindOLSHorizontal
	// KindMajorAxis minimizes perpendicular distance under an equal
	// error-variance assumption in both variables.
	KindMajorAxis
	// KindSMA is the standardized (scale-invariant) major axis fit.
	KindSMA
)

// kindNames maps Kind to their string representations.
var kindNames = map[Kind]string{
	KindOLSVertical:   "ols-vertical",
	KindOLSHorizontal: "ols-horizontal",
	KindMajorAxis:     "major-axis",
	KindSMA:           "sma",
}

// String returns the string representation of the estimator kind.
func (k Kind) String() string {
	if name, exists := kindNames[k]; exists {
		return name
	}

	return "unknown"
}

// kindFromString maps string names to Kind.
var kindFromString = map[string]Kind{
	"ols-vertical":   KindOLSVertical,
	"ols-horizontal": KindOLSHorizontal,
	"major-axis":     KindMajorAxis,
	"sma":            KindSMA,
}

// KindFromString returns the Kind for a given name (case-insensitive).
// Returns Kind(-1) for unknown names.
func KindFromString(name string) Kind {
	if kind, exists := kindFromString[strings.ToLower(name)]; exists {
		return kind
	}

	return Kind(-1)
}

// Kinds returns all four estimator kinds in their canonical order.
func Kinds() []Kind {
	return []Kind{KindOLSVertical, KindOLSHorizontal, KindMajorAxis, KindSMA}
}

// Line is an immutable fitted relationship Predicted = Slope*Observed + Intercept.
type Line struct {
	// Kind is the estimator that produced the line.
	Kind Kind
	// Slope is the fitted slope.
	Slope float64
	// Intercept is the fitted intercept.
	Intercept float64
}

// Predict returns the fitted predicted value for an observed value.
func (l Line) Predict(observed float64) float64 {
	return l.Slope*observed + l.Intercept
}

// Residual returns the vertical residual predicted - Predict(observed).
func (l Line) Residual(observed, predicted float64) float64 {
	return predicted - l.Predict(observed)
}

// Invert returns the observed value the line maps to the given predicted
// value, (predicted - Intercept) / Slope. A zero slope yields +-Inf or NaN;
// OLS-vertical is the only fit that can produce one, on zero covariance.
func (l Line) Invert(predicted float64) float64 {
	return (predicted - l.Intercept) / l.Slope
}

// String returns a human-readable formula for the line.
func (l Line) String() string {
	return fmt.Sprintf("Line{Kind: %s, Formula: P = %.4f*O + %.4f}", l.Kind, l.Slope, l.Intercept)
}

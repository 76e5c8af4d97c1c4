package agreement

import (
	"fmt"
	"math"
	"strings"

	"github.com/concordlabs/concord/regression"
	"github.com/concordlabs/concord/sample"
)

// Scheme identifies one of the three error-decomposition schemes. Each
// partitions the total squared error against a different reference line.
type Scheme int

const (
	// SchemeOLS is Willmott's decomposition against the vertical OLS line.
	SchemeOLS Scheme = iota
	// SchemeMajorAxis is the Duveiller et al. decomposition against the
	// major-axis line, with perpendicular point distances.
	SchemeMajorAxis
	// SchemeSMA is the Ji & Gallo decomposition against the standardized
	// major-axis line and its inverse relation.
	SchemeSMA
)

// schemeNames maps Scheme to their string representations.
var schemeNames = map[Scheme]string{
	SchemeOLS:       "ols",
	SchemeMajorAxis: "major-axis",
	SchemeSMA:       "sma",
}

// String returns the string representation of the scheme.
func (sc Scheme) String() string {
	if name, exists := schemeNames[sc]; exists {
		return name
	}

	return "unknown"
}

// SchemeFromString returns the Scheme for a given name (case-insensitive).
// Returns Scheme(-1) for unknown names.
func SchemeFromString(name string) Scheme {
	for scheme, n := range schemeNames {
		if n == strings.ToLower(name) {
			return scheme
		}
	}

	return Scheme(-1)
}

// Schemes returns the three decomposition schemes in canonical order.
func Schemes() []Scheme {
	return []Scheme{SchemeOLS, SchemeMajorAxis, SchemeSMA}
}

// Decomposition is one scheme's partition of total squared error into
// per-point unsystematic (precision) and systematic (accuracy) terms.
//
// Unsystematic and Systematic are aligned by index with the input sample.
// Whether the two sums add back to TSS depends on the scheme: the OLS and
// SMA partitions are exactly additive, the major-axis one generally is not.
// Residual surfaces the gap instead of hiding it.
type Decomposition struct {
	// Scheme is the decomposition scheme that produced this partition.
	Scheme Scheme
	// Line is the reference line of the scheme.
	Line regression.Line
	// Unsystematic holds the per-point precision (random) terms.
	Unsystematic []float64
	// Systematic holds the per-point accuracy (bias) terms.
	Systematic []float64
	// SumUnsystematic is the sum over Unsystematic.
	SumUnsystematic float64
	// SumSystematic is the sum over Systematic.
	SumSystematic float64
	// TSS is the total sum of squared observed-predicted differences.
	TSS float64
}

// Residual returns TSS - (SumUnsystematic + SumSystematic), the part of the
// total squared error the scheme's partition does not account for.
func (d *Decomposition) Residual() float64 {
	return d.TSS - (d.SumUnsystematic + d.SumSystematic)
}

// Additive reports whether the partition adds back to TSS within a relative
// tolerance of 1e-9.
func (d *Decomposition) Additive() bool {
	if d.TSS == 0 {
		return d.SumUnsystematic+d.SumSystematic == 0
	}

	return math.Abs(d.Residual()) <= 1e-9*d.TSS
}

// String returns a short human-readable summary of the decomposition.
func (d *Decomposition) String() string {
	return fmt.Sprintf("Decomposition{Scheme: %s, SUD: %.4f, SSD: %.4f, TSS: %.4f}",
		d.Scheme, d.SumUnsystematic, d.SumSystematic, d.TSS)
}

// Decompose partitions the sample's total squared error under the given
// scheme. The sample is never mutated.
//
// Returns:
//   - *Decomposition: Per-point and aggregate partition terms
//   - error: Wrapped sample.ErrDegenerateInput when the scheme's reference
//     line cannot be fitted
func Decompose(s *sample.Sample, scheme Scheme) (*Decomposition, error) {
	switch scheme {
	case SchemeOLS:
		return decomposeOLS(s)
	case SchemeMajorAxis:
		return decomposeMajorAxis(s)
	case SchemeSMA:
		return decomposeSMA(s)
	default:
		return nil, fmt.Errorf("unknown decomposition scheme: %d", scheme)
	}
}

// decomposeOLS implements Willmott's partition: against the vertical OLS
// fitted values, UD_i = (fit_i - P_i)^2 and SD_i = (fit_i - O_i)^2. The OLS
// normal equations zero the cross term, so this partition is exactly
// additive.
func decomposeOLS(s *sample.Sample) (*Decomposition, error) {
	line, err := regression.FitOLSVertical(s)
	if err != nil {
		return nil, err
	}

	d := newDecomposition(SchemeOLS, line, s)
	observed, predicted := s.Observed(), s.Predicted()
	for i := range observed {
		fit := line.Predict(observed[i])
		d.add(i, square(fit-predicted[i]), square(fit-observed[i]))
	}

	return d, nil
}

// decomposeMajorAxis implements the Duveiller et al. partition: the
// unsystematic term is twice the squared perpendicular distance to the
// major-axis line, the systematic term the squared offset of the fitted value
// from the 1:1 line. The two sums do not add back to TSS in general; that is
// a documented property of the scheme, surfaced through Residual.
func decomposeMajorAxis(s *sample.Sample) (*Decomposition, error) {
	line, err := regression.FitMajorAxis(s)
	if err != nil {
		return nil, err
	}

	d := newDecomposition(SchemeMajorAxis, line, s)
	observed, predicted := s.Observed(), s.Predicted()
	norm := math.Sqrt(line.Slope*line.Slope + 1)
	for i := range observed {
		fit := line.Predict(observed[i])
		h := math.Abs(predicted[i]-fit) / norm
		d.add(i, 2*h*h, square(fit-observed[i]))
	}

	return d, nil
}

// decomposeSMA implements the Ji & Gallo partition: the unsystematic term is
// the product of absolute offsets from the SMA line along both axes
// (inverting the line for the observed direction), the systematic term the
// squared offset of the fitted value from the 1:1 line. The sums satisfy
// SUD + SSD == TSS exactly.
func decomposeSMA(s *sample.Sample) (*Decomposition, error) {
	line, err := regression.FitSMA(s)
	if err != nil {
		return nil, err
	}

	d := newDecomposition(SchemeSMA, line, s)
	observed, predicted := s.Observed(), s.Predicted()
	for i := range observed {
		fit := line.Predict(observed[i])
		inv := line.Invert(predicted[i])
		ud := math.Abs(observed[i]-inv) * math.Abs(predicted[i]-fit)
		d.add(i, ud, square(fit-observed[i]))
	}

	return d, nil
}

func newDecomposition(scheme Scheme, line regression.Line, s *sample.Sample) *Decomposition {
	observed, predicted := s.Observed(), s.Predicted()
	tss := 0.0
	for i := range observed {
		tss += square(observed[i] - predicted[i])
	}

	return &Decomposition{
		Scheme:       scheme,
		Line:         line,
		Unsystematic: make([]float64, len(observed)),
		Systematic:   make([]float64, len(observed)),
		TSS:          tss,
	}
}

func (d *Decomposition) add(i int, unsystematic, systematic float64) {
	d.Unsystematic[i] = unsystematic
	d.Systematic[i] = systematic
	d.SumUnsystematic += unsystematic
	d.SumSystematic += systematic
}

func square(v float64) float64 { return v * v }

package agreement

import (
	"fmt"

	"github.com/concordlabs/concord/internal/options"
	"github.com/concordlabs/concord/regression"
	"github.com/concordlabs/concord/sample"
)

// Report is the complete analysis of one sample: aggregate metrics, the four
// fitted regression lines, and the requested per-point decompositions.
type Report struct {
	// Label is the label of the analyzed sample.
	Label string
	// Metrics holds the aggregate metric set.
	Metrics *Metrics
	// Lines holds the fitted regression lines keyed by estimator kind.
	Lines map[regression.Kind]regression.Line
	// Decompositions holds the computed partitions keyed by scheme. Empty
	// when WithoutDecompositions was given.
	Decompositions map[Scheme]*Decomposition
	// Precision is the display rounding applied by Set.
	Precision int
}

// Set returns the report's metric set rounded to the report precision.
func (r *Report) Set() map[string]float64 {
	return r.Metrics.Set(r.Precision)
}

// String returns a short human-readable summary of the report.
func (r *Report) String() string {
	return fmt.Sprintf("Report{Label: %s, %s}", r.Label, r.Metrics)
}

// Analyze runs the full agreement pipeline on one sample: validate, fit all
// four regression lines, run the decomposition schemes, and compute the
// aggregate metrics with their identity cross-checks.
//
// Returns:
//   - *Report: The complete analysis
//   - error: Wrapped sample.ErrDegenerateInput when either series has zero
//     variance, or an option validation error
func Analyze(s *sample.Sample, opts ...Option) (*Report, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	metrics, err := Compute(s)
	if err != nil {
		return nil, err
	}

	lines, err := regression.FitAll(s)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Label:          s.Label(),
		Metrics:        metrics,
		Lines:          lines,
		Decompositions: make(map[Scheme]*Decomposition, len(cfg.schemes)),
		Precision:      cfg.precision,
	}

	if cfg.decomposition {
		for _, scheme := range cfg.schemes {
			d, err := Decompose(s, scheme)
			if err != nil {
				return nil, fmt.Errorf("decomposing %s: %w", scheme, err)
			}
			report.Decompositions[scheme] = d
		}

		// The SMA partition is exactly additive; a gap here means the
		// computation itself went wrong, not the data.
		if d, ok := report.Decompositions[SchemeSMA]; ok && !d.Additive() {
			return nil, fmt.Errorf("sma decomposition residual %v: computation defect", d.Residual())
		}
	}

	return report, nil
}

// BatchResult is the outcome of analyzing a batch of independent samples.
// Failures are isolated per sample: a degenerate dataset never blocks the
// others.
type BatchResult struct {
	// Reports holds the successful analyses keyed by sample label.
	Reports map[string]*Report
	// Errors holds the per-sample failures keyed by sample label.
	Errors map[string]error
}

// AnalyzeBatch analyzes each sample in isolation. Samples may be processed
// in any order; they share no state.
func AnalyzeBatch(samples []*sample.Sample, opts ...Option) *BatchResult {
	result := &BatchResult{
		Reports: make(map[string]*Report, len(samples)),
		Errors:  make(map[string]error),
	}

	for _, s := range samples {
		report, err := Analyze(s, opts...)
		if err != nil {
			result.Errors[s.Label()] = err
			continue
		}
		result.Reports[s.Label()] = report
	}

	return result
}

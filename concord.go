// Package concord measures the agreement between paired observed and
// predicted series: how far apart they are, and whether the disagreement is
// systematic (the model is biased) or unsystematic (the model is noisy).
//
// # Core Features
//
//   - Aggregate metrics: bias, MSE, RMSE, Pearson r, Lin's concordance (CCC)
//   - Four regression estimators: OLS vertical, OLS horizontal, major axis,
//     and standardized major axis (SMA)
//   - Three per-point error decompositions (OLS, major axis, SMA), each
//     splitting squared error into systematic and unsystematic shares
//   - Theil partial inequalities partitioning total error into bias,
//     consistency, and unexplained-variance percentages
//   - CSV ingestion, a built-in reference dataset, and a compact binary
//     archive format with optional compression (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Analyzing one sample:
//
//	import "github.com/concordlabs/concord"
//
//	report, err := concord.Analyze("wheat-grain",
//	    []float64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
//	    []float64{4, 5.5, 2.5, 4.5, 8, 5, 6, 10, 7.5, 8.5},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Metrics.RMSE, report.Metrics.CCC)
//
// Analyzing a whole dataset:
//
//	result := concord.AnalyzeSet(dataset.Builtin())
//	for label, report := range result.Reports {
//	    fmt.Println(label, report.Metrics)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the agreement
// package, simplifying the most common use cases. For fine-grained control
// over schemes, precision, and per-point output, use the agreement,
// regression, and dataset packages directly.
package concord

import (
	"github.com/concordlabs/concord/agreement"
	"github.com/concordlabs/concord/dataset"
	"github.com/concordlabs/concord/internal/hash"
	"github.com/concordlabs/concord/sample"
)

// Analyze builds a sample from the label and series and runs the full
// agreement pipeline on it.
//
// Parameters:
//   - label: The sample label, used in reports and as the archive key
//   - observed: The reference series
//   - predicted: The series under evaluation, aligned by index with observed
//   - opts: Optional configuration (see agreement.WithPrecision,
//     agreement.WithSchemes, agreement.WithoutDecompositions)
//
// Returns:
//   - *agreement.Report: The complete analysis
//   - error: Wrapped sample.ErrLengthMismatch, sample.ErrInsufficientData, or
//     sample.ErrDegenerateInput when the input cannot be analyzed
//
// Example:
//
//	report, err := concord.Analyze("run-42", observed, predicted,
//	    agreement.WithPrecision(4),
//	)
func Analyze(label string, observed, predicted []float64, opts ...agreement.Option) (*agreement.Report, error) {
	s, err := sample.New(label, observed, predicted)
	if err != nil {
		return nil, err
	}

	return agreement.Analyze(s, opts...)
}

// AnalyzeSet analyzes every sample in the set. Failures are isolated per
// sample and reported in the result's Errors map; one degenerate sample never
// blocks the rest.
func AnalyzeSet(set *dataset.Set, opts ...agreement.Option) *agreement.BatchResult {
	return agreement.AnalyzeBatch(set.Samples(), opts...)
}

// SampleID converts a sample label to its 64-bit hash identifier.
//
// The hash is deterministic, so the same label always maps to the same ID
// across processes and archives. Use it when an external system needs a
// fixed-size key for a sample.
func SampleID(label string) uint64 {
	return hash.ID(label)
}

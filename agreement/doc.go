// Package agreement computes agreement and error-decomposition statistics
// between paired observed and predicted series.
//
// The pipeline is flat and stateless: validate the sample, compute primitive
// statistics, fit the four regression estimators, partition the total squared
// error under up to three decomposition schemes, and derive the aggregate
// metric set.
//
// # Basic Usage
//
//	s, err := sample.New("wheat-trial", observed, predicted)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := agreement.Analyze(s, agreement.WithPrecision(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Set()["CCC"], report.Set()["RMSE"])
//
// # Decomposition Schemes
//
// Three parallel schemes partition total squared error into an unsystematic
// (precision) and a systematic (accuracy) term, each against a different
// reference line:
//
//   - ols (Willmott): vertical OLS fitted values; exactly additive.
//   - major-axis (Duveiller et al.): perpendicular distances to the major
//     axis; the sums do not add back to TSS in general, which Residual
//     surfaces rather than corrects.
//   - sma (Ji & Gallo): offsets from the standardized major axis in both
//     directions; exactly additive, and the source of the MLA/MLP split of
//     MSE.
//
// # Identities
//
// The metric set satisfies, exactly up to floating-point tolerance:
//
//	Ub + Uc + Ue == 100
//	MLA == SDSD + SB      MLP == LCS      MLA + MLP == MSE
//	PLA == Ub + Uc        PLP == Ue       PAB + PPB == PLA
//
// These are cross-checked by the package tests; Analyze additionally verifies
// the SMA additivity and the CCC range at runtime, treating violations as
// computation defects rather than data errors.
//
// # Error Handling
//
// Samples with fewer than two points or mismatched lengths are rejected at
// construction by the sample package. Zero-variance series and zero
// covariance leave individual formulas undefined; those fail with a wrapped
// sample.ErrDegenerateInput. AnalyzeBatch isolates such failures per sample.
package agreement

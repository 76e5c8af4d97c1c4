package agreement_test

import (
	"fmt"
	"log"

	"github.com/concordlabs/concord/agreement"
	"github.com/concordlabs/concord/regression"
	"github.com/concordlabs/concord/sample"
)

// ExampleAnalyze runs the full agreement pipeline on the Ji & Gallo (2006)
// illustrative dataset.
func ExampleAnalyze() {
	s, err := sample.New("ji-gallo-2006",
		[]float64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		[]float64{4, 5.5, 2.5, 4.5, 8, 5, 6, 10, 7.5, 8.5})
	if err != nil {
		log.Fatal(err)
	}

	report, err := agreement.Analyze(s)
	if err != nil {
		log.Fatal(err)
	}

	set := report.Set()
	fmt.Printf("RMSE: %.2f\n", set["RMSE"])
	fmt.Printf("r: %.2f\n", set["r"])
	fmt.Printf("CCC: %.2f\n", set["CCC"])
	fmt.Printf("MLA: %.2f MLP: %.2f\n", set["MLA"], set["MLP"])
	fmt.Printf("SMA: %s\n", report.Lines[regression.KindSMA])

	// Output:
	// RMSE: 1.96
	// r: 0.74
	// CCC: 0.71
	// MLA: 0.59 MLP: 3.24
	// SMA: Line{Kind: sma, Formula: P = 0.7630*O + 1.1907}
}

// ExampleDecompose partitions the total squared error under the SMA scheme.
func ExampleDecompose() {
	s, err := sample.New("ji-gallo-2006",
		[]float64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		[]float64{4, 5.5, 2.5, 4.5, 8, 5, 6, 10, 7.5, 8.5})
	if err != nil {
		log.Fatal(err)
	}

	d, err := agreement.Decompose(s, agreement.SchemeSMA)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("unsystematic: %.2f\n", d.SumUnsystematic)
	fmt.Printf("systematic: %.2f\n", d.SumSystematic)
	fmt.Printf("TSS: %.2f additive: %v\n", d.TSS, d.Additive())

	// Output:
	// unsystematic: 32.39
	// systematic: 5.86
	// TSS: 38.25 additive: true
}

// ExampleAnalyzeBatch shows how per-sample failures are isolated.
func ExampleAnalyzeBatch() {
	good := sample.MustNew("trial-a",
		[]float64{1, 2, 3, 4, 5}, []float64{1.1, 2.3, 2.8, 4.2, 4.9})
	degenerate := sample.MustNew("trial-b",
		[]float64{1, 2, 3, 4, 5}, []float64{3, 3, 3, 3, 3})

	result := agreement.AnalyzeBatch([]*sample.Sample{good, degenerate})

	fmt.Printf("analyzed: %d failed: %d\n", len(result.Reports), len(result.Errors))

	// Output:
	// analyzed: 1 failed: 1
}

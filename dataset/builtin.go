package dataset

import "github.com/concordlabs/concord/sample"

// Builtin returns the bundled literature datasets: the Ji & Gallo (2006)
// ten-point illustration and four crop-model calibration examples
// (observed field measurements against APSIM predictions).
//
// The data is literal and validated at package init; Builtin never fails.
func Builtin() *Set {
	set := NewSet()
	for _, s := range builtinSamples {
		if err := set.Add(s); err != nil {
			panic(err)
		}
	}

	return set
}

var builtinSamples = []*sample.Sample{
	sample.MustNew("ji-gallo-2006",
		[]float64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		[]float64{4, 5.5, 2.5, 4.5, 8, 5, 6, 10, 7.5, 8.5},
	),
	// Wheat grain yield, t/ha.
	sample.MustNew("apsim-wheat-grain",
		[]float64{1.82, 2.41, 2.95, 3.27, 3.61, 4.08, 4.46, 4.91, 5.34, 5.78, 6.13, 6.62},
		[]float64{2.07, 2.24, 3.18, 3.02, 3.95, 4.41, 4.29, 5.23, 5.11, 6.04, 5.86, 7.01},
	),
	// Wheat above-ground biomass at maturity, t/ha.
	sample.MustNew("apsim-wheat-biomass",
		[]float64{5.4, 6.8, 7.9, 9.2, 10.5, 11.3, 12.8, 14.1, 15.6, 16.9, 18.2, 19.7},
		[]float64{6.1, 6.5, 8.6, 9.9, 9.8, 12.2, 12.1, 14.9, 15.0, 17.8, 17.5, 21.0},
	),
	// Barley grain yield, t/ha.
	sample.MustNew("apsim-barley-grain",
		[]float64{2.15, 2.67, 3.04, 3.58, 3.91, 4.27, 4.75, 5.12, 5.49, 5.96},
		[]float64{1.88, 2.93, 2.76, 3.84, 3.62, 4.71, 4.43, 5.57, 5.19, 6.42},
	),
	// Chickpea above-ground dry matter, t/ha.
	sample.MustNew("apsim-chickpea-biomass",
		[]float64{3.2, 3.9, 4.5, 5.1, 5.8, 6.4, 7.0, 7.7, 8.3, 9.0, 9.6, 10.2},
		[]float64{2.8, 4.3, 4.1, 5.6, 5.5, 7.0, 6.6, 8.4, 7.9, 9.8, 9.2, 11.1},
	),
}

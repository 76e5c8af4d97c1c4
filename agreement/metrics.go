package agreement

import (
	"fmt"
	"math"

	"github.com/concordlabs/concord/sample"
	"github.com/concordlabs/concord/stats"
)

// Metrics is the full aggregate metric set for one sample. All fields are
// pure functions of the sample; a Metrics value is never mutated after
// Compute returns it.
//
// For a sample in perfect agreement (TSS == 0) the percentage fields (Ub,
// Uc, Ue, PLA, PLP, PAB, PPB) are NaN: their shared MSE divisor is zero and
// there is no error to apportion. Set skips NaN entries.
type Metrics struct {
	// N is the number of paired points.
	N int
	// MBE is the signed mean bias, mean(P) - mean(O).
	MBE float64
	// TSS is the total sum of squared observed-predicted differences.
	TSS float64
	// MSE is the mean squared error, TSS/n.
	MSE float64
	// RMSE is the root mean squared error.
	RMSE float64
	// R is the Pearson correlation of observed and predicted.
	R float64
	// Xa is Lin's accuracy component, in (0, 1].
	Xa float64
	// CCC is Lin's concordance correlation coefficient, R*Xa, in [-1, 1].
	CCC float64
	// MLA is the mean lack of accuracy: the systematic share of MSE under
	// the SMA decomposition.
	MLA float64
	// MLP is the mean lack of precision: the unsystematic share of MSE under
	// the SMA decomposition. MLA + MLP == MSE.
	MLP float64
	// LCS is the Kobayashi-Salam lack-of-correlation term,
	// 2*StdDev(O)*StdDev(P)*(1-R). Identity: MLP == LCS.
	LCS float64
	// SDSD is the squared difference of standard deviations.
	SDSD float64
	// SB is the squared bias, (mean(O)-mean(P))^2. Identity: MLA == SDSD + SB.
	SB float64
	// Ub is Theil's bias share of TSS, percent.
	Ub float64
	// Uc is Theil's consistency (proportional-bias) share of TSS, percent.
	Uc float64
	// Ue is Theil's unexplained-variance share of TSS, percent.
	// Ub + Uc + Ue == 100.
	Ue float64
	// PLA is the percentage lack of accuracy, 100*MLA/MSE. PLA == Ub + Uc.
	PLA float64
	// PLP is the percentage lack of precision, 100*MLP/MSE. PLP == Ue.
	PLP float64
	// PAB is the percentage additive bias, 100*SB/MSE.
	PAB float64
	// PPB is the percentage proportional bias, 100*SDSD/MSE.
	// PAB + PPB == PLA.
	PPB float64
}

// Compute derives the aggregate metric set from the sample.
//
// Returns:
//   - *Metrics: The computed metrics
//   - error: Wrapped sample.ErrDegenerateInput when either series has zero
//     variance, which leaves correlation, Xa, CCC and the SMA-derived terms
//     undefined
func Compute(s *sample.Sample) (*Metrics, error) {
	observed, predicted := s.Observed(), s.Predicted()
	n := float64(s.Len())

	stdO := stats.StdDev(observed)
	stdP := stats.StdDev(predicted)
	if stdO == 0 || stdP == 0 {
		return nil, fmt.Errorf("aggregate metrics undefined for zero-variance series: %w", sample.ErrDegenerateInput)
	}

	r, err := stats.Pearson(observed, predicted)
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		N:   s.Len(),
		MBE: stats.Mean(predicted) - stats.Mean(observed),
		R:   r,
	}
	for i := range observed {
		d := observed[i] - predicted[i]
		m.TSS += d * d
	}
	m.MSE = m.TSS / n
	m.RMSE = math.Sqrt(m.MSE)

	m.Xa = 2 / (stdP/stdO + stdO/stdP + m.MBE*m.MBE/(stdO*stdP))
	m.CCC = r * m.Xa

	m.LCS = 2 * stdO * stdP * (1 - r)
	m.SDSD = square(stdP - stdO)
	m.SB = square(m.MBE)

	// MLA and MLP are defined through the SMA partition; the Kobayashi-Salam
	// terms above are their closed-form equivalents (MLA == SDSD+SB,
	// MLP == LCS), cross-checked in tests.
	sma, err := Decompose(s, SchemeSMA)
	if err != nil {
		return nil, err
	}
	m.MLA = sma.SumSystematic / n
	m.MLP = sma.SumUnsystematic / n

	if m.TSS > 0 {
		m.Ub = 100 * n * m.SB / m.TSS
		m.Uc = 100 * n * m.SDSD / m.TSS
		m.Ue = 100 * n * m.LCS / m.TSS
		m.PLA = 100 * m.MLA / m.MSE
		m.PLP = 100 * m.MLP / m.MSE
		m.PAB = 100 * m.SB / m.MSE
		m.PPB = 100 * m.SDSD / m.MSE
	} else {
		m.Ub, m.Uc, m.Ue = math.NaN(), math.NaN(), math.NaN()
		m.PLA, m.PLP = math.NaN(), math.NaN()
		m.PAB, m.PPB = math.NaN(), math.NaN()
	}

	if m.CCC < -1-ccTolerance || m.CCC > 1+ccTolerance {
		return nil, fmt.Errorf("concordance correlation %v out of [-1, 1]: computation defect", m.CCC)
	}

	return m, nil
}

// ccTolerance absorbs floating-point drift at the CCC range boundaries.
const ccTolerance = 1e-12

// metricOrder fixes the display order of Set keys.
var metricOrder = []string{
	"MBE", "MSE", "RMSE", "r", "Xa", "CCC",
	"MLA", "MLP", "LCS", "SDSD", "SB",
	"Ub", "Uc", "Ue", "PLA", "PLP", "PAB", "PPB",
}

// Set returns the metrics as a name-to-value mapping, rounded half away from
// zero to the given number of decimal places. NaN entries (the percentage
// terms of a perfect-agreement sample) are omitted.
func (m *Metrics) Set(precision int) map[string]float64 {
	values := map[string]float64{
		"MBE": m.MBE, "MSE": m.MSE, "RMSE": m.RMSE, "r": m.R,
		"Xa": m.Xa, "CCC": m.CCC,
		"MLA": m.MLA, "MLP": m.MLP, "LCS": m.LCS, "SDSD": m.SDSD, "SB": m.SB,
		"Ub": m.Ub, "Uc": m.Uc, "Ue": m.Ue,
		"PLA": m.PLA, "PLP": m.PLP, "PAB": m.PAB, "PPB": m.PPB,
	}

	set := make(map[string]float64, len(values))
	for name, v := range values {
		if math.IsNaN(v) {
			continue
		}
		set[name] = Round(v, precision)
	}

	return set
}

// MetricNames returns the metric names of Set in their canonical display
// order.
func MetricNames() []string {
	names := make([]string, len(metricOrder))
	copy(names, metricOrder)

	return names
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))

	return math.Round(v*scale) / scale
}

// String returns a compact summary of the headline metrics.
func (m *Metrics) String() string {
	return fmt.Sprintf("Metrics{N: %d, RMSE: %.4f, r: %.4f, CCC: %.4f, MLA: %.4f, MLP: %.4f}",
		m.N, m.RMSE, m.R, m.CCC, m.MLA, m.MLP)
}

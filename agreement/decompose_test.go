package agreement

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concordlabs/concord/sample"
)

func TestDecompose_ReferenceSums(t *testing.T) {
	s := mustSample(t, "ji-gallo-2006", testObserved, testPredicted)

	tests := []struct {
		scheme       Scheme
		unsystematic float64
		systematic   float64
	}{
		{SchemeOLS, 21.533333333333335, 16.71666666666667},
		{SchemeMajorAxis, 30.871722959051667, 8.794550091562828},
		{SchemeSMA, 32.389832790420364, 5.860167209579627},
	}
	for _, tt := range tests {
		t.Run(tt.scheme.String(), func(t *testing.T) {
			d, err := Decompose(s, tt.scheme)
			require.NoError(t, err)
			require.InDelta(t, tt.unsystematic, d.SumUnsystematic, 1e-9)
			require.InDelta(t, tt.systematic, d.SumSystematic, 1e-9)
			require.InDelta(t, 38.25, d.TSS, 1e-12)
			require.Len(t, d.Unsystematic, s.Len())
			require.Len(t, d.Systematic, s.Len())
		})
	}
}

func TestDecompose_SMAAdditivity(t *testing.T) {
	// The Ji & Gallo partition must add back to TSS exactly, for any sample.
	for _, tc := range identityCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Decompose(mustSample(t, tc.name, tc.observed, tc.predicted), SchemeSMA)
			require.NoError(t, err)
			require.InEpsilon(t, d.TSS, d.SumUnsystematic+d.SumSystematic, 1e-9)
			require.True(t, d.Additive())
		})
	}
}

func TestDecompose_OLSAdditivity(t *testing.T) {
	// Willmott's partition is additive as well: the OLS normal equations
	// zero the cross term between the two offsets.
	for _, tc := range identityCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Decompose(mustSample(t, tc.name, tc.observed, tc.predicted), SchemeOLS)
			require.NoError(t, err)
			require.InEpsilon(t, d.TSS, d.SumUnsystematic+d.SumSystematic, 1e-9)
		})
	}
}

func TestDecompose_MajorAxisNotAdditive(t *testing.T) {
	// The major-axis partition does not add back to TSS for this dataset;
	// the gap is a property of the scheme and must survive, not be corrected.
	d, err := Decompose(mustSample(t, "ji-gallo-2006", testObserved, testPredicted), SchemeMajorAxis)
	require.NoError(t, err)
	require.False(t, d.Additive())
	require.InDelta(t, 38.25-39.66627305061449, d.Residual(), 1e-9)
}

func TestDecompose_PerPointAlignment(t *testing.T) {
	s := mustSample(t, "ji-gallo-2006", testObserved, testPredicted)

	d, err := Decompose(s, SchemeOLS)
	require.NoError(t, err)

	// Point 0: O=2, P=4; OLS-vertical fit at O=2 is 0.5667*2+2.4667 = 3.6.
	require.InDelta(t, 0.16, d.Unsystematic[0], 1e-9) // (3.6-4)^2
	require.InDelta(t, 2.56, d.Systematic[0], 1e-9)   // (3.6-2)^2
}

func TestDecompose_Degenerate(t *testing.T) {
	constant := []float64{4, 4, 4, 4, 4, 4, 4, 4, 4, 4}
	s := mustSample(t, "const-pred", testObserved, constant)

	for _, scheme := range []Scheme{SchemeMajorAxis, SchemeSMA} {
		_, err := Decompose(s, scheme)
		require.ErrorIs(t, err, sample.ErrDegenerateInput, scheme.String())
	}

	// The OLS scheme only needs a non-constant observed series, so it still
	// succeeds against a constant prediction.
	d, err := Decompose(s, SchemeOLS)
	require.NoError(t, err)
	require.InDelta(t, 0.0, d.SumUnsystematic, 1e-12)
}

func TestScheme_Strings(t *testing.T) {
	for _, scheme := range Schemes() {
		require.Equal(t, scheme, SchemeFromString(scheme.String()))
	}
	require.Equal(t, SchemeSMA, SchemeFromString("SMA"))
	require.Equal(t, Scheme(-1), SchemeFromString("nonsense"))
	require.Equal(t, "unknown", Scheme(-1).String())
}

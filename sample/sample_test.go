package sample

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s, err := New("demo", []float64{1, 2, 3}, []float64{1.5, 2.5, 3.5})
	require.NoError(t, err)
	require.Equal(t, "demo", s.Label())
	require.Equal(t, 3, s.Len())
	require.Equal(t, []float64{1, 2, 3}, s.Observed())
	require.Equal(t, []float64{1.5, 2.5, 3.5}, s.Predicted())
}

func TestNew_CopiesInput(t *testing.T) {
	obs := []float64{1, 2}
	pred := []float64{3, 4}
	s, err := New("copy", obs, pred)
	require.NoError(t, err)

	obs[0] = 99
	pred[1] = 99
	require.Equal(t, []float64{1, 2}, s.Observed(), "sample must not alias caller buffers")
	require.Equal(t, []float64{3, 4}, s.Predicted())
}

func TestNew_LengthMismatch(t *testing.T) {
	_, err := New("bad", []float64{1, 2, 3}, []float64{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestNew_InsufficientData(t *testing.T) {
	_, err := New("short", []float64{1}, []float64{2})
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = New("empty", nil, nil)
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestNew_MismatchCheckedBeforeLength(t *testing.T) {
	// A one-point observed series against an empty predicted series must fail
	// on the length mismatch, not on the point count.
	_, err := New("order", []float64{1}, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestID_StablePerLabel(t *testing.T) {
	a, err := New("field-7", []float64{1, 2}, []float64{1, 2})
	require.NoError(t, err)
	b, err := New("field-7", []float64{5, 6}, []float64{7, 8})
	require.NoError(t, err)
	c, err := New("field-8", []float64{1, 2}, []float64{1, 2})
	require.NoError(t, err)

	require.Equal(t, a.ID(), b.ID(), "ID depends only on the label")
	require.NotEqual(t, a.ID(), c.ID())
}

func TestMustNew_Panics(t *testing.T) {
	require.Panics(t, func() {
		MustNew("boom", []float64{1}, []float64{1})
	})
}

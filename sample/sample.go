package sample

import (
	"fmt"

	"github.com/concordlabs/concord/internal/hash"
)

// Sample is an immutable pair of equal-length observed and predicted series.
//
// Index correspondence is positional: point i of Observed pairs with point i
// of Predicted. A Sample is validated once at construction and never mutated;
// every downstream statistic is a pure function of its contents.
type Sample struct {
	label     string
	observed  []float64
	predicted []float64
}

// New validates and builds a Sample from paired observed/predicted series.
//
// The input slices are copied, so callers may reuse their buffers.
//
// Returns:
//   - *Sample: The validated sample
//   - error: ErrLengthMismatch when the series differ in length (checked
//     before anything else), ErrInsufficientData when fewer than two points
//     are supplied
func New(label string, observed, predicted []float64) (*Sample, error) {
	if len(observed) != len(predicted) {
		return nil, fmt.Errorf("%w: %d observed vs %d predicted", ErrLengthMismatch, len(observed), len(predicted))
	}
	if len(observed) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientData, len(observed))
	}

	s := &Sample{
		label:     label,
		observed:  make([]float64, len(observed)),
		predicted: make([]float64, len(predicted)),
	}
	copy(s.observed, observed)
	copy(s.predicted, predicted)

	return s, nil
}

// MustNew builds a Sample and panics on validation failure.
// Intended for literal, known-good datasets.
func MustNew(label string, observed, predicted []float64) *Sample {
	s, err := New(label, observed, predicted)
	if err != nil {
		panic(err)
	}

	return s
}

// Label returns the dataset label the sample was constructed with.
func (s *Sample) Label() string { return s.label }

// ID returns the xxHash64 of the sample label, used as a stable registry key.
func (s *Sample) ID() uint64 { return hash.ID(s.label) }

// Len returns the number of paired points.
func (s *Sample) Len() int { return len(s.observed) }

// Observed returns the observed series. The returned slice is shared with the
// sample; callers must not modify it.
func (s *Sample) Observed() []float64 { return s.observed }

// Predicted returns the predicted series. The returned slice is shared with
// the sample; callers must not modify it.
func (s *Sample) Predicted() []float64 { return s.predicted }

// String returns a short human-readable description of the sample.
func (s *Sample) String() string {
	return fmt.Sprintf("Sample{Label: %s, N: %d}", s.label, len(s.observed))
}

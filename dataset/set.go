package dataset

import (
	"fmt"

	"github.com/concordlabs/concord/internal/ident"
	"github.com/concordlabs/concord/sample"
)

// Set is an ordered collection of labelled samples. Labels are unique;
// iteration order is insertion order, so batch results are reproducible.
type Set struct {
	tracker *ident.Tracker
	samples map[string]*sample.Sample
}

// NewSet returns an empty dataset collection.
func NewSet() *Set {
	return &Set{
		tracker: ident.NewTracker(),
		samples: make(map[string]*sample.Sample),
	}
}

// Add registers a sample under its label. Duplicate labels are rejected.
func (set *Set) Add(s *sample.Sample) error {
	if _, exists := set.samples[s.Label()]; exists {
		return fmt.Errorf("duplicate dataset label: %q", s.Label())
	}
	if err := set.tracker.Track(s.Label(), s.ID()); err != nil {
		return fmt.Errorf("tracking label %q: %w", s.Label(), err)
	}
	set.samples[s.Label()] = s

	return nil
}

// HasIDCollision reports whether two distinct labels in the set hash to the
// same sample ID. Labels still resolve correctly; only exported IDs are
// ambiguous.
func (set *Set) HasIDCollision() bool {
	return set.tracker.HasCollision()
}

// Get returns the sample registered under label.
func (set *Set) Get(label string) (*sample.Sample, bool) {
	s, ok := set.samples[label]

	return s, ok
}

// Labels returns the dataset labels in insertion order.
func (set *Set) Labels() []string {
	tracked := set.tracker.Labels()
	labels := make([]string, len(tracked))
	copy(labels, tracked)

	return labels
}

// Len returns the number of datasets in the set.
func (set *Set) Len() int { return set.tracker.Count() }

// Samples returns the samples in insertion order.
func (set *Set) Samples() []*sample.Sample {
	samples := make([]*sample.Sample, 0, set.tracker.Count())
	for _, label := range set.tracker.Labels() {
		samples = append(samples, set.samples[label])
	}

	return samples
}

// Select returns a new set holding only the requested labels, in the
// requested order. Unknown labels are an error.
func (set *Set) Select(labels ...string) (*Set, error) {
	selected := NewSet()
	for _, label := range labels {
		s, ok := set.samples[label]
		if !ok {
			return nil, fmt.Errorf("unknown dataset label: %q", label)
		}
		if err := selected.Add(s); err != nil {
			return nil, err
		}
	}

	return selected, nil
}

// String returns a short human-readable description of the set.
func (set *Set) String() string {
	return fmt.Sprintf("Set{Datasets: %d}", set.tracker.Count())
}

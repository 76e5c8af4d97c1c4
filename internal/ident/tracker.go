package ident

import "errors"

var (
	// ErrEmptyLabel is returned when a sample label is empty.
	ErrEmptyLabel = errors.New("empty sample label")
	// ErrDuplicateLabel is returned when a label is registered twice.
	ErrDuplicateLabel = errors.New("duplicate sample label")
)

// Tracker registers sample labels with their hash IDs and detects both
// duplicate labels and distinct labels that hash to the same ID.
// It maintains a hash-to-label mapping and an ordered label list for
// reproducible iteration.
type Tracker struct {
	labelByID    map[uint64]string
	labels       []string
	hasCollision bool
}

// NewTracker creates a new label tracker.
func NewTracker() *Tracker {
	return &Tracker{
		labelByID: make(map[uint64]string),
	}
}

// Track registers a label under its hash ID.
//
// A duplicate label is an error. Two distinct labels hashing to the same ID
// are not: the labels still work as map keys, so the collision is recorded
// and surfaced through HasCollision for callers that export IDs.
func (t *Tracker) Track(label string, id uint64) error {
	if label == "" {
		return ErrEmptyLabel
	}

	if existing, exists := t.labelByID[id]; exists {
		if existing == label {
			return ErrDuplicateLabel
		}
		t.hasCollision = true
	}

	t.labelByID[id] = label
	t.labels = append(t.labels, label)

	return nil
}

// HasCollision reports whether two distinct labels hashed to the same ID.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Labels returns the tracked labels in registration order.
func (t *Tracker) Labels() []string {
	return t.labels
}

// Count returns the number of tracked labels.
func (t *Tracker) Count() int {
	return len(t.labels)
}

// Reset clears all tracked labels and the collision state, preserving map
// capacity for reuse.
func (t *Tracker) Reset() {
	for k := range t.labelByID {
		delete(t.labelByID, k)
	}
	t.labels = t.labels[:0]
	t.hasCollision = false
}

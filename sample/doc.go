// Package sample defines the validated observed/predicted pair that every
// concord computation operates on, together with the sentinel errors shared
// across the module.
//
// A Sample is constructed once, validated eagerly, and never mutated:
//
//	s, err := sample.New("trial-a", observed, predicted)
//	if err != nil {
//	    // errors.Is(err, sample.ErrLengthMismatch) or sample.ErrInsufficientData
//	}
//
// Downstream packages wrap the sentinels with fmt.Errorf("...: %w", ...), so
// errors.Is works across package boundaries. ErrDegenerateInput lives here
// rather than in the stats package because both the primitive statistics and
// the regression estimators report it.
package sample

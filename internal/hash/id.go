// Package hash derives stable 64-bit identifiers from dataset labels.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given label.
func ID(label string) uint64 {
	return xxhash.Sum64String(label)
}

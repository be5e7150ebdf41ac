// Package random provides seeding for the match random source.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Resolve returns seed unchanged unless it is 0, in which case a fresh seed
// is generated.
func Resolve(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	return NewSeed()
}

// New returns a generator for seed, resolving 0 to a fresh seed. The seed
// actually used is returned so a match can be replayed.
func New(seed int64) (*rand.Rand, int64, error) {
	resolved, err := Resolve(seed)
	if err != nil {
		return nil, 0, err
	}
	return rand.New(rand.NewSource(resolved)), resolved, nil
}

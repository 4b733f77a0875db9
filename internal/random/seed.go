// Package random provides seed helpers for simulation runs.
//
// Seeds come from crypto/rand when the caller does not fix one, and child
// seeds for parallel runs are derived deterministically from a base seed so
// a whole batch can be replayed from a single number.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// Derive returns the index-th child of base using a splitmix64 step.
func Derive(base uint64, index int) uint64 {
	z := base + uint64(index+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

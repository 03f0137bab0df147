// Package seed maps string seeds to deterministic values in [0, 1).
//
// Values come from the SHA-256 digest of the seed's UTF-8 bytes, read as
// consecutive big-endian uint16 chunks and divided by 65536. Nothing else
// (clock, process state, global RNG) contributes.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"unicode/utf8"
)

const (
	// Chunks is the number of values one digest can supply.
	Chunks = sha256.Size / 2
	// Divisor normalises a uint16 chunk into [0, 1).
	Divisor = 65536.0
)

// digest returns all Chunks values for s.
func digest(s string) ([Chunks]float64, error) {
	var out [Chunks]float64
	if !utf8.ValidString(s) {
		return out, invalidEncoding(s)
	}
	sum := sha256.Sum256([]byte(s))
	for i := range out {
		out[i] = float64(binary.BigEndian.Uint16(sum[i*2:])) / Divisor
	}
	return out, nil
}

// Derive returns the first n values derived from s.
// n must lie in [0, Chunks].
func Derive(s string, n int) ([]float64, error) {
	if n < 0 || n > Chunks {
		return nil, outOfRangef("requested %d values, digest supplies %d", n, Chunks)
	}
	all, err := digest(s)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	copy(out, all[:n])
	return out, nil
}

// All returns every value the digest of s supplies.
func All(s string) ([Chunks]float64, error) {
	return digest(s)
}

// Value returns the value at position i for s.
func Value(s string, i int) (float64, error) {
	if i < 0 || i >= Chunks {
		return 0, outOfRangef("index %d outside [0, %d)", i, Chunks)
	}
	all, err := digest(s)
	if err != nil {
		return 0, err
	}
	return all[i], nil
}

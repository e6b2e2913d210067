// Package rng provides the narrow randomness contract consumed by field
// element sampling, permutation construction, and Goppa systematic-form
// search. It mirrors the seeding discipline of the teacher's ntru package
// (crypto/rand seed, math/rand stream) without forcing every caller onto a
// single global generator.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// Source is a single-owner randomness stream. Callers must not share one
// Source across concurrent consumers (spec.md §5): wrap a fresh instance per
// goroutine if parallel construction is needed.
type Source interface {
	// Intn returns a uniform random int in [0,n). Panics if n <= 0.
	Intn(n int) int
	// Bytes returns n uniformly random bytes.
	Bytes(n int) []byte
}

// mathRandSource adapts *mrand.Rand to Source, the same role ntru.RNG plays
// for the peer lattice engine.
type mathRandSource struct {
	r *mrand.Rand
}

// FromMathRand wraps an existing *mrand.Rand as a Source. Useful for
// deterministic, reproducible tests.
func FromMathRand(r *mrand.Rand) Source {
	return &mathRandSource{r: r}
}

// FromSeed builds a deterministic Source from an int64 seed.
func FromSeed(seed int64) Source {
	return &mathRandSource{r: mrand.New(mrand.NewSource(seed))}
}

func (s *mathRandSource) Intn(n int) int {
	return s.r.Intn(n)
}

func (s *mathRandSource) Bytes(n int) []byte {
	b := make([]byte, n)
	s.r.Read(b) //nolint:errcheck // math/rand.Rand.Read never errors
	return b
}

// cryptoSource adapts crypto/rand.Reader to Source for production use where
// a strongly-seeded uniform generator is required (spec.md §6).
type cryptoSource struct{}

// CryptoSource returns a Source backed by crypto/rand.Reader.
func CryptoSource() Source { return cryptoSource{} }

func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	// Rejection sampling against the largest multiple of n that fits in
	// 32 bits, to avoid modulo bias.
	max := uint32(n)
	limit := (^uint32(0) / max) * max
	for {
		var buf [4]byte
		if _, err := rand.Read(buf[:]); err != nil {
			// crypto/rand.Read failing is catastrophic for a strongly
			// seeded generator; fall back to a freshly seeded math/rand
			// stream rather than returning a biased result.
			var seed int64
			_ = binary.Read(cryptoSeedReader{}, binary.LittleEndian, &seed)
			return mrand.New(mrand.NewSource(seed)).Intn(n)
		}
		v := binary.LittleEndian.Uint32(buf[:])
		if v < limit {
			return int(v % max)
		}
	}
}

func (cryptoSource) Bytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("rng: crypto/rand.Read failed: " + err.Error())
	}
	return b
}

// cryptoSeedReader is a trivial io.Reader used only on the crypto/rand
// failure path above, so FromSeed-style fallback seeding stays self
// contained.
type cryptoSeedReader struct{}

func (cryptoSeedReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(mrand.Intn(256))
	}
	return len(p), nil
}

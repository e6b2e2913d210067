// Package digest implements the §6 digest collaborator contract that the
// NTRU parameter block threads through for serialization round-tripping.
// Concrete implementations wrap golang.org/x/crypto/sha3, the same hash
// package the teacher's DECS and PIOP Fiat-Shamir code already depends on.
package digest

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Digest is the external digest collaborator: update incrementally,
// finalize to a fixed-length sum, and reset for reuse. AlgorithmName is the
// string persisted in NTRU parameter-block serialization (spec.md §4.7).
type Digest interface {
	Update(p []byte)
	Finalize() []byte
	Reset()
	AlgorithmName() string
	Size() int
}

type sha3Digest struct {
	name string
	size int
	h    sha3State
}

// sha3State is the subset of hash.Hash that sha3Digest drives; kept narrow
// so Reset/Write/Sum are the only calls made against the underlying hasher.
type sha3State interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Reset()
}

func newSHA3(name string, size int, h sha3State) *sha3Digest {
	return &sha3Digest{name: name, size: size, h: h}
}

func (d *sha3Digest) Update(p []byte) {
	_, _ = d.h.Write(p)
}

func (d *sha3Digest) Finalize() []byte {
	sum := d.h.Sum(nil)
	d.h.Reset()
	return sum
}

func (d *sha3Digest) Reset() { d.h.Reset() }

func (d *sha3Digest) AlgorithmName() string { return d.name }

func (d *sha3Digest) Size() int { return d.size }

// SHA3_256 returns a fresh SHA3-256 digest collaborator.
func SHA3_256() Digest { return newSHA3("SHA3-256", 32, sha3.New256()) }

// SHA3_512 returns a fresh SHA3-512 digest collaborator.
func SHA3_512() Digest { return newSHA3("SHA3-512", 64, sha3.New512()) }

// Factory maps a persisted algorithm name back to a fresh Digest instance,
// the collaborator NTRU parameter-block deserialization requires (spec.md
// §4.7: "Deserialization takes a digest-factory collaborator").
type Factory func(name string) (Digest, error)

// DefaultFactory resolves the two algorithm names this core's predefined
// NTRU parameter sets use.
func DefaultFactory(name string) (Digest, error) {
	switch name {
	case "SHA3-256":
		return SHA3_256(), nil
	case "SHA3-512":
		return SHA3_512(), nil
	default:
		return nil, fmt.Errorf("digest: unknown algorithm %q", name)
	}
}

// Package permutation implements permutations of {0,...,n-1} (C7):
// Fisher-Yates random construction, identity construction, validated
// construction from an explicit array, composition, and inversion.
// Construction consumes an rng.Source the way ntru.RNG wraps a math/rand
// stream for the peer lattice engine (ntru/rng.go), and seeding follows the
// crypto/rand-first discipline of ntru/random_seed.go.
package permutation

import (
	"pqccore/errs"
	"pqccore/intutil"
	"pqccore/rng"
)

// Permutation is a bijection of {0,...,n-1}, stored as the image array pi
// where pi[i] is the position i maps to.
type Permutation struct {
	pi []int
}

// Identity returns the identity permutation of length n.
func Identity(n int) *Permutation {
	pi := make([]int, n)
	for i := range pi {
		pi[i] = i
	}
	return &Permutation{pi: pi}
}

// Random builds a uniformly random permutation of length n via
// Fisher-Yates, drawing from src.
func Random(n int, src rng.Source) *Permutation {
	pi := make([]int, n)
	for i := range pi {
		pi[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		pi[i], pi[j] = pi[j], pi[i]
	}
	return &Permutation{pi: pi}
}

// FromArray validates arr as a bijection of {0,...,len(arr)-1} and wraps it.
// Fails with InvalidInputError on duplicates or out-of-range entries.
func FromArray(arr []int) (*Permutation, error) {
	n := len(arr)
	seen := make([]bool, n)
	for _, v := range arr {
		if v < 0 || v >= n {
			return nil, errs.New(errs.InvalidInputError, "permutation entry %d out of range [0,%d)", v, n)
		}
		if seen[v] {
			return nil, errs.New(errs.InvalidInputError, "permutation entry %d duplicated", v)
		}
		seen[v] = true
	}
	return &Permutation{pi: intutil.Clone(arr)}, nil
}

// Len returns n.
func (p *Permutation) Len() int { return len(p.pi) }

// At returns pi[i].
func (p *Permutation) At(i int) int { return p.pi[i] }

// Array returns a defensive copy of the underlying image array.
func (p *Permutation) Array() []int { return intutil.Clone(p.pi) }

// Equal reports array equality.
func (p *Permutation) Equal(other *Permutation) bool {
	return intutil.Equal(p.pi, other.pi)
}

// Compose returns p ∘ other, i.e. the permutation i -> p.At(other.At(i)).
func (p *Permutation) Compose(other *Permutation) (*Permutation, error) {
	if p.Len() != other.Len() {
		return nil, errs.New(errs.InvalidInputError, "permutation length mismatch %d != %d", p.Len(), other.Len())
	}
	out := make([]int, p.Len())
	for i := range out {
		out[i] = p.pi[other.pi[i]]
	}
	return &Permutation{pi: out}, nil
}

// Invert returns the inverse permutation.
func (p *Permutation) Invert() *Permutation {
	out := make([]int, len(p.pi))
	for i, v := range p.pi {
		out[v] = i
	}
	return &Permutation{pi: out}
}

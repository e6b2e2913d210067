// Package bigutil implements BigIntUtils (C11): ancillary conversions
// between arbitrary-precision integers and fixed-width int arrays. No other
// package of this module imports it. Grounded on
// ntru/egcd.go's math/big idiom — the source's bespoke big-integer type is
// replaced entirely by the standard library's math/big per spec.md §9's
// "Arbitrary-precision integers" redesign note.
package bigutil

import (
	"math/big"

	"pqccore/errs"
)

// ToIntArrayModQ reduces n modulo q (both taken as arbitrary-precision
// integers: q is only ever a small modulus in practice, but the reduction
// itself is big-integer arithmetic throughout) and returns the result as a
// base-2^bitsPerWord digit array, least-significant word first. This is the
// corrected form of the source's toIntArrayModQ, which narrowed q to a
// machine int before reducing (see ToIntArrayModQTruncated).
func ToIntArrayModQ(n *big.Int, q int64, bitsPerWord, words uint) ([]int, error) {
	if q <= 0 {
		return nil, errs.New(errs.InvalidInputError, "modulus must be positive, got %d", q)
	}
	reduced := new(big.Int).Mod(n, big.NewInt(q))
	return toIntArray(reduced, bitsPerWord, words)
}

// ToIntArrayModQTruncated preserves the source's probable bug (see
// spec.md's Open Questions): it narrows q to a machine int before
// reducing, rather than keeping the modulus as a big.Int throughout. Kept
// alongside the corrected ToIntArrayModQ so callers that depend on bit-exact
// reproduction of the original behavior can opt into it explicitly.
func ToIntArrayModQTruncated(n *big.Int, q int64, bitsPerWord, words uint) ([]int, error) {
	if q <= 0 {
		return nil, errs.New(errs.InvalidInputError, "modulus must be positive, got %d", q)
	}
	narrowed := int64(int(q))
	reduced := new(big.Int).Mod(n, big.NewInt(narrowed))
	return toIntArray(reduced, bitsPerWord, words)
}

func toIntArray(v *big.Int, bitsPerWord, words uint) ([]int, error) {
	if bitsPerWord == 0 || bitsPerWord > 31 {
		return nil, errs.New(errs.InvalidInputError, "bitsPerWord out of range: %d", bitsPerWord)
	}
	out := make([]int, words)
	mask := new(big.Int).Lsh(big.NewInt(1), bitsPerWord)
	mask.Sub(mask, big.NewInt(1))
	work := new(big.Int).Set(v)
	tmp := new(big.Int)
	for i := uint(0); i < words; i++ {
		tmp.And(work, mask)
		out[i] = int(tmp.Int64())
		work.Rsh(work, bitsPerWord)
	}
	return out, nil
}

// FromIntArray reconstructs the big.Int encoded least-significant word
// first by ToIntArrayModQ/ToIntArrayModQTruncated.
func FromIntArray(words []int, bitsPerWord uint) *big.Int {
	out := new(big.Int)
	shifted := new(big.Int)
	for i := len(words) - 1; i >= 0; i-- {
		shifted.Lsh(out, bitsPerWord)
		out.Add(shifted, big.NewInt(int64(words[i])))
	}
	return out
}

// Compare reports -1, 0, or 1 as a is less than, equal to, or greater than
// b, delegating to math/big.Int.Cmp (not constant-time; see spec.md's
// non-constant-time note on multi-precision comparison).
func Compare(a, b *big.Int) int { return a.Cmp(b) }

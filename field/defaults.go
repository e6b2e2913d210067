package field

import "sync"

// DefaultPolynomial returns the package's default irreducible polynomial of
// degree m, computed once and memoized. The search mirrors
// other_examples/bemasher-rtlamr__gf.go's reducible/polyDiv trial-division
// test, specialized to GF(2): scan odd integers with bit m set, upward from
// 2^m+1, for the first one with no nontrivial GF(2) factor.
func DefaultPolynomial(m int) int {
	defaultPolyOnce.Do(computeDefaultPolynomials)
	return defaultPoly[m]
}

var (
	defaultPolyOnce sync.Once
	defaultPoly     [maxDegree + 1]int
)

func computeDefaultPolynomials() {
	for m := minDegree; m <= maxDegree; m++ {
		defaultPoly[m] = findIrreducibleGF2(m)
	}
}

// findIrreducibleGF2 returns the smallest odd integer p in [2^m, 2^(m+1))
// with bit m set that is irreducible over GF(2).
func findIrreducibleGF2(m int) int {
	size := 1 << m
	for p := size | 1; p < size<<1; p += 2 {
		if !isReducibleGF2(p) {
			return p
		}
	}
	panic("field: no irreducible polynomial found for degree") // unreachable for m <= 31
}

// isReducibleGF2 reports whether p (a GF(2) polynomial, bit k = coefficient
// of X^k) has a nontrivial factor, by trial division against every
// polynomial of degree 1..floor(deg(p)/2).
func isReducibleGF2(p int) bool {
	deg := bitLen(p) - 1
	for q := 2; q < 1<<(deg/2+1); q++ {
		if gf2Remainder(p, q) == 0 {
			return true
		}
	}
	return false
}

func bitLen(p int) int {
	n := 0
	for ; p > 0; p >>= 1 {
		n++
	}
	return n
}

// gf2Remainder returns p mod q as GF(2) polynomials (XOR-shift division).
func gf2Remainder(p, q int) int {
	np := bitLen(p)
	nq := bitLen(q)
	for ; np >= nq; np-- {
		if p&(1<<(np-1)) != 0 {
			p ^= q << (np - nq)
		}
	}
	return p
}

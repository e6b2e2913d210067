// Package field implements GF(2^m) arithmetic via a fixed irreducible
// polynomial, for 2 <= m <= 31. The exp/log table construction mirrors
// other_examples/bemasher-rtlamr's gf package (generalized there for
// Reed-Solomon symbol fields), generalized here to the full GF(2^m) range
// and keyed by degree the way internal/kfield keys its extension fields by
// (Q, Theta).
package field

import (
	"pqccore/errs"
	"pqccore/rng"
)

// Field is GF(2^m): degree m, irreducible polynomial poly (bit k is the
// coefficient of X^k, including the monic leading bit m), and exp/log
// tables such that every nonzero element a = exp[log[a]].
type Field struct {
	m       int
	poly    int
	exp     []int // length 2^m
	log     []int // length 2^m; log[0] is never read
	quadCol []int // quadCol[i] = (basis_i)^2 + basis_i, the i-th column of the
	// GF(2)-linear map x -> x^2+x expressed in the power basis; built once
	// at construction so SolveQuadratic never has to enumerate the field.
}

const (
	minDegree = 2
	maxDegree = 31
)

// NewField constructs GF(2^m) from an explicit irreducible polynomial. It
// performs the "one-root test" construction-time sanity check from
// spec.md §4.1 (poly must not vanish at X=0 or X=1 over GF(2)); full
// irreducibility is checked only for the default polynomials, by
// exhaustive trial division the first time DefaultPolynomial is called
// (see defaults.go).
func NewField(m, poly int) (*Field, error) {
	if m < minDegree || m > maxDegree {
		return nil, errs.New(errs.ConfigError, "field degree %d out of range [%d,%d]", m, minDegree, maxDegree)
	}
	size := 1 << m
	if poly < size || poly >= size<<1 {
		return nil, errs.New(errs.ConfigError, "polynomial 0x%x is not degree %d", poly, m)
	}
	if !hasNoRootOverGF2(poly) {
		return nil, errs.New(errs.ConfigError, "polynomial 0x%x has a root in GF(2)", poly)
	}

	f := &Field{m: m, poly: poly, exp: make([]int, size), log: make([]int, size)}
	x := 1
	for i := 0; i < size-1; i++ {
		f.exp[i] = x
		f.log[x] = i
		x <<= 1
		if x&size != 0 {
			x ^= poly
		}
	}
	f.exp[size-1] = 1

	f.quadCol = make([]int, m)
	for i := 0; i < m; i++ {
		basis := 1 << i
		f.quadCol[i] = f.Mult(basis, basis) ^ basis
	}
	return f, nil
}

// NewDefaultField constructs GF(2^m) using the package's default
// irreducible polynomial table.
func NewDefaultField(m int) (*Field, error) {
	if m < minDegree || m > maxDegree {
		return nil, errs.New(errs.ConfigError, "field degree %d out of range [%d,%d]", m, minDegree, maxDegree)
	}
	return NewField(m, DefaultPolynomial(m))
}

// hasNoRootOverGF2 evaluates poly at X=0 and X=1 modulo 2 and reports
// whether both are nonzero (no linear factor (X) or (X+1)).
func hasNoRootOverGF2(poly int) bool {
	if poly&1 == 0 {
		return false // root at X=0: constant term is 0
	}
	// Evaluate at X=1: sum of all coefficient bits, mod 2 (parity).
	parity := 0
	for p := poly; p != 0; p &= p - 1 {
		parity ^= 1
	}
	return parity != 0
}

// Degree returns m.
func (f *Field) Degree() int { return f.m }

// Polynomial returns the irreducible polynomial bit pattern.
func (f *Field) Polynomial() int { return f.poly }

// Size returns 2^m, the number of elements.
func (f *Field) Size() int { return len(f.exp) }

// Equal reports whether two fields share the same (m, poly).
func (f *Field) Equal(other *Field) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	return f.m == other.m && f.poly == other.poly
}

// IsElementOfThisField reports whether 0 <= x < 2^m.
func (f *Field) IsElementOfThisField(x int) bool {
	return x >= 0 && x < len(f.exp)
}

func (f *Field) order() int { return len(f.exp) - 1 }

// Add returns a XOR b (addition and subtraction coincide in characteristic 2).
func (f *Field) Add(a, b int) int { return a ^ b }

// Mult returns a*b, 0 if either operand is 0.
func (f *Field) Mult(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(f.log[a]+f.log[b])%f.order()]
}

// Inverse returns a^-1. Fails with ArithmeticError on a = 0.
func (f *Field) Inverse(a int) (int, error) {
	if a == 0 {
		return 0, errs.New(errs.ArithmeticError, "inverse of zero element")
	}
	ord := f.order()
	return f.exp[(ord-f.log[a])%ord], nil
}

// Pow returns a^k for k >= 0.
func (f *Field) Pow(a, k int) int {
	if k == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	ord := f.order()
	e := (f.log[a] * k) % ord
	if e < 0 {
		e += ord
	}
	return f.exp[e]
}

// SqRoot returns a^(2^(m-1)), the square root of a in GF(2^m) (squaring is
// a field automorphism of order m, so this is its (m-1)-fold iterate).
func (f *Field) SqRoot(a int) int {
	return f.Pow(a, 1<<(f.m-1))
}

// SolveQuadratic finds x with x^2 + x = c. The map x -> x^2+x is GF(2)-linear
// (Frobenius minus identity), so solving it is an m x m linear system over
// GF(2) in the power basis; solved fresh each call via Gaussian elimination
// over the precomputed column map quadCol. Returns false if c has no
// solution (its absolute trace over GF(2) is 1).
func (f *Field) SolveQuadratic(c int) (int, bool) {
	m := f.m
	coeff := make([]int, m) // coeff[r]: bitmask over unknown index i, row r
	rhs := make([]int, m)   // rhs[r]: bit r of c
	for r := 0; r < m; r++ {
		row := 0
		for i := 0; i < m; i++ {
			if f.quadCol[i]&(1<<r) != 0 {
				row |= 1 << i
			}
		}
		coeff[r] = row
		rhs[r] = (c >> r) & 1
	}

	// Gaussian elimination to row-echelon form.
	pivotRowOf := make([]int, m)
	for i := range pivotRowOf {
		pivotRowOf[i] = -1
	}
	row := 0
	for col := 0; col < m && row < m; col++ {
		sel := -1
		for r := row; r < m; r++ {
			if coeff[r]&(1<<col) != 0 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		coeff[sel], coeff[row] = coeff[row], coeff[sel]
		rhs[sel], rhs[row] = rhs[row], rhs[sel]
		for r := 0; r < m; r++ {
			if r != row && coeff[r]&(1<<col) != 0 {
				coeff[r] ^= coeff[row]
				rhs[r] ^= rhs[row]
			}
		}
		pivotRowOf[col] = row
		row++
	}

	// Any all-zero coefficient row with a nonzero RHS means c is not in the
	// image of x -> x^2+x (its absolute trace is 1): no solution.
	for r := 0; r < m; r++ {
		if coeff[r] == 0 && rhs[r] != 0 {
			return 0, false
		}
	}

	x := 0
	for col := 0; col < m; col++ {
		if pivotRowOf[col] != -1 && rhs[pivotRowOf[col]] != 0 {
			x |= 1 << col
		}
	}
	return x, true
}

// RandomElement draws a uniform element of the field.
func (f *Field) RandomElement(src rng.Source) int {
	return src.Intn(len(f.exp))
}

// RandomNonzeroElement draws a uniform nonzero element of the field.
func (f *Field) RandomNonzeroElement(src rng.Source) int {
	return 1 + src.Intn(len(f.exp)-1)
}

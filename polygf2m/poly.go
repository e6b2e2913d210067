// Package polygf2m implements dense polynomials over GF(2^m) (C3,
// PolynomialGF2mSmallM): evaluation, addition, scalar and monomial
// multiplication, Karatsuba multiplication, division with remainder, GCD,
// modular inverse/square-root/fraction reconstruction, an irreducibility
// test, and the canonical byte encoding.
//
// The value-typed, fresh-instance-per-operation API mirrors
// ntru/poly.go's IntPoly/ModQPoly, specialized from math/big coefficients
// to native-int GF(2^m) elements (m <= 31 always fits a machine word, so
// unlike IntPoly this type needs no arbitrary-precision support).
package polygf2m

import (
	"pqccore/errs"
	"pqccore/field"
)

// Polynomial is a dense polynomial over GF(2^m): coefficients indexed by
// exponent, with a degree cached and recomputed on every mutating call.
type Polynomial struct {
	field  *field.Field
	coeffs []int
	degree int // -1 for the zero polynomial
}

// NewZero returns the zero polynomial (stored with a single zero coefficient).
func NewZero(f *field.Field) Polynomial {
	return Polynomial{field: f, coeffs: []int{0}, degree: -1}
}

// NewMonomial returns the polynomial X^k (coefficient 1 at exponent k).
func NewMonomial(f *field.Field, k int) Polynomial {
	c := make([]int, k+1)
	c[k] = 1
	return Polynomial{field: f, coeffs: c, degree: k}
}

// NewConstant returns the constant polynomial with value v.
func NewConstant(f *field.Field, v int) Polynomial {
	p := Polynomial{field: f, coeffs: []int{v}}
	p.recomputeDegree()
	return p
}

// New builds a polynomial from a coefficient slice (index = exponent),
// copying the input and validating every coefficient is a field element.
func New(f *field.Field, coeffs []int) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, errs.New(errs.InvalidInputError, "empty coefficient slice")
	}
	c := make([]int, len(coeffs))
	for i, v := range coeffs {
		if !f.IsElementOfThisField(v) {
			return Polynomial{}, errs.New(errs.EncodingError, "coefficient %d (index %d) not in field", v, i)
		}
		c[i] = v
	}
	p := Polynomial{field: f, coeffs: c}
	p.recomputeDegree()
	return p, nil
}

// Field returns the polynomial's coefficient field.
func (p Polynomial) Field() *field.Field { return p.field }

// Degree returns the largest i with coeffs[i] != 0, or -1 for the zero
// polynomial.
func (p Polynomial) Degree() int { return p.degree }

// Coefficients returns a defensive copy of the coefficient slice, trimmed to
// degree+1 elements (or length 1 for the zero polynomial).
func (p Polynomial) Coefficients() []int {
	n := p.degree + 1
	if n < 1 {
		n = 1
	}
	out := make([]int, n)
	copy(out, p.coeffs[:n])
	return out
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return p.degree < 0 }

// Equal reports whether p and q have the same trimmed coefficient sequence.
func (p Polynomial) Equal(q Polynomial) bool {
	if p.degree != q.degree {
		return false
	}
	for i := 0; i <= p.degree; i++ {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}
	return true
}

func (p *Polynomial) recomputeDegree() {
	d := -1
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if p.coeffs[i] != 0 {
			d = i
			break
		}
	}
	p.degree = d
}

// EvaluateAt evaluates p(e) via Horner's scheme in Θ(deg(p)).
func (p Polynomial) EvaluateAt(e int) int {
	if p.degree < 0 {
		return 0
	}
	f := p.field
	result := p.coeffs[p.degree]
	for i := p.degree - 1; i >= 0; i-- {
		result = f.Add(f.Mult(result, e), p.coeffs[i])
	}
	return result
}

// Add returns p + q (coefficient-wise XOR after aligning lengths).
// Commutative; p.Add(p) is the zero polynomial.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		var a, b int
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			b = q.coeffs[i]
		}
		out[i] = a ^ b
	}
	r := Polynomial{field: p.field, coeffs: out}
	r.recomputeDegree()
	return r
}

// AddToThis mutates p in place to p + q, recomputing degree afterward.
func (p *Polynomial) AddToThis(q Polynomial) {
	if len(q.coeffs) > len(p.coeffs) {
		grown := make([]int, len(q.coeffs))
		copy(grown, p.coeffs)
		p.coeffs = grown
	}
	for i, v := range q.coeffs {
		p.coeffs[i] ^= v
	}
	p.recomputeDegree()
}

// MultWithElement scales p by the field element x: zero-extends (returns
// the zero polynomial) when x = 0, returns p unchanged when x = 1, fails
// with ArithmeticError if x is not a field element.
func (p Polynomial) MultWithElement(x int) (Polynomial, error) {
	if !p.field.IsElementOfThisField(x) {
		return Polynomial{}, errs.New(errs.ArithmeticError, "scalar %d not in field", x)
	}
	return p.multWithElementUnchecked(x), nil
}

func (p Polynomial) multWithElementUnchecked(x int) Polynomial {
	if x == 0 {
		return NewZero(p.field)
	}
	if x == 1 {
		return p
	}
	out := make([]int, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = p.field.Mult(c, x)
	}
	r := Polynomial{field: p.field, coeffs: out}
	r.recomputeDegree()
	return r
}

// MultThisWithElement mutates p's coefficient buffer in place, scaling by x.
func (p *Polynomial) MultThisWithElement(x int) error {
	if !p.field.IsElementOfThisField(x) {
		return errs.New(errs.ArithmeticError, "scalar %d not in field", x)
	}
	if x == 0 {
		for i := range p.coeffs {
			p.coeffs[i] = 0
		}
	} else if x != 1 {
		for i := range p.coeffs {
			p.coeffs[i] = p.field.Mult(p.coeffs[i], x)
		}
	}
	p.recomputeDegree()
	return nil
}

// MultWithMonomial returns p * X^k (left-shifts coefficients by k positions).
func (p Polynomial) MultWithMonomial(k int) Polynomial {
	if p.degree < 0 || k == 0 {
		return p
	}
	out := make([]int, len(p.coeffs)+k)
	copy(out[k:], p.coeffs)
	r := Polynomial{field: p.field, coeffs: out}
	r.recomputeDegree()
	return r
}

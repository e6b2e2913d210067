package polygf2m

import "pqccore/errs"

// ModMultiply returns (p * other) mod mod.
func (p Polynomial) ModMultiply(other, mod Polynomial) (Polynomial, error) {
	prod := p.Multiply(other)
	return prod.Mod(mod)
}

// ModInverse returns the inverse of p modulo mod, found via the extended
// Euclidean algorithm. Fails with ArithmeticError if gcd(p, mod) != 1.
func (p Polynomial) ModInverse(mod Polynomial) (Polynomial, error) {
	r0, r1 := mod, p
	v0, v1 := NewZero(p.field), NewConstant(p.field, 1)

	for r1.degree >= 0 {
		q, r, err := r0.Div(r1)
		if err != nil {
			return Polynomial{}, err
		}
		v2 := v0.Add(q.Multiply(v1))
		r0, r1 = r1, r
		v0, v1 = v1, v2
	}

	if r0.degree != 0 {
		return Polynomial{}, errs.New(errs.ArithmeticError, "polynomial not invertible modulo given modulus")
	}
	inv, err := p.field.Inverse(r0.coeffs[0])
	if err != nil {
		return Polynomial{}, err
	}
	return v0.multWithElementUnchecked(inv), nil
}

// ModSquareRoot finds r with r^2 ≡ p (mod mod), exploiting the fact that
// squaring modulo mod permutes the quotient ring with finite order: starting
// from r = p, repeated squaring cycles back to p, and the predecessor in
// that cycle is the square root. The search stops after
// m*deg(mod)+2 squarings (at least 4); for irreducible mod, squaring has
// order m*deg(mod), so only other inputs can exhaust it and fail.
func (p Polynomial) ModSquareRoot(mod Polynomial) (Polynomial, error) {
	maxIters := p.field.Degree()*mod.Degree() + 2
	if maxIters < 4 {
		maxIters = 4
	}
	r := p
	for i := 0; i < maxIters; i++ {
		sq, err := r.ModMultiply(r, mod)
		if err != nil {
			return Polynomial{}, err
		}
		if sq.Equal(p) {
			return r, nil
		}
		r = sq
	}
	return Polynomial{}, errs.New(errs.ArithmeticError, "mod_square_root did not converge")
}

// ModSquareRootMatrix applies a precomputed square-root matrix M (one
// polynomial of degree < len(M) per coefficient of p): it forms
// sum_j M[j] * p.coeffs[j], then takes the field square root of every
// coefficient of that sum. Used by Patterson decoding once the matrix has
// been built by ringgf2m, avoiding the iterative fixed-point search.
func (p Polynomial) ModSquareRootMatrix(m []Polynomial) Polynomial {
	fld := p.field
	acc := NewZero(fld)
	for j := 0; j < len(m) && j < len(p.coeffs); j++ {
		c := p.coeffs[j]
		if c == 0 {
			continue
		}
		acc = acc.Add(m[j].multWithElementUnchecked(c))
	}
	out := make([]int, len(acc.coeffs))
	for i, c := range acc.coeffs {
		out[i] = fld.SqRoot(c)
	}
	r := Polynomial{field: fld, coeffs: out}
	r.recomputeDegree()
	return r
}

// ModPolynomialToFraction runs the extended Euclidean algorithm on
// (g, p mod g), halting the first time the current remainder's degree drops
// to at most floor(deg(g)/2), and returns (a, b) such that b*p ≡ a (mod g).
// This is the rational-function reconstruction step of Patterson decoding.
func (p Polynomial) ModPolynomialToFraction(g Polynomial) (a, b Polynomial, err error) {
	threshold := g.Degree() / 2

	r0, err := p.Mod(g)
	if err != nil {
		return Polynomial{}, Polynomial{}, err
	}
	rPrev, rCur := g, r0
	vPrev, vCur := NewZero(p.field), NewConstant(p.field, 1)

	if rCur.Degree() <= threshold {
		return rCur, vCur, nil
	}

	for {
		q, r, divErr := rPrev.Div(rCur)
		if divErr != nil {
			return Polynomial{}, Polynomial{}, divErr
		}
		vNext := vPrev.Add(q.Multiply(vCur))
		rPrev, rCur = rCur, r
		vPrev, vCur = vCur, vNext

		if rCur.Degree() <= threshold {
			return rCur, vCur, nil
		}
	}
}

// IsIrreducible reports whether p is irreducible over GF(2^m): a
// degree-d polynomial is irreducible iff gcd(X^(2^(m*i)) + X, p) has degree
// 0 for every i in [1, floor(d/2)]. X^(2^(m*i)) mod p is tracked
// incrementally by squaring X modulo p m times per outer step.
func (p Polynomial) IsIrreducible() bool {
	d := p.Degree()
	if d <= 0 {
		return false
	}
	x := NewMonomial(p.field, 1)
	u := x
	for i := 1; i <= d/2; i++ {
		for k := 0; k < p.field.Degree(); k++ {
			sq, err := u.ModMultiply(u, p)
			if err != nil {
				return false
			}
			u = sq
		}
		diff := u.Add(x)
		if diff.GCD(p).Degree() != 0 {
			return false
		}
	}
	return true
}

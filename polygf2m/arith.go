package polygf2m

import "pqccore/errs"

// Multiply returns p * other via Karatsuba multiplication, recursing down
// to a direct constant multiply once either operand's degree reaches 0.
// The split point ties break on ⌈(d+1)/2⌉ using the larger of the two
// operand degrees (the two coincide when the operands have equal degree).
func (p Polynomial) Multiply(other Polynomial) Polynomial {
	if p.degree < 0 || other.degree < 0 {
		return NewZero(p.field)
	}
	if p.degree == 0 {
		return other.multWithElementUnchecked(p.coeffs[0])
	}
	if other.degree == 0 {
		return p.multWithElementUnchecked(other.coeffs[0])
	}

	d := p.degree
	if other.degree > d {
		d = other.degree
	}
	split := (d + 2) / 2 // ceil((d+1)/2)

	pLo, pHi := splitAt(p, split)
	qLo, qHi := splitAt(other, split)

	z0 := pLo.Multiply(qLo)
	z2 := pHi.Multiply(qHi)
	mid := pLo.Add(pHi).Multiply(qLo.Add(qHi)).Add(z0).Add(z2)

	result := z0.Add(mid.MultWithMonomial(split)).Add(z2.MultWithMonomial(2 * split))
	return result
}

// splitAt splits p into (low, high) such that p == low + high*X^split.
func splitAt(p Polynomial, split int) (lo, hi Polynomial) {
	n := len(p.coeffs)
	if split >= n {
		return p, NewZero(p.field)
	}
	loCoeffs := make([]int, split)
	copy(loCoeffs, p.coeffs[:split])
	hiCoeffs := make([]int, n-split)
	copy(hiCoeffs, p.coeffs[split:])
	lo = Polynomial{field: p.field, coeffs: loCoeffs}
	lo.recomputeDegree()
	hi = Polynomial{field: p.field, coeffs: hiCoeffs}
	hi.recomputeDegree()
	return lo, hi
}

// Div returns (q, r) such that p = q*f + r and deg(r) < deg(f). Fails with
// ArithmeticError if f is the zero polynomial.
func (p Polynomial) Div(f Polynomial) (q, r Polynomial, err error) {
	if f.degree < 0 {
		return Polynomial{}, Polynomial{}, errs.New(errs.ArithmeticError, "division by zero polynomial")
	}
	fld := p.field
	leadInv, invErr := fld.Inverse(f.coeffs[f.degree])
	if invErr != nil {
		return Polynomial{}, Polynomial{}, errs.Wrap(errs.ArithmeticError, invErr, "invert divisor leading coefficient")
	}

	remCoeffs := append([]int(nil), p.coeffs[:p.degree+1]...)
	if p.degree < 0 {
		remCoeffs = []int{0}
	}
	qDeg := p.degree - f.degree
	var quotCoeffs []int
	if qDeg >= 0 {
		quotCoeffs = make([]int, qDeg+1)
	}

	rem := Polynomial{field: fld, coeffs: remCoeffs}
	rem.recomputeDegree()

	for rem.degree >= f.degree {
		shift := rem.degree - f.degree
		coeff := fld.Mult(rem.coeffs[rem.degree], leadInv)
		quotCoeffs[shift] = coeff
		term := f.multWithElementUnchecked(coeff).MultWithMonomial(shift)
		rem = rem.Add(term)
	}

	qOut := Polynomial{field: fld, coeffs: quotCoeffs}
	if quotCoeffs == nil {
		qOut = NewZero(fld)
	} else {
		qOut.recomputeDegree()
	}
	return qOut, rem, nil
}

// Mod returns p mod f.
func (p Polynomial) Mod(f Polynomial) (Polynomial, error) {
	_, r, err := p.Div(f)
	return r, err
}

// GCD returns the monic GCD of p and f via the Euclidean algorithm.
func (p Polynomial) GCD(f Polynomial) Polynomial {
	a, b := p, f
	for b.degree >= 0 {
		_, r, err := a.Div(b)
		if err != nil {
			break
		}
		a, b = b, r
	}
	if a.degree < 0 {
		return a
	}
	lead := a.coeffs[a.degree]
	if lead == 1 {
		return a
	}
	inv, err := a.field.Inverse(lead)
	if err != nil {
		return a
	}
	return a.multWithElementUnchecked(inv)
}

// Package goppa implements GoppaCode (C9): canonical parity-check matrix
// construction, systematic-form transformation with resample-on-singular
// retry, and Patterson syndrome decoding. Grounded on the teacher's
// explicit, branchy control flow in ntru/keygen.go (loop-until-valid
// sampling with plain error returns, no panics) and on ntru/matop.go for
// the row/column matrix-building idiom.
package goppa

import (
	"pqccore/errs"
	"pqccore/field"
	"pqccore/matrix"
	"pqccore/permutation"
	"pqccore/polygf2m"
	"pqccore/rng"
	"pqccore/vector"
)

// MaMaPe holds the systematic-form triple (S^-1, M, P) produced by
// ComputeSystematicForm.
type MaMaPe struct {
	SInv *matrix.Matrix
	M    *matrix.Matrix
	P    *permutation.Permutation
}

// MatrixSet holds a generator matrix G together with the column index set J
// on which G's submatrix is the identity.
type MatrixSet struct {
	G *matrix.Matrix
	J []int
}

// CreateCanonicalCheckMatrix builds the t*m x n canonical parity-check
// matrix for the binary Goppa code defined by field f and monic Goppa
// polynomial g of degree t (n = f.Size()).
func CreateCanonicalCheckMatrix(f *field.Field, g polygf2m.Polynomial) (*matrix.Matrix, error) {
	t := g.Degree()
	if t <= 0 {
		return nil, errs.New(errs.InvalidInputError, "goppa polynomial must have positive degree, got %d", t)
	}
	m := f.Degree()
	n := f.Size()
	gc := g.Coefficients() // length t+1, gc[t] == 1 (monic)

	yz := make([][]int, t)
	for i := range yz {
		yz[i] = make([]int, n)
	}
	for j := 0; j < n; j++ {
		gj := g.EvaluateAt(j)
		inv, err := f.Inverse(gj)
		if err != nil {
			return nil, errs.Wrap(errs.ArithmeticError, err, "goppa polynomial has a root at field element %d", j)
		}
		yz[0][j] = inv
		for i := 1; i < t; i++ {
			yz[i][j] = f.Mult(j, yz[i-1][j])
		}
	}

	h := make([][]int, t)
	for i := range h {
		h[i] = make([]int, n)
	}
	for j := 0; j < n; j++ {
		for i := 0; i < t; i++ {
			acc := 0
			for k := 0; k <= i; k++ {
				coeffIdx := t + k - i
				if coeffIdx < 0 || coeffIdx >= len(gc) {
					continue
				}
				acc = f.Add(acc, f.Mult(yz[k][j], gc[coeffIdx]))
			}
			h[i][j] = acc
		}
	}

	out := matrix.New(t*m, n)
	for j := 0; j < n; j++ {
		for i := 0; i < t; i++ {
			e := h[i][j]
			for u := 0; u < m; u++ {
				if (e>>u)&1 == 1 {
					row := i*m + (m - 1 - u)
					out.Set(row, j, 1)
				}
			}
		}
	}
	return out, nil
}

// ComputeSystematicForm repeatedly samples a random column permutation P
// until H*P's left square submatrix is invertible, then returns
// (S^-1, M, P) with S the inverse of that submatrix and M the right
// submatrix of S*(H*P). The retry loop has no bound, matching the source's
// unbounded resample-on-singular behavior (the probability of a singular
// draw is bounded away from 1, so the expected length is geometric).
func ComputeSystematicForm(h *matrix.Matrix, src rng.Source) (*MaMaPe, error) {
	for {
		p := permutation.Random(h.Cols(), src)
		hPrime, err := h.RightMultiply(p)
		if err != nil {
			return nil, err
		}
		sInv, err := hPrime.LeftSubMatrix()
		if err != nil {
			return nil, err
		}
		s, err := sInv.Inverse()
		if err != nil {
			if errs.Is(err, errs.ArithmeticError) {
				continue
			}
			return nil, err
		}
		sh, err := s.Multiply(hPrime)
		if err != nil {
			return nil, err
		}
		mRight, err := sh.RightSubMatrix()
		if err != nil {
			return nil, err
		}
		return &MaMaPe{SInv: sInv, M: mRight, P: p}, nil
	}
}

// SyndromeDecode runs Patterson's algorithm: given the GF(2)-syndrome
// vector s (length t*m), the field, the Goppa polynomial g, and the
// square-root matrix built by ringgf2m for g, returns the length-n error
// vector. Fails with DecodingError if s does not correspond to a valid
// Goppa syndrome (the reconstructed syndrome polynomial is not invertible
// modulo g).
func SyndromeDecode(s *vector.Vector, f *field.Field, g polygf2m.Polynomial, sqrtMatrix []polygf2m.Polynomial) (*vector.Vector, error) {
	n := f.Size()
	if s.IsZero() {
		return vector.NewGF2(n), nil
	}

	elemVec, err := s.ToExtensionFieldVector(f)
	if err != nil {
		return nil, err
	}
	// CreateCanonicalCheckMatrix puts bit u of row block i at row
	// i*m + (m-1-u), and row block i carries the coefficient of X^(t-1-i);
	// undo both orderings to recover the syndrome polynomial.
	m := f.Degree()
	tm := elemVec.Len()
	coeffs := make([]int, tm)
	for i := 0; i < tm; i++ {
		e := elemVec.Elem(i)
		c := 0
		for u := 0; u < m; u++ {
			c |= ((e >> (m - 1 - u)) & 1) << u
		}
		coeffs[tm-1-i] = c
	}
	syndromePoly, err := polygf2m.New(f, coeffs)
	if err != nil {
		return nil, err
	}

	t, err := syndromePoly.ModInverse(g)
	if err != nil {
		return nil, errs.Wrap(errs.DecodingError, err, "syndrome is not a valid Goppa syndrome")
	}

	x := polygf2m.NewMonomial(f, 1)
	sum := t.Add(x)
	sumReduced, err := sum.Mod(g)
	if err != nil {
		return nil, err
	}
	tau := sumReduced.ModSquareRootMatrix(sqrtMatrix)

	a, b, err := tau.ModPolynomialToFraction(g)
	if err != nil {
		return nil, err
	}

	sigma := a.Multiply(a).Add(x.Multiply(b.Multiply(b)))
	if sigma.IsZero() {
		return nil, errs.New(errs.DecodingError, "error-locator polynomial is identically zero")
	}
	leadCoeffs := sigma.Coefficients()
	leadInv, err := f.Inverse(leadCoeffs[sigma.Degree()])
	if err != nil {
		return nil, err
	}
	sigmaNorm, err := sigma.MultWithElement(leadInv)
	if err != nil {
		return nil, err
	}

	errVec := vector.NewGF2(n)
	for j := 0; j < n; j++ {
		if sigmaNorm.EvaluateAt(j) == 0 {
			errVec.Bit(j)
		}
	}
	return errVec, nil
}

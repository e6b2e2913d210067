// Package ringgf2m implements PolynomialRingGF2m (C8): given a field F and a
// monic Goppa polynomial g of degree t, builds the squaring matrix (column j
// holds (X^j)^2 mod g) and its inverse, the square-root matrix, consumed by
// polygf2m's ModSquareRootMatrix during Patterson decoding. Grounded on
// ntru/ring.go's BuildRings factory: one validating constructor returning a
// small set of derived structures built once and reused read-only.
package ringgf2m

import (
	"pqccore/errs"
	"pqccore/field"
	"pqccore/polygf2m"
)

// Ring holds the quotient ring GF(2^m)[X]/g together with its precomputed
// squaring and square-root matrices.
type Ring struct {
	field      *field.Field
	modulus    polygf2m.Polynomial
	degree     int
	squaring   []polygf2m.Polynomial
	sqrtMatrix []polygf2m.Polynomial
}

// Build constructs the ring GF(2^m)[X]/g. Fails with InvalidInputError if g
// is not a positive-degree polynomial, or with ArithmeticError if the
// squaring matrix turns out singular (which cannot happen for g irreducible,
// but is not assumed here).
func Build(f *field.Field, g polygf2m.Polynomial) (*Ring, error) {
	t := g.Degree()
	if t <= 0 {
		return nil, errs.New(errs.InvalidInputError, "goppa polynomial must have positive degree, got %d", t)
	}

	squaring := make([]polygf2m.Polynomial, t)
	for j := 0; j < t; j++ {
		xj := polygf2m.NewMonomial(f, j)
		sq, err := xj.ModMultiply(xj, g)
		if err != nil {
			return nil, err
		}
		squaring[j] = sq
	}

	sqrtMatrix, err := invertColumns(f, squaring, t)
	if err != nil {
		return nil, err
	}

	return &Ring{
		field:      f,
		modulus:    g,
		degree:     t,
		squaring:   squaring,
		sqrtMatrix: sqrtMatrix,
	}, nil
}

// Field returns the ring's coefficient field.
func (r *Ring) Field() *field.Field { return r.field }

// Modulus returns g.
func (r *Ring) Modulus() polygf2m.Polynomial { return r.modulus }

// Degree returns t = deg(g).
func (r *Ring) Degree() int { return r.degree }

// SquaringMatrix returns a defensive copy of the squaring matrix columns.
func (r *Ring) SquaringMatrix() []polygf2m.Polynomial {
	return append([]polygf2m.Polynomial(nil), r.squaring...)
}

// SquareRootMatrix returns a defensive copy of the square-root matrix
// columns, ready to pass to Polynomial.ModSquareRootMatrix.
func (r *Ring) SquareRootMatrix() []polygf2m.Polynomial {
	return append([]polygf2m.Polynomial(nil), r.sqrtMatrix...)
}

// invertColumns treats cols as the columns of a t x t matrix over f (column
// j's entries are its polynomial's coefficients 0..t-1, zero-extended) and
// returns the columns of its inverse, via Gauss-Jordan elimination with
// field-element pivoting.
func invertColumns(f *field.Field, cols []polygf2m.Polynomial, t int) ([]polygf2m.Polynomial, error) {
	aug := make([][]int, t)
	for i := 0; i < t; i++ {
		aug[i] = make([]int, 2*t)
		for j := 0; j < t; j++ {
			aug[i][j] = coeffAt(cols[j], i)
		}
		aug[i][t+i] = 1
	}

	for col := 0; col < t; col++ {
		pivot := -1
		for r := col; r < t; r++ {
			if aug[r][col] != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return nil, errs.New(errs.ArithmeticError, "squaring matrix is singular at column %d", col)
		}
		aug[pivot], aug[col] = aug[col], aug[pivot]

		inv, err := f.Inverse(aug[col][col])
		if err != nil {
			return nil, err
		}
		for c := 0; c < 2*t; c++ {
			aug[col][c] = f.Mult(aug[col][c], inv)
		}

		for r := 0; r < t; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for c := 0; c < 2*t; c++ {
				aug[r][c] = f.Add(aug[r][c], f.Mult(factor, aug[col][c]))
			}
		}
	}

	out := make([]polygf2m.Polynomial, t)
	for j := 0; j < t; j++ {
		coeffs := make([]int, t)
		for i := 0; i < t; i++ {
			coeffs[i] = aug[i][t+j]
		}
		p, err := polygf2m.New(f, coeffs)
		if err != nil {
			return nil, err
		}
		out[j] = p
	}
	return out, nil
}

func coeffAt(p polygf2m.Polynomial, i int) int {
	c := p.Coefficients()
	if i < len(c) {
		return c[i]
	}
	return 0
}

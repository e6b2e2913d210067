package ringgf2m

import (
	"testing"

	"pqccore/field"
	"pqccore/polygf2m"
)

func mustField(t *testing.T, m, poly int) *field.Field {
	f, err := field.NewField(m, poly)
	if err != nil {
		t.Fatalf("NewField(%d,0x%x): %v", m, poly, err)
	}
	return f
}

// findIrreducibleMonic mirrors polygf2m's own test helper: it is rebuilt
// here rather than exported, since it is only ever needed to seed a test
// modulus.
func findIrreducibleMonic(t *testing.T, f *field.Field, degree int) polygf2m.Polynomial {
	t.Helper()
	size := f.Size()
	coeffs := make([]int, degree+1)
	coeffs[degree] = 1
	var rec func(i int) polygf2m.Polynomial
	rec = func(i int) polygf2m.Polynomial {
		if i < 0 {
			p, _ := polygf2m.New(f, append([]int(nil), coeffs...))
			if p.IsIrreducible() {
				return p
			}
			return polygf2m.Polynomial{}
		}
		for v := 0; v < size; v++ {
			coeffs[i] = v
			if p := rec(i - 1); p.Field() != nil {
				return p
			}
		}
		coeffs[i] = 0
		return polygf2m.Polynomial{}
	}
	p := rec(degree - 1)
	if p.Field() == nil {
		t.Fatalf("no irreducible degree-%d polynomial found over field size %d", degree, size)
	}
	return p
}

func TestSquareRootMatrixInvertsSquaring(t *testing.T) {
	f := mustField(t, 4, field.DefaultPolynomial(4))
	g := findIrreducibleMonic(t, f, 3)
	r, err := Build(f, g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	sqrtMatrix := r.SquareRootMatrix()

	for _, coeffs := range [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {3, 5, 2}, {7, 0, 4}} {
		p, err := polygf2m.New(f, coeffs)
		if err != nil {
			t.Fatal(err)
		}
		sq, err := p.ModMultiply(p, g)
		if err != nil {
			t.Fatal(err)
		}
		got := sq.ModSquareRootMatrix(sqrtMatrix)
		if !got.Equal(p) {
			t.Fatalf("square-root matrix did not invert squaring for %v: got %v", coeffs, got.Coefficients())
		}
	}
}

func TestBuildRejectsNonPositiveDegree(t *testing.T) {
	f := mustField(t, 4, field.DefaultPolynomial(4))
	zero := polygf2m.NewZero(f)
	if _, err := Build(f, zero); err == nil {
		t.Fatal("expected InvalidInputError for zero-degree modulus")
	}
}

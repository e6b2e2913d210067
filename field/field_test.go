package field

import (
	"testing"

	"pqccore/rng"
)

// GF(8) sanity, spec.md §8 scenario 1: m=3, poly=X^3+X+1 (0b1011=11).
func TestGF8Sanity(t *testing.T) {
	f, err := NewField(3, 0xB)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	if got := f.Mult(3, 5); got != 4 {
		t.Fatalf("Mult(3,5) = %d, want 4", got)
	}
	inv, err := f.Inverse(3)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if inv != 6 {
		t.Fatalf("Inverse(3) = %d, want 6", inv)
	}
	// 5 = X^6 = (X^3)^2 and X^3 = X+1 = 3, so the square root of 5 is 3.
	if got := f.SqRoot(5); got != 3 {
		t.Fatalf("SqRoot(5) = %d, want 3", got)
	}
}

func TestMultInverseIdentity(t *testing.T) {
	for _, m := range []int{2, 3, 4, 8, 11} {
		f, err := NewDefaultField(m)
		if err != nil {
			t.Fatalf("NewDefaultField(%d): %v", m, err)
		}
		for a := 1; a < f.Size(); a++ {
			inv, err := f.Inverse(a)
			if err != nil {
				t.Fatalf("m=%d Inverse(%d): %v", m, a, err)
			}
			if got := f.Mult(a, inv); got != 1 {
				t.Fatalf("m=%d Mult(%d, inverse) = %d, want 1", m, a, got)
			}
		}
	}
}

func TestMultCommutative(t *testing.T) {
	f, err := NewDefaultField(5)
	if err != nil {
		t.Fatal(err)
	}
	for a := 0; a < f.Size(); a++ {
		for b := 0; b < f.Size(); b++ {
			if f.Mult(a, b) != f.Mult(b, a) {
				t.Fatalf("Mult not commutative at (%d,%d)", a, b)
			}
		}
	}
}

func TestInverseOfZeroFails(t *testing.T) {
	f, err := NewDefaultField(4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Inverse(0); err == nil {
		t.Fatal("expected error inverting zero")
	}
}

func TestConstructOutOfRangeDegree(t *testing.T) {
	if _, err := NewDefaultField(1); err == nil {
		t.Fatal("expected ConfigError for m=1")
	}
	if _, err := NewDefaultField(32); err == nil {
		t.Fatal("expected ConfigError for m=32")
	}
}

func TestSolveQuadratic(t *testing.T) {
	f, err := NewDefaultField(4)
	if err != nil {
		t.Fatal(err)
	}
	for c := 0; c < f.Size(); c++ {
		x, ok := f.SolveQuadratic(c)
		if !ok {
			continue
		}
		if got := f.Add(f.Mult(x, x), x); got != c {
			t.Fatalf("SolveQuadratic(%d) = %d, but x^2+x = %d", c, x, got)
		}
	}
}

func TestRandomElementInField(t *testing.T) {
	f, err := NewDefaultField(6)
	if err != nil {
		t.Fatal(err)
	}
	src := rng.FromSeed(1)
	for i := 0; i < 100; i++ {
		if e := f.RandomElement(src); !f.IsElementOfThisField(e) {
			t.Fatalf("random element %d outside field", e)
		}
		if e := f.RandomNonzeroElement(src); e == 0 || !f.IsElementOfThisField(e) {
			t.Fatalf("random nonzero element invalid: %d", e)
		}
	}
}

func TestFieldEquality(t *testing.T) {
	a, _ := NewField(3, 0xB)
	b, _ := NewField(3, 0xB)
	c, _ := NewField(3, 0xD)
	if !a.Equal(b) {
		t.Fatal("identical (m,poly) fields should be equal")
	}
	if a.Equal(c) {
		t.Fatal("distinct polynomials should not be equal")
	}
}

package matrix

import (
	"testing"

	"pqccore/permutation"
)

func TestSetGetRoundTrip(t *testing.T) {
	m := New(3, 40)
	m.Set(0, 0, 1)
	m.Set(1, 39, 1)
	m.Set(2, 20, 1)
	if m.Get(0, 0) != 1 || m.Get(1, 39) != 1 || m.Get(2, 20) != 1 {
		t.Fatal("bit round-trip failed")
	}
	if m.Get(0, 1) != 0 || m.Get(1, 38) != 0 {
		t.Fatal("unset bits should read zero")
	}
}

func TestIdentityInverse(t *testing.T) {
	id := Identity(5)
	inv, err := id.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if !inv.Equal(id) {
		t.Fatal("identity should be its own inverse")
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := New(4, 4)
	bits := [4][4]int{
		{1, 1, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 1},
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, bits[i][j])
		}
	}
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	prod := multiplySquare(m, inv)
	if !prod.Equal(Identity(4)) {
		t.Fatalf("m * m^-1 != I, got %v", prod)
	}
}

func TestInverseSingularFails(t *testing.T) {
	m := New(3, 3)
	m.Set(0, 0, 1)
	m.Set(1, 0, 1) // row 1 == row 0, singular
	if _, err := m.Inverse(); err == nil {
		t.Fatal("expected ArithmeticError for singular matrix")
	}
}

func TestRightMultiplyPermutesColumns(t *testing.T) {
	m := New(2, 3)
	m.Set(0, 0, 1)
	m.Set(0, 1, 0)
	m.Set(0, 2, 1)
	p, _ := permutation.FromArray([]int{2, 0, 1})
	out, err := m.RightMultiply(p)
	if err != nil {
		t.Fatal(err)
	}
	for j := 0; j < 3; j++ {
		if out.Get(0, j) != m.Get(0, p.At(j)) {
			t.Fatalf("column %d mismatch", j)
		}
	}
}

func TestSubMatrixSplit(t *testing.T) {
	m := New(2, 5)
	for j := 0; j < 5; j++ {
		m.Set(0, j, j%2)
		m.Set(1, j, (j+1)%2)
	}
	left, err := m.LeftSubMatrix()
	if err != nil {
		t.Fatal(err)
	}
	right, err := m.RightSubMatrix()
	if err != nil {
		t.Fatal(err)
	}
	if left.Cols() != 2 || right.Cols() != 3 {
		t.Fatalf("unexpected split widths: left=%d right=%d", left.Cols(), right.Cols())
	}
	joined, err := ConcatIdentityRight(left, right)
	if err != nil {
		t.Fatal(err)
	}
	if !joined.Equal(m) {
		t.Fatal("[left | right] should reconstruct original matrix")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := New(3, 40)
	m.Set(0, 0, 1)
	m.Set(1, 39, 1)
	m.Set(2, 20, 1)
	buf := m.Encoded()
	got, err := Decode(40, buf)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(m) {
		t.Fatal("decoded matrix differs from original")
	}
}

func TestLeftMultiply(t *testing.T) {
	m := New(2, 3)
	m.Set(0, 0, 1)
	m.Set(0, 2, 1)
	m.Set(1, 1, 1)
	v := []uint32{0b101} // bits 0 and 2 set, bit 1 clear
	got := m.LeftMultiply(v)
	// row 0 = [1,0,1] . [1,0,1] = 1^0^1 = 0
	// row 1 = [0,1,0] . [1,0,1] = 0
	if got[0] != 0 {
		t.Fatalf("LeftMultiply result = %b, want 0", got[0])
	}

	v2 := []uint32{0b010} // only bit 1 set
	got2 := m.LeftMultiply(v2)
	// row 0 . v2 = 0, row 1 . v2 = 1
	if got2[0] != 0b10 {
		t.Fatalf("LeftMultiply result = %b, want bit 1 set", got2[0])
	}
}

func multiplySquare(a, b *Matrix) *Matrix {
	n := a.Rows()
	out := New(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			acc := 0
			for k := 0; k < n; k++ {
				acc ^= a.Get(i, k) & b.Get(k, j)
			}
			out.Set(i, j, acc)
		}
	}
	return out
}

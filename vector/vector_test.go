package vector

import (
	"testing"

	"pqccore/field"
	"pqccore/permutation"
)

func TestGF2IsZero(t *testing.T) {
	v := NewGF2(10)
	if !v.IsZero() {
		t.Fatal("fresh GF2 vector should be zero")
	}
	v.Bit(3)
	if v.IsZero() {
		t.Fatal("vector with a set bit should not be zero")
	}
}

func TestGF2AddIsXor(t *testing.T) {
	a := NewGF2(8)
	a.Bit(0)
	a.Bit(5)
	b := NewGF2(8)
	b.Bit(5)
	b.Bit(7)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		want := 0
		if i == 0 || i == 7 {
			want = 1
		}
		if sum.GetBit(i) != want {
			t.Fatalf("bit %d = %d, want %d", i, sum.GetBit(i), want)
		}
	}
}

func TestGF2mAddFillsOpenQuestion(t *testing.T) {
	f, err := field.NewField(4, field.DefaultPolynomial(4))
	if err != nil {
		t.Fatal(err)
	}
	a, err := NewGF2mFromElements(f, []int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGF2mFromElements(f, []int{4, 2, 5})
	if err != nil {
		t.Fatal(err)
	}
	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{f.Add(1, 4), f.Add(2, 2), f.Add(3, 5)}
	for i, w := range want {
		if sum.Elem(i) != w {
			t.Fatalf("elem %d = %d, want %d", i, sum.Elem(i), w)
		}
	}
	// field-element XOR, so a+a must be zero.
	zero, err := a.Add(a)
	if err != nil {
		t.Fatal(err)
	}
	if !zero.IsZero() {
		t.Fatal("a+a should be the zero GF2m vector")
	}
}

func TestAddRejectsMismatchedKindOrLength(t *testing.T) {
	f, _ := field.NewField(4, field.DefaultPolynomial(4))
	a := NewGF2(4)
	b, _ := NewGF2mFromElements(f, []int{1, 2, 3, 4})
	if _, err := a.Add(b); err == nil {
		t.Fatal("expected InvalidInputError for mismatched kinds")
	}
	c := NewGF2(5)
	if _, err := a.Add(c); err == nil {
		t.Fatal("expected InvalidInputError for mismatched lengths")
	}
}

func TestMultiplyByPermutationGF2(t *testing.T) {
	v := NewGF2(4)
	v.Bit(0)
	v.Bit(2)
	p, _ := permutation.FromArray([]int{3, 2, 1, 0})
	out, err := v.MultiplyByPermutation(p)
	if err != nil {
		t.Fatal(err)
	}
	inv := p.Invert()
	for i := 0; i < 4; i++ {
		if out.GetBit(i) != v.GetBit(inv.At(i)) {
			t.Fatalf("bit %d mismatch", i)
		}
	}
}

func TestMultiplyByPermutationGF2m(t *testing.T) {
	f, _ := field.NewField(4, field.DefaultPolynomial(4))
	v, _ := NewGF2mFromElements(f, []int{1, 2, 3, 4})
	p, _ := permutation.FromArray([]int{1, 0, 3, 2})
	out, err := v.MultiplyByPermutation(p)
	if err != nil {
		t.Fatal(err)
	}
	inv := p.Invert()
	for i := 0; i < 4; i++ {
		if out.Elem(i) != v.Elem(inv.At(i)) {
			t.Fatalf("elem %d mismatch", i)
		}
	}
}

func TestEncodedGF2RoundTripsViaWords(t *testing.T) {
	v := NewGF2(40)
	v.Bit(0)
	v.Bit(39)
	buf := v.Encoded()
	if buf.Len() != 8 {
		t.Fatalf("encoded length = %d, want 8", buf.Len())
	}
	data := buf.Bytes()
	if data[0]&1 != 1 {
		t.Fatal("bit 0 should appear in first byte")
	}
	if data[4]&0x80 != 0x80 {
		t.Fatal("bit 39 should appear as bit 7 of the last word's low byte")
	}
}

func TestToExtensionFieldVector(t *testing.T) {
	f, _ := field.NewField(4, field.DefaultPolynomial(4))
	v := NewGF2(8)
	// first nibble = 1011b = 0xB, set LSB-first as bits 0, 1 and 3
	v.Bit(0)
	v.Bit(1)
	v.Bit(3)
	// second nibble all zero
	out, err := v.ToExtensionFieldVector(f)
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 2 {
		t.Fatalf("length = %d, want 2", out.Len())
	}
	if out.Elem(0) != 0xB {
		t.Fatalf("elem 0 = %d, want %d", out.Elem(0), 0xB)
	}
	if out.Elem(1) != 0 {
		t.Fatalf("elem 1 = %d, want 0", out.Elem(1))
	}
}

func TestToExtensionFieldVectorRejectsBadLength(t *testing.T) {
	f, _ := field.NewField(4, field.DefaultPolynomial(4))
	v := NewGF2(5)
	if _, err := v.ToExtensionFieldVector(f); err == nil {
		t.Fatal("expected InvalidInputError for non-multiple length")
	}
}

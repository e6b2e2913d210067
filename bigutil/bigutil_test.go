package bigutil

import (
	"math/big"
	"testing"
)

func TestToIntArrayModQRoundTrip(t *testing.T) {
	n := big.NewInt(12345678901234)
	words, err := ToIntArrayModQ(n, 1<<20, 10, 6)
	if err != nil {
		t.Fatal(err)
	}
	got := FromIntArray(words, 10)
	want := new(big.Int).Mod(n, big.NewInt(1<<20))
	if got.Cmp(want) != 0 {
		t.Fatalf("round trip mismatch: got %v want %v", got, want)
	}
}

func TestToIntArrayModQTruncatedAgreesOnSmallQ(t *testing.T) {
	n := big.NewInt(9999999999)
	// q = 2048 fits a machine int, so the truncated and full reductions
	// must agree.
	words, err := ToIntArrayModQ(n, 2048, 11, 4)
	if err != nil {
		t.Fatal(err)
	}
	wordsTrunc, err := ToIntArrayModQTruncated(n, 2048, 11, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i := range words {
		if words[i] != wordsTrunc[i] {
			t.Fatalf("expected agreement for a modulus within int range: %v vs %v", words, wordsTrunc)
		}
	}
}

func TestToIntArrayModQRejectsNonPositiveModulus(t *testing.T) {
	if _, err := ToIntArrayModQ(big.NewInt(5), 0, 8, 4); err == nil {
		t.Fatal("expected InvalidInputError for zero modulus")
	}
}

func TestCompare(t *testing.T) {
	a := big.NewInt(3)
	b := big.NewInt(5)
	if Compare(a, b) >= 0 {
		t.Fatal("3 should compare less than 5")
	}
}

package byteutil

import "testing"

func TestXOR(t *testing.T) {
	got, err := XOR([]byte{0x0f, 0xf0}, []byte{0xff, 0xff})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xf0, 0x0f}
	if !Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestXORLengthMismatch(t *testing.T) {
	if _, err := XOR([]byte{1}, []byte{1, 2}); err == nil {
		t.Fatal("expected InvalidInputError")
	}
}

func TestHexRoundTrip(t *testing.T) {
	b := []byte{0xde, 0xad, 0xbe, 0xef}
	s := ToHex(b)
	got, err := FromHex(s)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(got, b) {
		t.Fatalf("round trip mismatch: got % x want % x", got, b)
	}
}

func TestFromHexRejectsInvalid(t *testing.T) {
	if _, err := FromHex("zz"); err == nil {
		t.Fatal("expected EncodingError for invalid hex")
	}
}

func TestSplitConcatRoundTrip(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5, 6, 7}
	chunks, err := Split(b, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 3 || len(chunks[2]) != 1 {
		t.Fatalf("unexpected chunking: %v", chunks)
	}
	if got := Concat(chunks...); !Equal(got, b) {
		t.Fatalf("concat(split(b)) != b: got % x want % x", got, b)
	}
}

func TestHashSHA3_256Deterministic(t *testing.T) {
	a := HashSHA3_256([]byte("goppa"))
	b := HashSHA3_256([]byte("goppa"))
	if !Equal(a, b) {
		t.Fatal("hash should be deterministic")
	}
	if len(a) != 32 {
		t.Fatalf("digest length = %d, want 32", len(a))
	}
}

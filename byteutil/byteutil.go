// Package byteutil implements ByteUtils (C12): byte-array primitives — XOR,
// hex encoding, split/concat, and a hash-bytes helper. The wire-format and
// parameter-serialization code in this module does not import it. Grounded on PIOP/fs_helpers.go's
// little-endian integer packing and DECS/merkle.go's use of
// golang.org/x/crypto/sha3 for hashing raw byte slices.
package byteutil

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"pqccore/errs"
)

// XOR returns a XOR b, failing with InvalidInputError on length mismatch.
func XOR(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, errs.New(errs.InvalidInputError, "length mismatch %d != %d", len(a), len(b))
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// ToHex returns the lowercase hex encoding of b.
func ToHex(b []byte) string { return hex.EncodeToString(b) }

// FromHex decodes a hex string, wrapping the standard library's error as
// an EncodingError.
func FromHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errs.Wrap(errs.EncodingError, err, "invalid hex string")
	}
	return b, nil
}

// Split divides b into chunks of the given size; the final chunk may be
// shorter. Fails with InvalidInputError if size <= 0.
func Split(b []byte, size int) ([][]byte, error) {
	if size <= 0 {
		return nil, errs.New(errs.InvalidInputError, "chunk size must be positive, got %d", size)
	}
	var out [][]byte
	for off := 0; off < len(b); off += size {
		end := off + size
		if end > len(b) {
			end = len(b)
		}
		out = append(out, append([]byte(nil), b[off:end]...))
	}
	return out, nil
}

// Concat joins chunks into a single slice.
func Concat(chunks ...[]byte) []byte {
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	out := make([]byte, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// HashSHA3_256 returns the SHA3-256 digest of b.
func HashSHA3_256(b []byte) []byte {
	sum := sha3.Sum256(b)
	return sum[:]
}

// HashSHA3_512 returns the SHA3-512 digest of b.
func HashSHA3_512(b []byte) []byte {
	sum := sha3.Sum512(b)
	return sum[:]
}

// Equal reports byte-slice equality without the short-circuit-on-length
// optimization masked out, matching the full-scan discipline used
// elsewhere in this module for array comparisons.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	diff := byte(0)
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

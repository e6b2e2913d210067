package polygf2m

import (
	"pqccore/bytebuf"
	"pqccore/errs"
	"pqccore/field"
)

// bytesPerElement returns ceil(m/8).
func bytesPerElement(f *field.Field) int {
	return (f.Degree() + 7) / 8
}

// Encoded packs p's coefficients into a Buffer: ceil(m/8) bytes per
// coefficient, little-endian within each coefficient, exponent ascending.
func (p Polynomial) Encoded() *bytebuf.Buffer {
	width := bytesPerElement(p.field)
	n := p.degree + 1
	if n < 1 {
		n = 1
	}
	buf := bytebuf.New(n * width)
	out := buf.Bytes()
	for i := 0; i < n; i++ {
		c := p.coeffs[i]
		for b := 0; b < width; b++ {
			out[i*width+b] = byte(c >> (8 * b))
		}
	}
	return buf
}

// Decode reconstructs a polynomial from its canonical byte encoding. Fails
// with EncodingError if the length is not a multiple of ceil(m/8), if any
// decoded coefficient is outside the field, or if the head coefficient is
// zero while more than one coefficient is present.
func Decode(f *field.Field, buf *bytebuf.Buffer) (Polynomial, error) {
	width := bytesPerElement(f)
	data := buf.Bytes()
	if width == 0 || len(data)%width != 0 || len(data) == 0 {
		return Polynomial{}, errs.New(errs.EncodingError, "byte length %d not a multiple of element width %d", len(data), width)
	}
	n := len(data) / width
	coeffs := make([]int, n)
	for i := 0; i < n; i++ {
		c := 0
		for b := width - 1; b >= 0; b-- {
			c = (c << 8) | int(data[i*width+b])
		}
		if !f.IsElementOfThisField(c) {
			return Polynomial{}, errs.New(errs.EncodingError, "decoded coefficient %d at index %d not in field", c, i)
		}
		coeffs[i] = c
	}
	if n > 1 && coeffs[n-1] == 0 {
		return Polynomial{}, errs.New(errs.EncodingError, "head coefficient is zero in a multi-coefficient encoding")
	}
	p := Polynomial{field: f, coeffs: coeffs}
	p.recomputeDegree()
	return p, nil
}

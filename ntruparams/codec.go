package ntruparams

import (
	"pqccore/bytebuf"
	"pqccore/digest"
	"pqccore/errs"
)

const numInt32Fields = 11 // N, Q, Df, Df1, Df2, Df3, Db, Dm0, C, MinCallsR, MinCallsMask

// Serialize packs p into its canonical wire form: eleven little-endian
// signed 32-bit fields (N, q, df, df1, df2, df3, db, dm0, c, minCallsR,
// minCallsMask), then hashSeed/oid/sparse/fastFp/polyType, then the digest
// algorithm name as a length-prefixed string.
func (p Params) Serialize() *bytebuf.Buffer {
	nameBytes := []byte(p.DigestName)
	size := numInt32Fields*4 + 1 + 3 + 1 + 1 + 4 + 4 + len(nameBytes)
	buf := bytebuf.New(size)
	out := buf.Bytes()
	off := 0

	putInt32 := func(v int) {
		putInt32LE(out[off:off+4], v)
		off += 4
	}
	putInt32(p.N)
	putInt32(p.Q)
	putInt32(p.Df)
	putInt32(p.Df1)
	putInt32(p.Df2)
	putInt32(p.Df3)
	putInt32(p.Db)
	putInt32(p.Dm0)
	putInt32(p.C)
	putInt32(p.MinCallsR)
	putInt32(p.MinCallsMask)

	out[off] = boolByte(p.HashSeed)
	off++
	copy(out[off:off+3], p.Oid[:])
	off += 3
	out[off] = boolByte(p.Sparse)
	off++
	out[off] = boolByte(p.FastFp)
	off++

	putInt32(int(p.PolyType))
	putInt32(len(nameBytes))
	copy(out[off:off+len(nameBytes)], nameBytes)
	off += len(nameBytes)

	return buf
}

// Deserialize reconstructs a Params from its canonical wire form. factory
// resolves the stored digest algorithm name back to a digest instance, used
// only to validate the name and recover its bit size; the instance itself
// is discarded once DigestSizeBits is known.
func Deserialize(buf *bytebuf.Buffer, factory digest.Factory) (Params, error) {
	data := buf.Bytes()
	minLen := numInt32Fields*4 + 1 + 3 + 1 + 1 + 4 + 4
	if len(data) < minLen {
		return Params{}, errs.New(errs.EncodingError, "buffer too short: %d bytes, want at least %d", len(data), minLen)
	}
	off := 0
	getInt32 := func() int {
		v := int(getInt32LE(data[off : off+4]))
		off += 4
		return v
	}

	n := getInt32()
	q := getInt32()
	df := getInt32()
	df1 := getInt32()
	df2 := getInt32()
	df3 := getInt32()
	db := getInt32()
	dm0 := getInt32()
	c := getInt32()
	minCallsR := getInt32()
	minCallsMask := getInt32()

	hashSeed := data[off] != 0
	off++
	var oid OID
	copy(oid[:], data[off:off+3])
	off += 3
	sparse := data[off] != 0
	off++
	fastFp := data[off] != 0
	off++

	polyType := PolyType(getInt32())
	nameLen := getInt32()
	if nameLen < 0 || off+nameLen > len(data) {
		return Params{}, errs.New(errs.EncodingError, "invalid digest name length %d", nameLen)
	}
	name := string(data[off : off+nameLen])
	off += nameLen

	d, err := factory(name)
	if err != nil {
		return Params{}, errs.Wrap(errs.EncodingError, err, "unknown digest algorithm %q", name)
	}
	digestSizeBits := d.Size() * 8

	switch polyType {
	case Simple:
		return NewSimple(n, q, df, dm0, db, c, minCallsR, minCallsMask, hashSeed, oid, sparse, fastFp, name, digestSizeBits)
	case Product:
		return NewProduct(n, q, df1, df2, df3, dm0, db, c, minCallsR, minCallsMask, hashSeed, oid, sparse, fastFp, name, digestSizeBits)
	default:
		return Params{}, errs.New(errs.ConfigError, "unknown polyType %d", polyType)
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func putInt32LE(b []byte, v int) {
	u := uint32(int32(v))
	b[0] = byte(u)
	b[1] = byte(u >> 8)
	b[2] = byte(u >> 16)
	b[3] = byte(u >> 24)
}

func getInt32LE(b []byte) int32 {
	return int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}

// Package ntruparams implements the NTRU parameter block (C10): a model of
// the invariants governing NTRUEncrypt key-generation and encryption
// buffer sizing. The key-generation and polynomial-multiplication engine
// itself is a peer system (see the top-level ntru package and
// ntru/contract.go's adapter) — this package only carries the parameter
// model and its canonical serialization.
//
// Grounded on ntru/params.go's validating-constructor-plus-derived-fields
// shape and ntru/presets.go's PresetXxx() family for the predefined sets.
package ntruparams

import (
	"pqccore/errs"
)

// PolyType selects which of the two polynomial shapes a parameter block
// uses for the private-key component f.
type PolyType int

const (
	// Simple selects a single ternary polynomial of weight Df.
	Simple PolyType = iota
	// Product selects a product-form polynomial f = f1*f2 + f3 of weights
	// Df1, Df2, Df3.
	Product
)

func (t PolyType) String() string {
	if t == Product {
		return "PRODUCT"
	}
	return "SIMPLE"
}

// OID is a 3-byte object identifier tagging a named parameter set.
type OID [3]byte

// Params is an NTRU parameter block: primary inputs plus every field
// derived from them. Derived fields are recomputed from the primary
// inputs at construction time and never mutated afterward.
type Params struct {
	N, Q                                int
	Df, Df1, Df2, Df3                   int
	Dm0, Db, C, MinCallsR, MinCallsMask int
	HashSeed, Sparse, FastFp            bool
	PolyType                            PolyType
	Oid                                 OID
	DigestName                          string
	DigestSizeBits                      int

	// Derived.
	Dr, Dr1, Dr2, Dr3 int
	Dg                int
	Llen              int
	MaxMsgLenBytes    int
	BufferLenBits     int
	BufferLenTrits    int
	PkLen             int
}

type common struct {
	N, Q                                int
	Dm0, Db, C, MinCallsR, MinCallsMask int
	HashSeed, Sparse, FastFp             bool
	Oid                                  OID
	DigestName                           string
	DigestSizeBits                       int
}

func (c common) validate() error {
	if c.N <= 0 {
		return errs.New(errs.ConfigError, "N must be positive, got %d", c.N)
	}
	if c.Q <= 1 {
		return errs.New(errs.ConfigError, "q must be greater than 1, got %d", c.Q)
	}
	if c.Db <= 0 || c.Db%8 != 0 {
		return errs.New(errs.ConfigError, "db must be a positive multiple of 8, got %d", c.Db)
	}
	if c.DigestSizeBits != 256 && c.DigestSizeBits != 512 {
		return errs.New(errs.ConfigError, "digest size must be 256 or 512 bits, got %d", c.DigestSizeBits)
	}
	if c.DigestName == "" {
		return errs.New(errs.ConfigError, "digest algorithm name must not be empty")
	}
	return nil
}

// NewSimple builds a SIMPLE-form parameter block from a single private-key
// weight df.
func NewSimple(n, q, df, dm0, db, c, minCallsR, minCallsMask int, hashSeed bool, oid OID, sparse, fastFp bool, digestName string, digestSizeBits int) (Params, error) {
	base := common{N: n, Q: q, Dm0: dm0, Db: db, C: c, MinCallsR: minCallsR, MinCallsMask: minCallsMask, HashSeed: hashSeed, Sparse: sparse, FastFp: fastFp, Oid: oid, DigestName: digestName, DigestSizeBits: digestSizeBits}
	if err := base.validate(); err != nil {
		return Params{}, err
	}
	if df <= 0 {
		return Params{}, errs.New(errs.ConfigError, "df must be positive, got %d", df)
	}
	p := Params{N: n, Q: q, Df: df, Dm0: dm0, Db: db, C: c, MinCallsR: minCallsR, MinCallsMask: minCallsMask,
		HashSeed: hashSeed, Sparse: sparse, FastFp: fastFp, PolyType: Simple, Oid: oid, DigestName: digestName, DigestSizeBits: digestSizeBits}
	p.deriveFields()
	return p, nil
}

// NewProduct builds a PRODUCT-form parameter block from three private-key
// weights df1, df2, df3 (f = f1*f2 + f3).
func NewProduct(n, q, df1, df2, df3, dm0, db, c, minCallsR, minCallsMask int, hashSeed bool, oid OID, sparse, fastFp bool, digestName string, digestSizeBits int) (Params, error) {
	base := common{N: n, Q: q, Dm0: dm0, Db: db, C: c, MinCallsR: minCallsR, MinCallsMask: minCallsMask, HashSeed: hashSeed, Sparse: sparse, FastFp: fastFp, Oid: oid, DigestName: digestName, DigestSizeBits: digestSizeBits}
	if err := base.validate(); err != nil {
		return Params{}, err
	}
	if df1 <= 0 || df2 <= 0 || df3 <= 0 {
		return Params{}, errs.New(errs.ConfigError, "df1, df2, df3 must be positive, got %d, %d, %d", df1, df2, df3)
	}
	p := Params{N: n, Q: q, Df1: df1, Df2: df2, Df3: df3, Dm0: dm0, Db: db, C: c, MinCallsR: minCallsR, MinCallsMask: minCallsMask,
		HashSeed: hashSeed, Sparse: sparse, FastFp: fastFp, PolyType: Product, Oid: oid, DigestName: digestName, DigestSizeBits: digestSizeBits}
	p.deriveFields()
	return p, nil
}

func (p *Params) deriveFields() {
	switch p.PolyType {
	case Simple:
		p.Dr = p.Df
	case Product:
		p.Dr1, p.Dr2, p.Dr3 = p.Df1, p.Df2, p.Df3
	}
	p.Dg = p.N / 3
	p.Llen = 1
	p.MaxMsgLenBytes = (3*p.N)/16 - p.Llen - p.Db/8 - 1
	p.BufferLenBits = 8*ceilDiv(3*p.N/2+7, 8) + 1
	p.BufferLenTrits = p.N - 1
	p.PkLen = p.Db
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// RingShape is the narrow contract this parameter block shares with the
// peer NTRU lattice engine (see ntru/contract.go): just enough for the two
// systems to cross-check that they describe rings of compatible shape,
// without the parameter block depending on the engine's types.
type RingShape interface {
	RingDegree() int
	RingModulus() int64
}

// RingDegree implements RingShape.
func (p Params) RingDegree() int { return p.N }

// RingModulus implements RingShape.
func (p Params) RingModulus() int64 { return int64(p.Q) }

var _ RingShape = Params{}

// Clone returns a value copy, which carries every primary input and every
// derived value (Params holds no reference-typed fields).
func (p Params) Clone() Params { return p }

// Equal compares every primary and derived field, plus the digest
// algorithm name.
func (p Params) Equal(other Params) bool {
	return p.N == other.N && p.Q == other.Q &&
		p.Df == other.Df && p.Df1 == other.Df1 && p.Df2 == other.Df2 && p.Df3 == other.Df3 &&
		p.Dm0 == other.Dm0 && p.Db == other.Db && p.C == other.C &&
		p.MinCallsR == other.MinCallsR && p.MinCallsMask == other.MinCallsMask &&
		p.HashSeed == other.HashSeed && p.Sparse == other.Sparse && p.FastFp == other.FastFp &&
		p.PolyType == other.PolyType && p.Oid == other.Oid &&
		p.DigestName == other.DigestName && p.DigestSizeBits == other.DigestSizeBits &&
		p.Dr == other.Dr && p.Dr1 == other.Dr1 && p.Dr2 == other.Dr2 && p.Dr3 == other.Dr3 &&
		p.Dg == other.Dg && p.Llen == other.Llen && p.MaxMsgLenBytes == other.MaxMsgLenBytes &&
		p.BufferLenBits == other.BufferLenBits && p.BufferLenTrits == other.BufferLenTrits && p.PkLen == other.PkLen
}

// Hash combines every attribute into an order-independent 64-bit digest:
// each field is folded in via XOR after multiplication by a distinct
// per-field odd constant, so the result does not depend on the order in
// which fields happen to be visited.
func (p Params) Hash() uint64 {
	var h uint64
	mix := func(v uint64, salt uint64) {
		v *= salt
		v ^= v >> 33
		h ^= v
	}
	mixInt := func(v int, salt uint64) { mix(uint64(int64(v)), salt) }
	mixBool := func(v bool, salt uint64) {
		if v {
			mix(1, salt)
		}
	}

	mixInt(p.N, 0x9E3779B185EBCA87)
	mixInt(p.Q, 0xC2B2AE3D27D4EB4F)
	mixInt(p.Df, 0x165667B19E3779F9)
	mixInt(p.Df1, 0x27D4EB2F165667C5)
	mixInt(p.Df2, 0x2545F4914F6CDD1D)
	mixInt(p.Df3, 0xFF51AFD7ED558CCD)
	mixInt(p.Dm0, 0xC4CEB9FE1A85EC53)
	mixInt(p.Db, 0xD6E8FEB86659FD93)
	mixInt(p.C, 0xA0761D6478BD642F)
	mixInt(p.MinCallsR, 0xE7037ED1A0B428DB)
	mixInt(p.MinCallsMask, 0x8EBC6AF09C88C6E3)
	mixBool(p.HashSeed, 0x589965CC75374CC3)
	mixBool(p.Sparse, 0x1D8E4E27C47D124F)
	mixBool(p.FastFp, 0xEB44ACCAB455D165)
	mixInt(int(p.PolyType), 0x2127599BF4325C37)
	for _, b := range p.Oid {
		mixInt(int(b), 0x9E3779B97F4A7C15)
	}
	for _, b := range []byte(p.DigestName) {
		mixInt(int(b), 0xBF58476D1CE4E5B9)
	}
	mixInt(p.DigestSizeBits, 0x94D049BB133111EB)

	return h
}

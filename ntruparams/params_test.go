package ntruparams

import (
	"errors"
	"testing"

	"pqccore/digest"
)

// TestAPR2011_439Values checks spec.md scenario 5's bit-exact tuple.
func TestAPR2011_439Values(t *testing.T) {
	p, err := PresetAPR2011_439()
	if err != nil {
		t.Fatal(err)
	}
	if p.N != 439 || p.Q != 2048 || p.Df != 146 || p.Dm0 != 130 || p.Db != 128 {
		t.Fatalf("unexpected primary fields: %+v", p)
	}
	if p.C != 9 || p.MinCallsR != 32 || p.MinCallsMask != 9 {
		t.Fatalf("unexpected call-count fields: %+v", p)
	}
	if p.PolyType != Simple {
		t.Fatalf("polyType = %v, want SIMPLE", p.PolyType)
	}
	wantOID := OID{0x00, 0x07, 0x65}
	if p.Oid != wantOID {
		t.Fatalf("oid = %v, want %v", p.Oid, wantOID)
	}
	if p.MaxMsgLenBytes != 64 {
		t.Fatalf("maxMsgLenBytes = %d, want 64", p.MaxMsgLenBytes)
	}
}

func TestSerializeDeserializeRoundTripVerifiedPreset(t *testing.T) {
	p, err := PresetAPR2011_439()
	if err != nil {
		t.Fatal(err)
	}
	buf := p.Serialize()
	got, err := Deserialize(buf, digest.DefaultFactory)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !got.Equal(p) {
		t.Fatalf("round trip mismatch for N=%d: got %+v want %+v", p.N, got, p)
	}
}

// TestUnverifiedPresetsReportTheirOwnUncertainty checks that every named
// preset besides APR2011_439 refuses to fabricate a parameter block,
// rather than silently returning a guessed tuple.
func TestUnverifiedPresetsReportTheirOwnUncertainty(t *testing.T) {
	ctors := map[string]func() (Params, error){
		"APR2011_439_FAST": PresetAPR2011_439_FAST,
		"APR2011_743":      PresetAPR2011_743,
		"APR2011_743_FAST": PresetAPR2011_743_FAST,
		"EES1087EP2":       PresetEES1087EP2,
		"EES1171EP1":       PresetEES1171EP1,
		"EES1499EP1":       PresetEES1499EP1,
		"EES1499EP1_EXT":   PresetEES1499EP1_EXT,
	}
	for name, ctor := range ctors {
		if _, err := ctor(); !errors.Is(err, ErrUnverifiedPreset) {
			t.Fatalf("%s: got err %v, want ErrUnverifiedPreset", name, err)
		}
	}
}

func TestEqualAndHashForIdenticalInputs(t *testing.T) {
	a, err := NewSimple(439, 2048, 146, 130, 128, 9, 32, 9, true, OID{0, 7, 0x65}, true, false, "SHA3-256", 256)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSimple(439, 2048, 146, 130, 128, 9, 32, 9, true, OID{0, 7, 0x65}, true, false, "SHA3-256", 256)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("identical primary inputs should produce equal parameter blocks")
	}
	if a.Hash() != b.Hash() {
		t.Fatal("identical parameter blocks should hash equal")
	}
}

func TestCloneReproducesDerivedFields(t *testing.T) {
	p, err := PresetAPR2011_439()
	if err != nil {
		t.Fatal(err)
	}
	c := p.Clone()
	if !c.Equal(p) {
		t.Fatal("clone should equal the original")
	}
}

func TestDeserializeRejectsUnknownDigest(t *testing.T) {
	p, err := PresetAPR2011_439()
	if err != nil {
		t.Fatal(err)
	}
	buf := p.Serialize()
	_, err = Deserialize(buf, func(name string) (digest.Digest, error) {
		return nil, errUnknownDigest(name)
	})
	if err == nil {
		t.Fatal("expected EncodingError for a factory that rejects every name")
	}
}

type digestNameError string

func (e digestNameError) Error() string { return "unknown digest: " + string(e) }

func errUnknownDigest(name string) error { return digestNameError(name) }

func TestConstructorRejectsOutOfRangeConfig(t *testing.T) {
	if _, err := NewSimple(0, 2048, 146, 130, 128, 9, 32, 9, true, OID{}, true, false, "SHA3-256", 256); err == nil {
		t.Fatal("expected ConfigError for N=0")
	}
	if _, err := NewSimple(439, 2048, 146, 130, 128, 9, 32, 9, true, OID{}, true, false, "SHA3-256", 123); err == nil {
		t.Fatal("expected ConfigError for invalid digest size")
	}
}

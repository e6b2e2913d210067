package ntruparams

import "pqccore/errs"

// Predefined NTRU parameter sets. Spec mandates eight named sets
// (EES1087EP2, EES1171EP1, EES1499EP1, EES1499EP1_EXT, APR2011_439,
// APR2011_439_FAST, APR2011_743, APR2011_743_FAST) as bit-exact constants
// reproduced verbatim. Only APR2011_439 is actually pinned here: its
// tuple is given by the scenario this core was validated against
// (maxMsgLenBytes derives to 64, matching that scenario exactly).
//
// The other seven have no source of truth in this pack to reproduce
// verbatim from — no original_source/ reference implementation ships
// their df/df1/df2/df3/dm0/db/c tuples, and guessing a plausible-looking
// tuple would misrepresent an unverified value as the bit-exact constant
// the parameter-block model requires. Rather than do that, their
// constructors here report ErrUnverifiedPreset instead of fabricating a
// Params value. An implementer with access to an authoritative NTRU
// specification should replace the relevant function body with the real
// constructor call once the tuple is sourced.
var ErrUnverifiedPreset = errs.New(errs.ConfigError, "preset has no authoritative source in this pack to reproduce bit-exact; not fabricated")

// PresetAPR2011_439 returns the SIMPLE-form set with ring degree N = 439.
func PresetAPR2011_439() (Params, error) {
	return NewSimple(439, 2048, 146, 130, 128, 9, 32, 9, true,
		OID{0x00, 0x07, 0x65}, true, false, "SHA3-256", 256)
}

// PresetAPR2011_439_FAST would return the PRODUCT-form, fast-multiplication
// variant of the ring-degree-439 set. Unverified: see the package
// comment above.
func PresetAPR2011_439_FAST() (Params, error) {
	return Params{}, ErrUnverifiedPreset
}

// PresetAPR2011_743 would return the SIMPLE-form set with ring degree
// N = 743. Unverified: see the package comment above.
func PresetAPR2011_743() (Params, error) {
	return Params{}, ErrUnverifiedPreset
}

// PresetAPR2011_743_FAST would return the PRODUCT-form, fast-multiplication
// variant of the ring-degree-743 set. Unverified: see the package
// comment above.
func PresetAPR2011_743_FAST() (Params, error) {
	return Params{}, ErrUnverifiedPreset
}

// PresetEES1087EP2 would return the PRODUCT-form 1087-degree parameter
// set. Unverified: see the package comment above.
func PresetEES1087EP2() (Params, error) {
	return Params{}, ErrUnverifiedPreset
}

// PresetEES1171EP1 would return the PRODUCT-form 1171-degree parameter
// set. Unverified: see the package comment above.
func PresetEES1171EP1() (Params, error) {
	return Params{}, ErrUnverifiedPreset
}

// PresetEES1499EP1 would return the PRODUCT-form 1499-degree parameter
// set. Unverified: see the package comment above.
func PresetEES1499EP1() (Params, error) {
	return Params{}, ErrUnverifiedPreset
}

// PresetEES1499EP1_EXT would return the fast-multiplication extension of
// the 1499-degree parameter set. Unverified: see the package comment
// above.
func PresetEES1499EP1_EXT() (Params, error) {
	return Params{}, ErrUnverifiedPreset
}

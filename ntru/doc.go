package ntru

// Package ntru carries the ring-shape surface of a peer NTRU lattice
// engine: the cyclotomic dimension N and modulus Q, plus the RNS-limb and
// parity knobs a signing engine would key off of. The trapdoor-sampling
// and signature machinery that would consume these parameters lives
// outside this core; only Params and the narrow RingShape contract it
// implements (see contract.go) are carried here, since that is all the
// NTRU parameter-block model in pqccore/ntruparams ever needs to
// cross-check against.

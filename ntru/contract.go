package ntru

import "pqccore/ntruparams"

// ParamsAdapter exposes this package's own Params (the lattice trapdoor
// engine's ring dimension and modulus) as an ntruparams.RingShape, the
// narrow contract shared with the NTRU parameter-block model in
// pqccore/ntruparams. The two packages describe different NTRU
// constructions — this engine's signing lattice versus the encryption
// parameter block's buffer-sizing model — and are deliberately kept
// decoupled; this adapter is the only bridge between them, used to
// cross-check that a chosen Params and a chosen ntruparams.Params describe
// rings of compatible shape before they are used together.
type ParamsAdapter struct {
	p Params
}

// AdaptParams wraps p as a RingShape.
func AdaptParams(p Params) ParamsAdapter { return ParamsAdapter{p: p} }

// RingDegree implements ntruparams.RingShape.
func (a ParamsAdapter) RingDegree() int { return a.p.N }

// RingModulus implements ntruparams.RingShape.
func (a ParamsAdapter) RingModulus() int64 {
	if a.p.Q == nil {
		return 0
	}
	return a.p.Q.Int64()
}

var _ ntruparams.RingShape = ParamsAdapter{}

// CompatibleRingShape reports whether a and b describe rings of the same
// degree and modulus, the minimal cross-check needed before sharing
// derived buffers between the two NTRU subsystems.
func CompatibleRingShape(a, b ntruparams.RingShape) bool {
	return a.RingDegree() == b.RingDegree() && a.RingModulus() == b.RingModulus()
}

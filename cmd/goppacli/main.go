// Command goppacli demonstrates an end-to-end binary Goppa code round trip:
// build the canonical check matrix for a small field, introduce errors,
// compute a syndrome, and decode it back to the original error positions.
package main

import (
	"flag"
	"fmt"
	"os"

	"pqccore/field"
	"pqccore/goppa"
	"pqccore/polygf2m"
	"pqccore/ringgf2m"
	"pqccore/rng"
	"pqccore/vector"
)

func main() {
	degree := flag.Int("m", 4, "GF(2^m) field degree")
	seed := flag.Int64("seed", 1, "deterministic seed for systematic-form sampling")
	errorsFlag := flag.String("errors", "3,11", "comma-separated bit positions to flip")
	flag.Parse()
	errBits := parseInts(*errorsFlag)

	f, err := field.NewField(*degree, field.DefaultPolynomial(*degree))
	if err != nil {
		fail("build field", err)
	}

	g := findIrreducibleQuadratic(f)
	if g.IsZero() {
		fail("find Goppa polynomial", fmt.Errorf("no irreducible X^2+X+alpha found for m=%d", *degree))
	}
	fmt.Printf("field GF(2^%d), Goppa polynomial degree %d\n", f.Degree(), g.Degree())

	h, err := goppa.CreateCanonicalCheckMatrix(f, g)
	if err != nil {
		fail("build check matrix", err)
	}
	fmt.Printf("canonical check matrix: %d x %d\n", h.Rows(), h.Cols())

	ring, err := ringgf2m.Build(f, g)
	if err != nil {
		fail("build squaring/square-root matrices", err)
	}

	e := vector.NewGF2(f.Size())
	for _, pos := range errBits {
		if pos < 0 || pos >= f.Size() {
			fail("flip bit", fmt.Errorf("position %d out of range [0,%d)", pos, f.Size()))
		}
		e.Bit(pos)
	}

	eWords := make([]uint32, (f.Size()+31)/32)
	for i := 0; i < f.Size(); i++ {
		if e.GetBit(i) == 1 {
			eWords[i/32] |= 1 << (uint(i) % 32)
		}
	}
	s := vector.NewGF2FromWords(h.Rows(), h.LeftMultiply(eWords))

	src := rng.FromSeed(*seed)
	triple, err := goppa.ComputeSystematicForm(h, src)
	if err != nil {
		fail("compute systematic form", err)
	}
	fmt.Printf("systematic form: S^-1 is %dx%d, M is %dx%d\n", triple.SInv.Rows(), triple.SInv.Cols(), triple.M.Rows(), triple.M.Cols())

	decoded, err := goppa.SyndromeDecode(s, f, g, ring.SquareRootMatrix())
	if err != nil {
		fail("decode syndrome", err)
	}

	fmt.Print("recovered error positions:")
	for i := 0; i < f.Size(); i++ {
		if decoded.GetBit(i) == 1 {
			fmt.Printf(" %d", i)
		}
	}
	fmt.Println()
}

func findIrreducibleQuadratic(f *field.Field) polygf2m.Polynomial {
	for alpha := 1; alpha < f.Size(); alpha++ {
		g, err := polygf2m.New(f, []int{alpha, 1, 1})
		if err != nil {
			continue
		}
		if g.IsIrreducible() {
			return g
		}
	}
	return polygf2m.NewZero(f)
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "goppacli: %s: %v\n", step, err)
	os.Exit(1)
}

func parseInts(s string) []int {
	var out []int
	cur := 0
	has := false
	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
			cur = cur*10 + int(ch-'0')
			has = true
		case ch == ',':
			if has {
				out = append(out, cur)
			}
			cur = 0
			has = false
		}
	}
	if has {
		out = append(out, cur)
	}
	return out
}

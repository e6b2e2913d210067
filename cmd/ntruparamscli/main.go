// Command ntruparamscli prints and round-trips a predefined NTRU
// parameter set by name, exercising Serialize/Deserialize and the
// derived-field computation end to end. Only APR2011_439 is verified
// bit-exact in this core; the other seven named sets intentionally
// report ntruparams.ErrUnverifiedPreset instead of a fabricated value
// (see ntruparams/presets.go).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"pqccore/digest"
	"pqccore/ntruparams"
)

var presets = map[string]func() (ntruparams.Params, error){
	"APR2011_439":      ntruparams.PresetAPR2011_439,
	"APR2011_439_FAST": ntruparams.PresetAPR2011_439_FAST,
	"APR2011_743":      ntruparams.PresetAPR2011_743,
	"APR2011_743_FAST": ntruparams.PresetAPR2011_743_FAST,
	"EES1087EP2":       ntruparams.PresetEES1087EP2,
	"EES1171EP1":       ntruparams.PresetEES1171EP1,
	"EES1499EP1":       ntruparams.PresetEES1499EP1,
	"EES1499EP1_EXT":   ntruparams.PresetEES1499EP1_EXT,
}

func main() {
	name := flag.String("set", "APR2011_439", "predefined parameter set name")
	flag.Parse()

	ctor, ok := presets[*name]
	if !ok {
		fmt.Fprintf(os.Stderr, "ntruparamscli: unknown set %q, valid sets:", *name)
		for n := range presets {
			fmt.Fprintf(os.Stderr, " %s", n)
		}
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}

	p, err := ctor()
	if err != nil {
		if errors.Is(err, ntruparams.ErrUnverifiedPreset) {
			fmt.Fprintf(os.Stderr, "%s is not bit-exact in this build: %v\n", *name, err)
			os.Exit(1)
		}
		fail("build preset", err)
	}
	printParams(*name, p)

	buf := p.Serialize()
	fmt.Printf("serialized: %d bytes\n", buf.Len())

	round, err := ntruparams.Deserialize(buf, digest.DefaultFactory)
	if err != nil {
		fail("deserialize", err)
	}
	if !round.Equal(p) {
		fail("round trip", fmt.Errorf("deserialized parameter block does not equal the original"))
	}
	if round.Hash() != p.Hash() {
		fail("round trip", fmt.Errorf("deserialized parameter block hashes differently"))
	}
	fmt.Println("round trip OK")
}

func printParams(name string, p ntruparams.Params) {
	fmt.Printf("%s: N=%d q=%d polyType=%s\n", name, p.N, p.Q, p.PolyType)
	if p.PolyType == ntruparams.Simple {
		fmt.Printf("  df=%d\n", p.Df)
	} else {
		fmt.Printf("  df1=%d df2=%d df3=%d\n", p.Df1, p.Df2, p.Df3)
	}
	fmt.Printf("  dm0=%d db=%d c=%d minCallsR=%d minCallsMask=%d\n", p.Dm0, p.Db, p.C, p.MinCallsR, p.MinCallsMask)
	fmt.Printf("  hashSeed=%v sparse=%v fastFp=%v oid=%x digest=%s (%d bits)\n", p.HashSeed, p.Sparse, p.FastFp, p.Oid, p.DigestName, p.DigestSizeBits)
	fmt.Printf("  derived: dg=%d maxMsgLenBytes=%d bufferLenBits=%d bufferLenTrits=%d pkLen=%d\n", p.Dg, p.MaxMsgLenBytes, p.BufferLenBits, p.BufferLenTrits, p.PkLen)
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "ntruparamscli: %s: %v\n", step, err)
	os.Exit(1)
}

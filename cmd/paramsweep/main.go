// Command paramsweep renders an interactive go-echarts bar chart showing
// how the NTRU parameter block's derived buffer sizes scale with the ring
// degree N, grounded on Additionnals/plot_pacs_sweep.go's page-plus-chart
// idiom (that file's scatter chart became this one's bar chart; a sweep
// over N takes the place of a sweep over proof-system parameters).
//
// The swept degrees are illustrative, not named parameter sets: only
// APR2011_439 (ntruparams.PresetAPR2011_439) is a verified, bit-exact
// NTRU parameter set in this core (see ntruparams/presets.go); every
// other degree here reuses that set's df/dm0/db/c/minCalls* fields
// purely to demonstrate how MaxMsgLenBytes/BufferLenBits/BufferLenTrits/
// PkLen move as N grows, not as a claim about a real NTRU deployment at
// that degree.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"pqccore/ntruparams"
)

// sweepDegrees are illustrative ring degrees around the one verified
// preset (439), used only to show how the derived buffer fields scale
// with N; they are not claims about real NTRU parameter sets.
var sweepDegrees = []int{439, 587, 743, 883, 1019}

func main() {
	outPath := flag.String("out", "ntru_param_sweep.html", "output HTML path")
	flag.Parse()

	base, err := ntruparams.PresetAPR2011_439()
	if err != nil {
		fmt.Fprintf(os.Stderr, "paramsweep: build base preset: %v\n", err)
		os.Exit(1)
	}

	var names []string
	var maxMsgLen, bufferBits, bufferTrits, pkLen []opts.BarData
	for _, n := range sweepDegrees {
		p, err := ntruparams.NewSimple(n, base.Q, base.Df, base.Dm0, base.Db, base.C,
			base.MinCallsR, base.MinCallsMask, base.HashSeed, base.Oid, base.Sparse, base.FastFp,
			base.DigestName, base.DigestSizeBits)
		if err != nil {
			fmt.Fprintf(os.Stderr, "paramsweep: N=%d: %v\n", n, err)
			os.Exit(1)
		}
		names = append(names, fmt.Sprintf("N=%d", n))
		maxMsgLen = append(maxMsgLen, opts.BarData{Value: p.MaxMsgLenBytes})
		bufferBits = append(bufferBits, opts.BarData{Value: p.BufferLenBits})
		bufferTrits = append(bufferTrits, opts.BarData{Value: p.BufferLenTrits})
		pkLen = append(pkLen, opts.BarData{Value: p.PkLen})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "NTRU parameter-block derived buffer sizes vs. ring degree",
			Subtitle: "illustrative sweep around the verified APR2011_439 preset, not named parameter sets",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "ring degree N"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "bytes / bits / trits"}),
	)
	bar.SetXAxis(names).
		AddSeries("maxMsgLenBytes", maxMsgLen).
		AddSeries("bufferLenBits", bufferBits).
		AddSeries("bufferLenTrits", bufferTrits).
		AddSeries("pkLen", pkLen)

	page := components.NewPage().SetPageTitle("NTRU Parameter Sweep")
	page.AddCharts(bar)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "paramsweep: create %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "paramsweep: render: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *outPath)
}

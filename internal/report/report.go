// Package report renders benchmark results, either as the compact
// human-readable console format or as standard `go test -bench` output
// text for ingestion by continuous-benchmarking tooling.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/royalcat/callbench/internal/model"
)

// StartSection prints the label that precedes a comparison's progress
// markers, e.g. "clock_gettime: ".
func StartSection(w io.Writer, label string) {
	fmt.Fprintf(w, "%s: ", label)
}

// WriteResults prints the per-operation result lines of a comparison,
// terminating the progress-marker line first:
//
//	clock_gettime: ..........
//	    syscall: 312 ns
//	    implicit: 18 ns
func WriteResults(w io.Writer, c model.Comparison) {
	fmt.Fprintln(w)
	for _, r := range c.Results {
		fmt.Fprintf(w, "    %s: %d ns\n", r.Name, r.BestNs)
	}
}

// WriteGoBench prints the report in the Go benchmark output format:
// goos/goarch/cpu header lines followed by one Benchmark line per
// measured operation. The iteration count is the total number of times
// the operation executed across the whole run.
func WriteGoBench(w io.Writer, rep model.Report) {
	fmt.Fprintf(w, "goos: %s\n", rep.Env.GOOS)
	fmt.Fprintf(w, "goarch: %s\n", rep.Env.GOARCH)
	fmt.Fprintf(w, "cpu: %s\n", rep.Env.CPU)
	for _, c := range rep.Comparisons {
		total := totalCalls(c.Params)
		for _, r := range c.Results {
			fmt.Fprintf(w, "%s\t%d\t%d ns/op\n", benchName(c.Label, r.Name), total, r.BestNs)
		}
	}
}

// totalCalls is calls*iters*reps, saturating at MaxUint64 rather than
// wrapping, so the emitted iteration count stays truthful for any
// accepted parameters.
func totalCalls(p model.Params) uint64 {
	total := p.Calls
	for _, f := range []uint64{p.Iters, p.Reps} {
		if f != 0 && total > math.MaxUint64/f {
			return math.MaxUint64
		}
		total *= f
	}
	return total
}

// benchName builds a Go benchmark identifier from a comparison label and
// an operation name: ("file read", "mmap") -> "BenchmarkFileReadMmap".
func benchName(label, name string) string {
	var b strings.Builder
	b.WriteString("Benchmark")
	for _, word := range strings.FieldsFunc(label+" "+name, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}) {
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}

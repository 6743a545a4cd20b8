// Package bench implements the calibrated timing loop and the two
// benchmark drivers built on it.
//
// The loop takes the minimum over repeated trials rather than a mean:
// scheduler preemption, interrupts and cache pollution only ever add
// latency, so the minimum converges toward the operation's unperturbed
// cost. Division by the call count happens only after the per-repetition
// minimum is taken, so a transient spike is never amortized into the
// per-call estimate.
package bench

import (
	"io"
	"math"
	"time"

	"github.com/royalcat/callbench/internal/clock"
	"github.com/royalcat/callbench/internal/model"
	"github.com/royalcat/callbench/internal/ops"
)

// Op is one measured unit of work. The set is closed: the four
// operations in the ops package are the only values ever passed in.
type Op func()

// Labels of the two comparisons, as they appear in output and reports.
const (
	TimeLabel = "clock_gettime"
	FileLabel = "file read"
)

// DefaultPause is how long the loop de-schedules itself between
// repetitions, so consecutive repetitions are less likely to share the
// same transient noise source.
const DefaultPause = 125 * time.Millisecond

// Documented defaults for the two driver modes. File operations cost
// orders of magnitude more per call than clock reads, hence far fewer
// calls per timed sample.
var (
	DefaultTimeParams = model.Params{Calls: 100_000, Iters: 32, Reps: 5}
	DefaultFileParams = model.Params{Calls: 100, Iters: 128, Reps: 5}
)

// Runner executes timing loops. The zero value runs silently with no
// inter-repetition pause, which is what tests want; the CLI sets
// Progress and Pause.
type Runner struct {
	Progress io.Writer     // receives one marker byte per repetition; nil discards
	Pause    time.Duration // sleep between repetitions

	now func() int64 // clock override for tests; nil means clock.Now
}

// Measure runs op calls×iters×reps times and returns the best-observed
// per-call latency in nanoseconds.
//
// Params.Calls must be >= 1 — config substitutes defaults before
// parameters reach this loop, and a zero value faults the division
// below. Any fault inside op propagates.
func (r *Runner) Measure(op Op, p model.Params) int64 {
	now := r.now
	if now == nil {
		now = clock.Now
	}

	bestOverReps := int64(math.MaxInt64)
	for rep := uint64(0); rep < p.Reps; rep++ {
		bestOverIters := int64(math.MaxInt64)
		for i := uint64(0); i < p.Iters; i++ {
			t0 := now()
			for call := uint64(0); call < p.Calls; call++ {
				op()
			}
			t1 := now()
			if sample := t1 - t0; sample < bestOverIters {
				bestOverIters = sample
			}
		}

		// Per-call cost for this repetition, truncating.
		perCall := bestOverIters / int64(p.Calls)
		if perCall < bestOverReps {
			bestOverReps = perCall
		}

		if r.Progress != nil {
			io.WriteString(r.Progress, ".")
		}
		if r.Pause > 0 {
			time.Sleep(r.Pause)
		}
	}

	return bestOverReps
}

// BenchTime measures the two clock-read operations with identical
// parameters and returns them as a labeled pair.
func (r *Runner) BenchTime(p model.Params) model.Comparison {
	return model.Comparison{
		Label:  TimeLabel,
		Params: p,
		Results: []model.Result{
			{Name: "syscall", BestNs: r.Measure(ops.ClockSyscall, p)},
			{Name: "implicit", BestNs: r.Measure(ops.ClockVDSO, p)},
		},
	}
}

// BenchFile measures the two file-read operations with identical
// parameters and returns them as a labeled pair.
func (r *Runner) BenchFile(p model.Params) model.Comparison {
	return model.Comparison{
		Label:  FileLabel,
		Params: p,
		Results: []model.Result{
			{Name: "mmap", BestNs: r.Measure(ops.MmapRead, p)},
			{Name: "read", BestNs: r.Measure(ops.FileRead, p)},
		},
	}
}

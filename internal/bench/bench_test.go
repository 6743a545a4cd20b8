package bench

import (
	"bytes"
	"testing"

	"github.com/royalcat/callbench/internal/model"
)

// scriptedClock returns a fake clock whose consecutive reading pairs
// bracket the given sample durations: the i-th timed sample observes
// exactly samples[i] nanoseconds.
func scriptedClock(samples []int64) func() int64 {
	var readings []int64
	var t int64
	for _, s := range samples {
		readings = append(readings, t, t+s)
		t += s
	}
	i := 0
	return func() int64 {
		r := readings[i]
		i++
		return r
	}
}

func TestMeasure_InvocationCount(t *testing.T) {
	var n uint64
	r := &Runner{}
	r.Measure(func() { n++ }, model.Params{Calls: 1000, Iters: 4, Reps: 1})
	if want := uint64(1000 * 4); n != want {
		t.Errorf("operation invoked %d times, want %d", n, want)
	}

	n = 0
	r.Measure(func() { n++ }, model.Params{Calls: 7, Iters: 3, Reps: 2})
	if want := uint64(7 * 3 * 2); n != want {
		t.Errorf("operation invoked %d times, want %d", n, want)
	}
}

func TestMeasure_NonNegative(t *testing.T) {
	r := &Runner{}
	got := r.Measure(func() {}, model.Params{Calls: 10, Iters: 3, Reps: 2})
	if got < 0 {
		t.Errorf("Measure() = %d, want >= 0", got)
	}
}

func TestMeasure_MinThenTruncatingDivide(t *testing.T) {
	// Two samples of 10ns and 7ns for 4 calls each: the minimum (7) is
	// taken first, then divided truncating, giving 1 — not 7/4 rounded,
	// and not an average.
	r := &Runner{now: scriptedClock([]int64{10, 7})}
	got := r.Measure(func() {}, model.Params{Calls: 4, Iters: 2, Reps: 1})
	if got != 1 {
		t.Errorf("Measure() = %d, want 1", got)
	}
}

func TestMeasure_MinAcrossReps(t *testing.T) {
	r := &Runner{now: scriptedClock([]int64{5, 3, 9})}
	got := r.Measure(func() {}, model.Params{Calls: 1, Iters: 1, Reps: 3})
	if got != 3 {
		t.Errorf("Measure() = %d, want 3", got)
	}
}

func TestMeasure_MoreRepsNeverWorse(t *testing.T) {
	samples := []int64{50, 30, 90, 20, 40}
	one := (&Runner{now: scriptedClock(samples[:1])}).
		Measure(func() {}, model.Params{Calls: 1, Iters: 1, Reps: 1})
	all := (&Runner{now: scriptedClock(samples)}).
		Measure(func() {}, model.Params{Calls: 1, Iters: 1, Reps: 5})
	if all > one {
		t.Errorf("5 reps gave %d, worse than 1 rep's %d", all, one)
	}
}

func TestMeasure_OneProgressMarkerPerRep(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Progress: &buf}
	r.Measure(func() {}, model.Params{Calls: 1, Iters: 1, Reps: 4})
	if got := buf.String(); got != "...." {
		t.Errorf("progress output %q, want %q", got, "....")
	}
}

func TestBenchTime_LabeledPair(t *testing.T) {
	p := model.Params{Calls: 5, Iters: 2, Reps: 1}
	c := (&Runner{}).BenchTime(p)
	if c.Label != TimeLabel {
		t.Errorf("label %q, want %q", c.Label, TimeLabel)
	}
	if c.Params != p {
		t.Errorf("params %+v, want %+v", c.Params, p)
	}
	if len(c.Results) != 2 || c.Results[0].Name != "syscall" || c.Results[1].Name != "implicit" {
		t.Fatalf("unexpected results: %+v", c.Results)
	}
	for _, res := range c.Results {
		if res.BestNs < 0 {
			t.Errorf("%s: negative latency %d", res.Name, res.BestNs)
		}
	}
}

func TestBenchFile_LabeledPair(t *testing.T) {
	p := model.Params{Calls: 2, Iters: 2, Reps: 1}
	c := (&Runner{}).BenchFile(p)
	if c.Label != FileLabel {
		t.Errorf("label %q, want %q", c.Label, FileLabel)
	}
	if len(c.Results) != 2 || c.Results[0].Name != "mmap" || c.Results[1].Name != "read" {
		t.Fatalf("unexpected results: %+v", c.Results)
	}
	for _, res := range c.Results {
		if res.BestNs < 0 {
			t.Errorf("%s: negative latency %d", res.Name, res.BestNs)
		}
	}
}

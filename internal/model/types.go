package model

// Params holds the three tuning knobs of the timing loop: how many
// operation calls make up one timed sample, how many samples make up one
// repetition, and how many repetitions are taken. All three are >= 1 by
// the time they reach the loop; config applies defaults before that.
type Params struct {
	Calls uint64 `json:"calls"`
	Iters uint64 `json:"iters"`
	Reps  uint64 `json:"reps"`
}

// Result is the best-observed per-call latency of one measured operation.
type Result struct {
	Name   string `json:"name"`
	BestNs int64  `json:"best_ns"`
}

// Comparison pairs the results of two operations measured with identical
// parameters, so their latencies can be compared directly.
type Comparison struct {
	Label   string   `json:"label"`
	Params  Params   `json:"params"`
	Results []Result `json:"results"`
}

// Env describes the machine a benchmark run was taken on.
type Env struct {
	GOOS      string `json:"goos"`
	GOARCH    string `json:"goarch"`
	CPU       string `json:"cpu"`
	Kernel    string `json:"kernel,omitempty"`
	GoVersion string `json:"go_version"`
}

// Report is one complete benchmark run: when it ran, where it ran, and
// every comparison it produced.
type Report struct {
	Date        int64        `json:"date"` // unix milliseconds
	Env         Env          `json:"env"`
	Comparisons []Comparison `json:"comparisons"`
}

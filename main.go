package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/royalcat/callbench/internal/bench"
	"github.com/royalcat/callbench/internal/config"
	"github.com/royalcat/callbench/internal/hwinfo"
	"github.com/royalcat/callbench/internal/model"
	"github.com/royalcat/callbench/internal/report"
	"github.com/royalcat/callbench/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	history  string
	maxItems int
	gobench  bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "callbench [mode [calls iters reps]]",
		Short: "Measure syscall vs fast-path latency of clock reads and file reads",
		Long: `callbench measures the per-call latency of two pairs of low-level
operations: reading the monotonic clock through a raw system call versus
through the vDSO fast path, and reading 64 KiB from a device node
through mmap versus through read(2).

The mode argument selects what runs: [t]ime, [f]ile, or [a]ll (the
default). The optional calls, iters and reps arguments tune how many
operation calls make up one timed sample, how many samples are taken per
repetition, and how many repetitions run; values that are missing, zero
or non-numeric fall back to per-mode defaults.`,
		Args:         cobra.MaximumNArgs(4),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.history, "history", "", "append the run to a JSON history file")
	cmd.Flags().IntVar(&opts.maxItems, "max-items", 0, "maximum history entries to keep (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.gobench, "gobench", false, "emit results in go test -bench output format")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	var modeArg string
	if len(args) > 0 {
		modeArg = args[0]
	}
	mode, err := config.ParseMode(modeArg)
	if err != nil {
		return err
	}

	var tuning []string
	if len(args) > 1 {
		tuning = args[1:]
	}

	out := cmd.OutOrStdout()
	progress := out
	if opts.gobench {
		// Keep stdout machine-parseable; dots go to stderr.
		progress = cmd.ErrOrStderr()
	}
	runner := &bench.Runner{Progress: progress, Pause: bench.DefaultPause}

	var comps []model.Comparison
	if mode.Time() {
		p := config.ParseParams(tuning, bench.DefaultTimeParams)
		if !opts.gobench {
			report.StartSection(out, bench.TimeLabel)
		}
		c := runner.BenchTime(p)
		if !opts.gobench {
			report.WriteResults(out, c)
		}
		comps = append(comps, c)
	}

	if mode.Time() && mode.File() && !opts.gobench {
		fmt.Fprintln(out)
	}

	if mode.File() {
		p := config.ParseParams(tuning, bench.DefaultFileParams)
		if !opts.gobench {
			report.StartSection(out, bench.FileLabel)
		}
		c := runner.BenchFile(p)
		if !opts.gobench {
			report.WriteResults(out, c)
		}
		comps = append(comps, c)
	}

	rep := model.Report{
		Date:        time.Now().UnixMilli(),
		Env:         hwinfo.Collect(),
		Comparisons: comps,
	}

	if opts.gobench {
		report.WriteGoBench(out, rep)
	}

	if opts.history != "" {
		h, err := storage.New(opts.history)
		if err != nil {
			return err
		}
		if err := h.Append(rep, opts.maxItems); err != nil {
			return err
		}
	}

	return nil
}

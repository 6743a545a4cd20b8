// Package config turns the positional command-line tokens into a mode
// and a validated set of timing-loop parameters.
package config

import (
	"fmt"
	"strconv"

	"github.com/royalcat/callbench/internal/model"
)

// Mode selects which benchmark pairs run.
type Mode int

const (
	// ModeAll runs the clock pair followed by the file pair.
	ModeAll Mode = iota
	// ModeTime runs only the clock-read pair.
	ModeTime
	// ModeFile runs only the file-read pair.
	ModeFile
)

// Time reports whether the clock-read pair runs in this mode.
func (m Mode) Time() bool { return m == ModeAll || m == ModeTime }

// File reports whether the file-read pair runs in this mode.
func (m Mode) File() bool { return m == ModeAll || m == ModeFile }

func (m Mode) String() string {
	switch m {
	case ModeTime:
		return "time"
	case ModeFile:
		return "file"
	default:
		return "all"
	}
}

// ParseMode interprets the mode argument by its first character,
// case-insensitively. An empty string means all benchmarks.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeAll, nil
	}
	c := s[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	switch c {
	case 't':
		return ModeTime, nil
	case 'f':
		return ModeFile, nil
	case 'a':
		return ModeAll, nil
	default:
		return 0, fmt.Errorf("invalid mode '%c': valid modes are [t]ime, [f]ile, [a]ll", c)
	}
}

// ParseParams reads up to three positional tokens (calls, iters, reps).
// A token that is missing, non-numeric, zero, negative or too large for
// a uint64 is replaced by the corresponding default — bad tuning input
// never faults, it just falls back.
func ParseParams(args []string, def model.Params) model.Params {
	return model.Params{
		Calls: parseArg(args, 0, def.Calls),
		Iters: parseArg(args, 1, def.Iters),
		Reps:  parseArg(args, 2, def.Reps),
	}
}

func parseArg(args []string, i int, def uint64) uint64 {
	if i >= len(args) {
		return def
	}
	v, err := strconv.ParseUint(args[i], 10, 64)
	if err != nil || v == 0 {
		return def
	}
	return v
}

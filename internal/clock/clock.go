//go:build unix

// Package clock reads the monotonic clock through two different paths:
// the raw clock_gettime system call, which always enters the kernel, and
// the Go runtime's internal reader, which is serviced by the vDSO on
// mainstream platforms and usually never leaves user mode.
package clock

import (
	"log"
	_ "unsafe"

	"golang.org/x/sys/unix"
)

const nsPerSec = 1_000_000_000

//go:noescape
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Nanos flattens a timespec into a single nanosecond count. int64 holds
// roughly 292 years of nanoseconds, so overflow is not a concern for a
// monotonic reading.
func Nanos(ts unix.Timespec) int64 {
	return int64(ts.Sec)*nsPerSec + int64(ts.Nsec)
}

// Syscall reads CLOCK_MONOTONIC through the raw system call, bypassing
// the vDSO. A failing monotonic clock leaves nothing to benchmark, so
// the error is fatal rather than returned as a zero reading.
func Syscall() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		log.Fatalf("reading monotonic clock: %v", err)
	}
	return Nanos(ts)
}

// Now reads CLOCK_MONOTONIC through the runtime's fast path. This is the
// cheapest monotonic reading available and is what the timing loop uses
// to bracket its samples.
func Now() int64 {
	return nanotime()
}

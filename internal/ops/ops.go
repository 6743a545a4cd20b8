//go:build unix

// Package ops holds the four measured operations. Each is a plain func()
// that performs its work and throws the result away: the cost of the
// call, not its output, is what the timing loop measures.
//
// The file operations read from a zero-generating device node rather
// than a real file so that the mmap-path/read-path comparison is not
// skewed by page-cache or filesystem behavior. Every descriptor, mapping
// and buffer is acquired and released inside a single call; nothing is
// held across invocations, which matters when the loop runs an operation
// millions of times.
package ops

import (
	"log"

	"github.com/royalcat/callbench/internal/clock"
	"golang.org/x/sys/unix"
)

const (
	readPath = "/dev/zero"
	readLen  = 64 * 1024
)

// ClockSyscall reads the monotonic clock through the raw system call.
// This is the true kernel-transition baseline.
func ClockSyscall() {
	clock.Syscall()
}

// ClockVDSO reads the monotonic clock through the runtime's default
// mechanism, which avoids the kernel transition where the platform
// provides a user-mode fast path.
func ClockVDSO() {
	clock.Now()
}

// MmapRead maps a 64 KiB window of the device read-only, copies it into
// a fresh buffer, then unmaps and closes.
func MmapRead() {
	fd, err := unix.Open(readPath, unix.O_RDONLY, 0)
	if err != nil {
		log.Fatalf("open %s: %v", readPath, err)
	}
	data, err := unix.Mmap(fd, 0, readLen, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		unix.Close(fd)
		log.Fatalf("mmap %s: %v", readPath, err)
	}
	buf := make([]byte, readLen)
	copy(buf, data)
	if err := unix.Munmap(data); err != nil {
		unix.Close(fd)
		log.Fatalf("munmap %s: %v", readPath, err)
	}
	unix.Close(fd)
}

// FileRead reads the same 64 KiB window with a single read call into a
// fresh buffer, then closes.
func FileRead() {
	fd, err := unix.Open(readPath, unix.O_RDONLY, 0)
	if err != nil {
		log.Fatalf("open %s: %v", readPath, err)
	}
	buf := make([]byte, readLen)
	if _, err := unix.Read(fd, buf); err != nil {
		unix.Close(fd)
		log.Fatalf("read %s: %v", readPath, err)
	}
	unix.Close(fd)
}

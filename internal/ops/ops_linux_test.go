//go:build linux

package ops

import (
	"os"
	"testing"
)

func openFDs(t *testing.T) int {
	t.Helper()
	ents, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Fatalf("reading fd table: %v", err)
	}
	return len(ents)
}

// The file operations open a descriptor (and MmapRead a mapping) on
// every call; running them many times must not grow the fd table.
func TestFileOpsDoNotLeakDescriptors(t *testing.T) {
	for name, op := range map[string]func(){
		"MmapRead": MmapRead,
		"FileRead": FileRead,
	} {
		t.Run(name, func(t *testing.T) {
			before := openFDs(t)
			for i := 0; i < 500; i++ {
				op()
			}
			after := openFDs(t)
			if after > before {
				t.Errorf("fd table grew from %d to %d after 500 calls", before, after)
			}
		})
	}
}

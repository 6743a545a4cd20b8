//go:build unix

package ops

import "testing"

// Each operation must be safely repeatable: it acquires and releases all
// of its resources within one call.
func TestOpsRepeatable(t *testing.T) {
	ops := map[string]func(){
		"ClockSyscall": ClockSyscall,
		"ClockVDSO":    ClockVDSO,
		"MmapRead":     MmapRead,
		"FileRead":     FileRead,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				op()
			}
		})
	}
}

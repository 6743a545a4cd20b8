package hwinfo

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/royalcat/callbench/internal/model"
)

// CPUModel returns a human-readable string identifying the CPU of the
// current machine. Syscall latencies vary wildly across CPU generations,
// so every report records this alongside its numbers.
//
// If gopsutil cannot determine a model name, a fallback built from
// GOARCH and the core count is returned. The result is never empty.
func CPUModel() string {
	infos, err := cpu.Info()
	if err == nil && len(infos) > 0 {
		if infos[0].ModelName != "" {
			return infos[0].ModelName
		}
		if infos[0].VendorID != "" {
			return infos[0].VendorID
		}
	}

	cores, _ := cpu.Counts(true)
	if cores > 0 {
		return fmt.Sprintf("%s (%d cores)", runtime.GOARCH, cores)
	}
	return runtime.GOARCH
}

// KernelVersion returns the running kernel's version string, or "" if it
// cannot be determined. The kernel version matters here more than in
// most tools: the vDSO fast path under measurement is part of the kernel.
func KernelVersion() string {
	v, err := host.KernelVersion()
	if err != nil {
		return ""
	}
	return v
}

// Collect snapshots the environment a benchmark run executes in.
func Collect() model.Env {
	return model.Env{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		CPU:       CPUModel(),
		Kernel:    KernelVersion(),
		GoVersion: runtime.Version(),
	}
}

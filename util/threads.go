package util

import (
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"
)

// HostThreads reports how many workers the host can run at once.
// Logical cores are asked from gopsutil on the first call only; runtime.NumCPU
// is the fallback when the platform query fails.
func HostThreads() int {
	return hostThreads()
}

var hostThreads = sync.OnceValue(func() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		n = runtime.NumCPU()
	}
	// GOMAXPROCS caps what can actually run in parallel
	if procs := runtime.GOMAXPROCS(0); procs < n {
		n = procs
	}
	if n < 1 {
		n = 1
	}
	return n
})

// SPDX-License-Identifier: MIT

package bench

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Host describes the machine a benchmark ran on.
type Host struct {
	OS, Arch  string
	GoVersion string
	NumCPU    int

	// CacheLineBytes is the cache line size the Go toolchain assumes for Arch.
	CacheLineBytes int

	// Features lists the SIMD features detected on Arch, e.g. "avx2", "fma".
	Features []string
}

type feature struct {
	name    string
	present bool
}

// DetectHost reads the runtime and CPU feature flags.
func DetectHost() Host {
	h := Host{
		OS:             runtime.GOOS,
		Arch:           runtime.GOARCH,
		GoVersion:      runtime.Version(),
		NumCPU:         runtime.NumCPU(),
		CacheLineBytes: int(unsafe.Sizeof(cpu.CacheLinePad{})),
	}
	var feats []feature
	switch runtime.GOARCH {
	case "amd64", "386":
		feats = []feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse4.1", cpu.X86.HasSSE41},
			{"sse4.2", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		feats = []feature{
			{"fp", cpu.ARM64.HasFP},
			{"asimd", cpu.ARM64.HasASIMD},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	}
	for _, f := range feats {
		if f.present {
			h.Features = append(h.Features, f.name)
		}
	}

	return h
}

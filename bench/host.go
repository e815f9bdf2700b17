package bench

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// HostFeatures lists the SIMD-relevant CPU features of the machine running
// the benchmark, prefixed by GOOS/GOARCH.
func HostFeatures() []string {
	features := []string{runtime.GOOS + "/" + runtime.GOARCH}
	flags := []struct {
		name string
		ok   bool
	}{
		{"sse4.2", cpu.X86.HasSSE42},
		{"avx2", cpu.X86.HasAVX2},
		{"avx512f", cpu.X86.HasAVX512F},
		{"bmi2", cpu.X86.HasBMI2},
		{"asimd", cpu.ARM64.HasASIMD},
		{"sve", cpu.ARM64.HasSVE},
	}
	for _, f := range flags {
		if f.ok {
			features = append(features, f.name)
		}
	}
	return features
}

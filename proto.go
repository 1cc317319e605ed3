package arithbench

import "github.com/varex83/acs-lab-1/internal/bench"

// BenchOutput is one archived run.
type BenchOutput struct {
	Date      string
	Toolchain string
	Result    []bench.Result
}

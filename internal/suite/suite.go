// Package suite runs every operator over every element type.
package suite

import (
	"log/slog"

	"github.com/varex83/acs-lab-1/internal/bench"
	"github.com/varex83/acs-lab-1/internal/buffer"
	"github.com/varex83/acs-lab-1/internal/rng"
)

// Iteration counts. Multiplication and division get ten times fewer
// iterations than addition and subtraction to bound total run time.
const (
	MaxIterations = 100_000_000
	AddIterations = 100_000_000
	SubIterations = 100_000_000
	MulIterations = 10_000_000
	DivIterations = 10_000_000
)

// Config holds the iteration count of each operator.
type Config struct {
	Add int
	Sub int
	Mul int
	Div int
}

// DefaultConfig returns the built-in iteration counts.
func DefaultConfig() Config {
	return Config{
		Add: AddIterations,
		Sub: SubIterations,
		Mul: MulIterations,
		Div: DivIterations,
	}
}

// Max is the largest iteration count; buffers hold Max()+1 elements.
func (c Config) Max() int {
	m := 0
	for _, n := range []int{c.Add, c.Sub, c.Mul, c.Div} {
		m = max(m, n)
	}
	return m
}

// Iterations returns the count for an operator symbol.
func (c Config) Iterations(symbol string) int {
	switch symbol {
	case "+":
		return c.Add
	case "-":
		return c.Sub
	case "*":
		return c.Mul
	case "/":
		return c.Div
	}
	return 0
}

// Suite owns the random sources and collects results.
type Suite struct {
	cfg    Config
	narrow *rng.Source
	wide   *rng.Source
	logger *slog.Logger
}

// New builds a suite. narrow feeds the int and char buffers, wide the long
// and double buffers.
func New(cfg Config, narrow, wide *rng.Source, logger *slog.Logger) *Suite {
	if logger == nil {
		logger = slog.Default()
	}
	return &Suite{cfg: cfg, narrow: narrow, wide: wide, logger: logger}
}

// kind is one benchmarked element type.
type kind struct {
	name string
	run  func(s *Suite, name string) []bench.Result
}

var kinds = []kind{
	{"int", func(s *Suite, name string) []bench.Result {
		return runKind(s, name, func(buf []int32) { buffer.Int32(buf, s.narrow) })
	}},
	{"long", func(s *Suite, name string) []bench.Result {
		return runKind(s, name, func(buf []int64) { buffer.Int64(buf, s.wide) })
	}},
	{"double", func(s *Suite, name string) []bench.Result {
		return runKind(s, name, func(buf []float64) { buffer.Float64(buf, s.wide) })
	}},
	{"char", func(s *Suite, name string) []bench.Result {
		return runKind(s, name, func(buf []int8) { buffer.Int8(buf, s.narrow) })
	}},
}

// Types lists the benchmarked type labels in run order.
func Types() []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.name)
	}
	return names
}

// Run benchmarks every type with every operator, sequentially.
func (s *Suite) Run() []bench.Result {
	results := make([]bench.Result, 0, len(kinds)*4)
	for _, k := range kinds {
		results = append(results, k.run(s, k.name)...)
	}
	return results
}

// runKind allocates one buffer for the type and refills it before every
// operator, so each benchmark starts from fresh operands. Division reads its
// divisor from the untouched fill, which is non-zero as long as the division
// count stays below Max(); the trailing slot is never refilled.
func runKind[T bench.Number](s *Suite, name string, fill func([]T)) []bench.Result {
	buf := make([]T, s.cfg.Max()+1)
	ops := bench.Operators[T]()
	results := make([]bench.Result, 0, len(ops))
	for _, op := range ops {
		fill(buf)
		res := bench.Run(op.Symbol, name, buf, op.Fn, s.cfg.Iterations(op.Symbol))
		s.logger.Debug("benchmark finished",
			"op", res.Op,
			"type", res.Type,
			"iterations", res.Iterations,
			"duration_ns", res.DurationNs,
			"rate", res.Rate)
		results = append(results, res)
	}
	return results
}

package arithbench

import (
	"fmt"

	"github.com/varex83/acs-lab-1/internal/bench"
)

// Comparison is the rate change of one operator/type pair between two runs.
type Comparison struct {
	Op       string
	Type     string
	Prev     bench.Result
	Curr     bench.Result
	RateDiff float64 // percent, positive is faster
}

// Regressed reports whether the rate dropped by more than threshold percent.
func (c Comparison) Regressed(threshold float64) bool {
	return c.RateDiff < -threshold
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s %s: %+.2f%% ops/s", c.Op, c.Type, c.RateDiff)
}

type pairKey struct {
	op, typ string
}

// Compare matches results present in both runs, in curr's order.
func Compare(prev, curr BenchOutput) []Comparison {
	prevMap := make(map[pairKey]bench.Result, len(prev.Result))
	for _, r := range prev.Result {
		prevMap[pairKey{r.Op, r.Type}] = r
	}

	var comparisons []Comparison
	for _, c := range curr.Result {
		p, ok := prevMap[pairKey{c.Op, c.Type}]
		if !ok {
			continue
		}
		comp := Comparison{Op: c.Op, Type: c.Type, Prev: p, Curr: c}
		if p.Rate > 0 {
			comp.RateDiff = (c.Rate - p.Rate) / p.Rate * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons
}

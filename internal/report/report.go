// Package report renders benchmark results as a percentage-of-best table.
package report

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"strings"

	"github.com/varex83/acs-lab-1/internal/bench"
)

// Row is a result with its share of the best rate.
type Row struct {
	bench.Result
	Percent int
}

// Best returns the highest rate, or 0 for no results.
func Best(results []bench.Result) float64 {
	best := 0.0
	for _, r := range results {
		best = math.Max(best, r.Rate)
	}
	return best
}

// Percent returns round(rate/best*100) clamped to [0, 100].
func Percent(rate, best float64) int {
	if best <= 0 || math.IsNaN(rate) {
		return 0
	}
	p := math.Round(rate / best * 100)
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return int(p)
}

// Bar draws one X per two percentage points.
func Bar(percent int) string {
	if percent <= 0 {
		return ""
	}
	return strings.Repeat("X", percent/2)
}

// Rows keeps the input order; it does not sort by rate.
func Rows(results []bench.Result) []Row {
	best := Best(results)
	rows := make([]Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, Row{Result: r, Percent: Percent(r.Rate, best)})
	}
	return rows
}

// FormatRow renders one table line without the trailing newline.
func FormatRow(r Row) string {
	return fmt.Sprintf("| %-3s| %-10s| %-15E| %-51s| %-10s%%|",
		r.Op, r.Type, r.Rate, Bar(r.Percent), fmt.Sprintf("%02d", r.Percent))
}

// Write prints every row followed by the system info line.
func Write(w io.Writer, results []bench.Result) error {
	for _, row := range Rows(results) {
		if _, err := fmt.Fprintln(w, FormatRow(row)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, SystemInfo())
	return err
}

// SystemInfo names the toolchain the binary was built with.
func SystemInfo() string {
	return fmt.Sprintf("System info: %s %s %s/%s",
		runtime.Compiler, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arithbench "github.com/varex83/acs-lab-1"
	"github.com/varex83/acs-lab-1/internal/bench"
)

func results() []bench.Result {
	return []bench.Result{
		{Op: "+", Type: "int", Rate: 4e9},
		{Op: "/", Type: "long", Rate: 1e9},
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, results()))

	html := buf.String()
	assert.Contains(t, html, "Operator throughput")
	assert.Contains(t, html, "Percent of best")
	assert.Contains(t, html, "+ int")
	assert.Contains(t, html, "/ long")
}

func TestHistoryPage(t *testing.T) {
	runs := []arithbench.BenchOutput{
		arithbench.NewBenchOutput(time.Unix(1700000000, 0), results()),
		arithbench.NewBenchOutput(time.Unix(1700086400, 0), results()[:1]),
	}

	page, err := HistoryPage(runs, MetricPercent)
	require.NoError(t, err)
	assert.Len(t, page.Charts, 2)

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	assert.Contains(t, buf.String(), "2023-11-14 22:13")
	assert.Contains(t, buf.String(), "2023-11-15 22:13")
}

func TestHistoryPageBadDate(t *testing.T) {
	_, err := HistoryPage([]arithbench.BenchOutput{{Date: "yesterday"}}, MetricRate)
	assert.Error(t, err)
}

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric("percent")
	require.NoError(t, err)
	assert.Equal(t, MetricPercent, m)

	_, err = ParseMetric("allocs")
	assert.Error(t, err)
}

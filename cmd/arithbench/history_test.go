package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	require.NoError(t, os.Mkdir(data, 0755))
	writeRun(t, data, "run.json", 10, 20)
	out := filepath.Join(dir, "history.html")

	stdout, err := execute(t, newRootCmd(), "history", "--dir", data, "--out", out, "--metric", "percent")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote 1 runs")

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), "- int")
}

func TestHistoryCmdBadMetric(t *testing.T) {
	_, err := execute(t, newRootCmd(), "history", "--metric", "allocs")
	assert.ErrorContains(t, err, "unknown metric")
}

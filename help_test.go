package arithbench

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varex83/acs-lab-1/internal/bench"
)

func sampleResults() []bench.Result {
	return []bench.Result{
		{Op: "+", Type: "int", DurationNs: 100, Rate: 1e9, Iterations: 100},
		{Op: "/", Type: "char", DurationNs: 400, Rate: 2.5e8, Iterations: 100},
	}
}

func TestWriteAndLoadDataDir(t *testing.T) {
	dir := t.TempDir()
	older := NewBenchOutput(time.Unix(1000, 0), sampleResults())
	newer := NewBenchOutput(time.Unix(2000, 0), sampleResults()[:1])

	// written newest first to check ordering
	require.NoError(t, WriteJSONFile(filepath.Join(dir, "b.json"), older))
	require.NoError(t, WriteJSONFile(filepath.Join(dir, "a.json"), newer))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0755))

	runs, err := LoadDataDir(dir)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, older, runs[0])
	assert.Equal(t, newer, runs[1])
}

func TestLoadDataDirBadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0644))

	_, err := LoadDataDir(dir)
	assert.ErrorContains(t, err, "bad.json")
}

func TestLoadDataDirMissing(t *testing.T) {
	_, err := LoadDataDir(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileName(t *testing.T) {
	date := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-18T093000_go1.25.0.json", FileName(date, "go1.25.0"))
	assert.Equal(t, "2026-10-18T093000_devel-go1.26-abc.json", FileName(date, "devel go1.26/abc"))
}

func TestUnixDateToTime(t *testing.T) {
	out := NewBenchOutput(time.Unix(1700000000, 0), nil)
	tm, err := UnixDateToTime(out.Date)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), tm.Unix())

	_, err = UnixDateToTime("2021-05-06")
	assert.Error(t, err)
}

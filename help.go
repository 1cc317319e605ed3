package arithbench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/varex83/acs-lab-1/internal/bench"
)

func NewBenchOutput(date time.Time, results []bench.Result) BenchOutput {
	return BenchOutput{
		Date:      strconv.FormatInt(date.Unix(), 10),
		Toolchain: runtime.Version(),
		Result:    results,
	}
}

// LoadDataDir reads every *.json run in dir, oldest first.
func LoadDataDir(dir string) ([]BenchOutput, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	res := make([]BenchOutput, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(e.Name(), ".json") {
			continue
		}

		b, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	sort.SliceStable(res, func(i, j int) bool {
		ti, _ := UnixDateToTime(res[i].Date)
		tj, _ := UnixDateToTime(res[j].Date)
		return ti.Before(tj)
	})
	return res, nil
}

func LoadFile(path string) (BenchOutput, error) {
	var b BenchOutput
	f, err := os.Open(path)
	if err != nil {
		return b, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&b); err != nil {
		return b, fmt.Errorf("decode %s: %w", path, err)
	}
	return b, nil
}

func WriteJSONFile(outputFile string, data interface{}) error {
	out, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// FileName names an archived run, e.g. 2026-10-18T093000_go1.25.0.json.
func FileName(date time.Time, toolchain string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':':
			return '-'
		}
		return r
	}, toolchain)
	return date.UTC().Format("2006-01-02T150405") + "_" + clean + ".json"
}

func UnixDateToTime(date string) (t time.Time, err error) {
	var v int64
	v, err = strconv.ParseInt(date, 10, 64)
	if err != nil {
		return
	}
	t = time.Unix(v, 0)
	return
}

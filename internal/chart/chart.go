// Package chart renders benchmark results as go-echarts HTML pages.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	arithbench "github.com/varex83/acs-lab-1"
	"github.com/varex83/acs-lab-1/internal/bench"
	"github.com/varex83/acs-lab-1/internal/report"
)

// Metric selects what a history chart plots.
type Metric string

const (
	MetricRate    Metric = "rate"
	MetricPercent Metric = "percent"
)

// ParseMetric accepts "rate" or "percent".
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricRate, MetricPercent:
		return Metric(s), nil
	}
	return "", fmt.Errorf("unknown metric %q (want rate or percent)", s)
}

func (m Metric) seriesName() string {
	if m == MetricPercent {
		return "% of best"
	}
	return "ops/s"
}

// Label is the x axis label of a result, e.g. "+ int".
func Label(r bench.Result) string {
	return r.Op + " " + r.Type
}

// Report builds one page with a rate chart and a percent-of-best chart of a
// single run, in run order.
func Report(results []bench.Result) *components.Page {
	rows := report.Rows(results)
	labels := make([]string, 0, len(rows))
	rates := make([]opts.BarData, 0, len(rows))
	percents := make([]opts.BarData, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, Label(r.Result))
		rates = append(rates, opts.BarData{Value: r.Rate})
		percents = append(percents, opts.BarData{Value: r.Percent})
	}

	rateBar := charts.NewBar()
	rateBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Operator throughput", Subtitle: report.SystemInfo()}),
		charts.WithYAxisOpts(opts.YAxis{Name: MetricRate.seriesName()}))
	rateBar.SetXAxis(labels)
	rateBar.AddSeries(MetricRate.seriesName(), rates)

	pctBar := charts.NewBar()
	pctBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Percent of best"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "%"}))
	pctBar.SetXAxis(labels)
	pctBar.AddSeries(MetricPercent.seriesName(), percents)

	page := components.NewPage()
	page.AddCharts(rateBar, pctBar)
	return page
}

// WriteReport renders Report(results) to w.
func WriteReport(w io.Writer, results []bench.Result) error {
	return Report(results).Render(w)
}

type point struct {
	date  string
	value interface{}
}

// HistoryPage builds one bar chart per operator/type pair across archived
// runs. Runs are expected oldest first, as LoadDataDir returns them.
func HistoryPage(outputs []arithbench.BenchOutput, metric Metric) (*components.Page, error) {
	var order []string
	series := make(map[string][]point)
	for _, out := range outputs {
		tm, err := arithbench.UnixDateToTime(out.Date)
		if err != nil {
			return nil, fmt.Errorf("run date %q: %w", out.Date, err)
		}
		date := tm.UTC().Format("2006-01-02 15:04")
		for _, r := range report.Rows(out.Result) {
			name := Label(r.Result)
			if _, ok := series[name]; !ok {
				order = append(order, name)
			}
			var v interface{} = r.Rate
			if metric == MetricPercent {
				v = r.Percent
			}
			series[name] = append(series[name], point{date: date, value: v})
		}
	}

	page := components.NewPage()
	for _, name := range order {
		points := series[name]
		bar := charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: name}))

		dates := make([]string, 0, len(points))
		data := make([]opts.BarData, 0, len(points))
		for _, p := range points {
			dates = append(dates, p.date)
			data = append(data, opts.BarData{Value: p.value})
		}

		bar.SetXAxis(dates)
		bar.AddSeries(metric.seriesName(), data)
		page.AddCharts(bar)
	}
	return page, nil
}

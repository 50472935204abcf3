package measure

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHTML writes an HTML page charting the collected records: sign
// latency per call, retry attempts per call, and the accepted hint
// infinity norm distribution.
func RenderHTML(path string, recs []Record) error {
	if len(recs) == 0 {
		return fmt.Errorf("measure: nothing to plot")
	}

	xs := make([]string, len(recs))
	latency := make([]opts.LineData, len(recs))
	attempts := make([]opts.BarData, len(recs))
	for i, r := range recs {
		xs[i] = fmt.Sprintf("%d", i)
		latency[i] = opts.LineData{Value: r.SignMS}
		attempts[i] = opts.BarData{Value: r.CoreAttempts * r.EncodeAttempts}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Sign latency"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xs).AddSeries("sign", latency)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Rejection-loop attempts"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "attempts"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xs).AddSeries("attempts", attempts)

	// hint norm histogram over the small centered domain
	counts := map[int64]int{}
	var maxH int64
	for _, r := range recs {
		counts[r.HInf]++
		if r.HInf > maxH {
			maxH = r.HInf
		}
	}
	hxs := make([]string, maxH+1)
	hist := make([]opts.BarData, maxH+1)
	for v := int64(0); v <= maxH; v++ {
		hxs[v] = fmt.Sprintf("%d", v)
		hist[v] = opts.BarData{Value: counts[v]}
	}
	hbar := charts.NewBar()
	hbar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Accepted hint infinity norm"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "calls"}),
	)
	hbar.SetXAxis(hxs).AddSeries("calls", hist)

	page := components.NewPage().SetPageTitle("Raccoon sign telemetry")
	page.AddCharts(line, bar, hbar)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/katalvlaran/qsieve/sieve"
)

// SieveChart writes an HTML page with two charts of a sieve run: the bit
// length of what remained in every slot (0 marks a smooth slot), and the
// smooth relations as (x, log₂ y) points.
func SieveChart(w io.Writer, res *sieve.Result) error {
	page := components.NewPage().SetPageTitle(fmt.Sprintf("Quadratic sieve for n = %d", res.N))
	page.AddCharts(residualBar(res), smoothScatter(res))

	if err := page.Render(w); err != nil {
		return fmt.Errorf("report: render chart: %w", err)
	}

	return nil
}

func residualBar(res *sieve.Result) *charts.Bar {
	xLabels := make([]string, len(res.Residuals))
	items := make([]opts.BarData, len(res.Residuals))
	for k, v := range res.Residuals {
		xLabels[k] = strconv.FormatInt(res.Start+int64(k), 10)
		items[k] = opts.BarData{Value: bitLen(v)}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Residual after sieving",
			Subtitle: fmt.Sprintf("base of %d primes, %d smooth of %d slots", res.Base.Len(), res.Len(), len(res.Residuals)),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "log2 |residual|"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("residual bits", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	return bar
}

func smoothScatter(res *sieve.Result) *charts.Scatter {
	items := make([]opts.ScatterData, len(res.Xs))
	for i, x := range res.Xs {
		items[i] = opts.ScatterData{Value: []interface{}{x, bitLen(res.Ys[i])}}
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Smooth relations"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "log2 y", Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	sc.AddSeries("x² − n", items,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 7}))

	return sc
}

// bitLen returns log₂|v| rounded to two decimals; 0 and ±1 map to 0.
func bitLen(v int64) float64 {
	if v < 0 {
		v = -v
	}
	if v <= 1 {
		return 0
	}

	return math.Round(math.Log2(float64(v))*100) / 100
}

// Package plot builds Apache ECharts charts for inspecting seasonality, train/test splits and
// forecast evaluations. Every builder returns its own chart or page.
package plot

import (
	"math"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// MissingValue is how echarts represents a gap in a line series. NaN cannot be used since it has
// no json encoding.
const MissingValue = "-"

func lineValue(v float64) opts.LineData {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return opts.LineData{Value: MissingValue}
	}
	return opts.LineData{Value: v}
}

func lineData(y []float64) []opts.LineData {
	data := make([]opts.LineData, 0, len(y))
	for _, v := range y {
		data = append(data, lineValue(v))
	}
	return data
}

func missingData(n int) []opts.LineData {
	data := make([]opts.LineData, 0, n)
	for i := 0; i < n; i++ {
		data = append(data, opts.LineData{Value: MissingValue})
	}
	return data
}

func newLine(title, subtitle, xName, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title:    title,
				Subtitle: subtitle,
			},
		),
		charts.WithTooltipOpts(
			opts.Tooltip{
				Trigger: "axis",
			},
		),
		charts.WithXAxisOpts(
			opts.XAxis{
				Name: xName,
			},
		),
		charts.WithYAxisOpts(
			opts.YAxis{
				Name: yName,
			},
		),
	)
	return line
}

// LineTSeries generates an echart multi-line chart for some arbitrary time/value combination. The input
// y is a slice of series that must have the same length as the input time slice. NaN values are
// drawn as gaps.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := newLine(title, "", "", "")
	line.SetXAxis(t)
	for i, series := range seriesName {
		if i >= len(y) {
			break
		}
		line.AddSeries(series, lineData(y[i]))
	}
	return line
}

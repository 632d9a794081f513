package plot

import (
	"fmt"
	"strconv"

	"github.com/aouyang1/go-forecast-eval/seasonality"
	"github.com/aouyang1/go-forecast-eval/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// MonthMeanColor is the color of the across-year mean drawn on each subseries chart
const MonthMeanColor = "orange"

func monthAxis() []int {
	months := make([]int, 0, seasonality.NumMonths)
	for m := 1; m <= seasonality.NumMonths; m++ {
		months = append(months, m)
	}
	return months
}

// YearlySeasonality overlays one line per calendar year on a month axis, where each point is the
// mean of the target for that month and year.
func YearlySeasonality(td *timedataset.TimeDataset, target, title string) *charts.Line {
	line := newLine(title, "", "month", target)
	line.SetXAxis(monthAxis())
	for _, profile := range seasonality.ByYear(td) {
		line.AddSeries(strconv.Itoa(profile.Year), lineData(profile.Months[:]))
	}
	return line
}

// SubseriesYearlySeasonality builds a page with a chart per month. Each chart plots the yearly mean
// of that month along with the month's mean across all years.
func SubseriesYearlySeasonality(td *timedataset.TimeDataset, target, title string) *components.Page {
	page := components.NewPage()
	page.PageTitle = title

	meanName := target + " mean"
	for _, ms := range seasonality.Subseries(td) {
		meanLine := make([]float64, len(ms.Years))
		for i := range meanLine {
			meanLine[i] = ms.Mean
		}

		line := newLine(fmt.Sprintf("%s: %s", title, ms.Month), "", "year", target)
		line.SetXAxis(ms.Years).
			AddSeries(target, lineData(ms.Values)).
			AddSeries(meanName, lineData(meanLine),
				charts.WithLineStyleOpts(opts.LineStyle{Color: MonthMeanColor}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: MonthMeanColor}),
			)
		page.AddCharts(line)
	}
	return page
}

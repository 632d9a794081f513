// Package seasonality aggregates a time series by calendar month and year to expose yearly
// seasonal patterns.
package seasonality

import (
	"math"
	"sort"
	"time"

	"github.com/aouyang1/go-forecast-eval/timedataset"
	"gonum.org/v1/gonum/stat"
)

// NumMonths is the number of buckets in a yearly profile
const NumMonths = 12

// YearProfile is the mean value of each month for a single calendar year. Months without any
// observations are NaN.
type YearProfile struct {
	Year   int                `json:"year"`
	Months [NumMonths]float64 `json:"months"`
}

// MonthSeries is the subseries of a single calendar month across years.
type MonthSeries struct {
	Month  time.Month `json:"month"`
	Years  []int      `json:"years"`
	Values []float64  `json:"values"`
	Mean   float64    `json:"mean"`
}

type yearMonth struct {
	year  int
	month time.Month
}

// groupByYearMonth buckets every non NaN observation by its calendar year and month in the
// location of the time point
func groupByYearMonth(td *timedataset.TimeDataset) map[yearMonth][]float64 {
	groups := make(map[yearMonth][]float64)
	if td == nil {
		return groups
	}
	for i, tPnt := range td.T {
		if math.IsNaN(td.Y[i]) {
			continue
		}
		key := yearMonth{year: tPnt.Year(), month: tPnt.Month()}
		groups[key] = append(groups[key], td.Y[i])
	}
	return groups
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	return stat.Mean(vals, nil)
}

// ByYear returns a profile per calendar year in ascending order.
func ByYear(td *timedataset.TimeDataset) []YearProfile {
	groups := groupByYearMonth(td)

	profiles := make(map[int]*YearProfile)
	for key := range groups {
		if _, exists := profiles[key.year]; exists {
			continue
		}
		p := &YearProfile{Year: key.year}
		for m := 0; m < NumMonths; m++ {
			p.Months[m] = math.NaN()
		}
		profiles[key.year] = p
	}
	for key, vals := range groups {
		profiles[key.year].Months[key.month-1] = mean(vals)
	}

	res := make([]YearProfile, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, *p)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Year < res[j].Year
	})
	return res
}

// MonthlyMeans returns the mean of all observations in each month regardless of year. Months
// without any observations are NaN.
func MonthlyMeans(td *timedataset.TimeDataset) [NumMonths]float64 {
	var byMonth [NumMonths][]float64
	if td != nil {
		for i, tPnt := range td.T {
			if math.IsNaN(td.Y[i]) {
				continue
			}
			m := tPnt.Month() - 1
			byMonth[m] = append(byMonth[m], td.Y[i])
		}
	}

	var res [NumMonths]float64
	for m := 0; m < NumMonths; m++ {
		res[m] = mean(byMonth[m])
	}
	return res
}

// Subseries returns, for each month, the yearly means of that month along with the mean of the
// month across every year.
func Subseries(td *timedataset.TimeDataset) [NumMonths]MonthSeries {
	groups := groupByYearMonth(td)
	monthMeans := MonthlyMeans(td)

	var res [NumMonths]MonthSeries
	for m := 0; m < NumMonths; m++ {
		res[m] = MonthSeries{
			Month: time.Month(m + 1),
			Mean:  monthMeans[m],
		}
	}

	for key := range groups {
		res[key.month-1].Years = append(res[key.month-1].Years, key.year)
	}
	for m := 0; m < NumMonths; m++ {
		sort.Ints(res[m].Years)
		res[m].Values = make([]float64, 0, len(res[m].Years))
		for _, year := range res[m].Years {
			key := yearMonth{year: year, month: time.Month(m + 1)}
			res[m].Values = append(res[m].Values, mean(groups[key]))
		}
	}
	return res
}

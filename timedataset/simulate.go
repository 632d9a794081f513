package timedataset

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
)

const secondsPerYear = 365.25 * 86400.0

// GenerateT returns n evenly spaced points starting at start
func GenerateT(n int, interval time.Duration, start time.Time) []time.Time {
	t := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, start.Add(interval*time.Duration(i)))
	}
	return t
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateYearlyWaveY produces a sine wave with a period of one year peaking phaseDays after the
// first quarter of the year.
func GenerateYearlyWaveY(t []time.Time, amp, phaseDays float64) Series {
	y := make([]float64, 0, len(t))
	for _, tPnt := range t {
		start := time.Date(tPnt.Year(), 1, 1, 0, 0, 0, 0, tPnt.Location())
		elapsed := tPnt.Sub(start).Seconds() - phaseDays*86400.0
		y = append(y, amp*math.Sin(2.0*math.Pi*elapsed/secondsPerYear))
	}
	return Series(y)
}

// GenerateTrendY produces a line through zero at the first point growing by slope per year
func GenerateTrendY(t []time.Time, slope float64) Series {
	y := make([]float64, len(t))
	if len(t) == 0 {
		return Series(y)
	}
	for i, tPnt := range t {
		y[i] = slope * tPnt.Sub(t[0]).Seconds() / secondsPerYear
	}
	return Series(y)
}

func GenerateNoise(n int, scale float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rand.NormFloat64()*scale)
	}
	return Series(y)
}

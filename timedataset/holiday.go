package timedataset

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

type calendarDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) calendarDate {
	year, month, day := t.Date()
	return calendarDate{year: year, month: month, day: day}
}

// DefaultHolidays returns the US holidays that most commonly distort a yearly profile.
func DefaultHolidays() []*cal.Holiday {
	return []*cal.Holiday{
		us.NewYear,
		us.IndependenceDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	}
}

// DropHolidays returns a new dataset without the points falling on the observed date of any of
// the holidays. Dates are compared in the location of each point.
func (td *TimeDataset) DropHolidays(hols ...*cal.Holiday) *TimeDataset {
	if td == nil {
		return nil
	}
	if len(hols) == 0 {
		return td.Copy()
	}

	// observed dates can shift into the prior year, e.g. new year's day on a saturday
	years := TimeSlice(td.T).Years()
	if len(years) > 0 {
		years = append(years, years[len(years)-1]+1)
	}

	observed := make(map[calendarDate]struct{})
	for _, year := range years {
		for _, hol := range hols {
			_, obs := hol.Calc(year)
			if obs.IsZero() {
				continue
			}
			observed[dateOf(obs)] = struct{}{}
		}
	}

	return td.filter(func(i int) bool {
		_, isHoliday := observed[dateOf(td.T[i])]
		return !isHoliday
	})
}

package timedataset

import "time"

type TimeSlice []time.Time

func (t TimeSlice) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return t[0]
}

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}
	return t[len(t)-1]
}

// Years lists every calendar year touched by the time slice in ascending order
func (t TimeSlice) Years() []int {
	if len(t) < 1 {
		return nil
	}
	first, last := t.StartTime().Year(), t.EndTime().Year()
	years := make([]int, 0, last-first+1)
	for year := first; year <= last; year++ {
		years = append(years, year)
	}
	return years
}

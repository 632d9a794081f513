package timedataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartEndTime(t *testing.T) {
	testData := map[string]struct {
		tSlice   TimeSlice
		expStart time.Time
		expEnd   time.Time
	}{
		"nil input": {
			tSlice: nil,
		},
		"valid": {
			tSlice: TimeSlice([]time.Time{
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 3, 0, 0, 0, 0, time.UTC),
			}),
			expStart: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			expEnd:   time.Date(1970, 1, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expStart, td.tSlice.StartTime())
			assert.Equal(t, td.expEnd, td.tSlice.EndTime())
		})
	}
}

func TestYears(t *testing.T) {
	testData := map[string]struct {
		tSlice   TimeSlice
		expected []int
	}{
		"nil input": {
			tSlice: nil,
		},
		"single year": {
			tSlice: TimeSlice([]time.Time{
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 6, 1, 0, 0, 0, 0, time.UTC),
			}),
			expected: []int{1970},
		},
		"gap years": {
			tSlice: TimeSlice([]time.Time{
				time.Date(1970, 12, 31, 0, 0, 0, 0, time.UTC),
				time.Date(1973, 1, 1, 0, 0, 0, 0, time.UTC),
			}),
			expected: []int{1970, 1971, 1972, 1973},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, td.tSlice.Years())
		})
	}
}

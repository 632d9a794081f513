package timedataset

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrNoTrainingData     = errors.New("no training data")
	ErrNonMontonic        = errors.New("time feature is not monotonic")
	ErrDatasetLenMismatch = errors.New("time feature has a different length than observations")
	ErrInvalidFraction    = errors.New("test fraction must be between 0 and 1 exclusive")
	ErrEmptySplit         = errors.New("split leaves train or test empty")
)

// TimeDataset represents a time series storing a slice of time points and values.
// Both must be of the same length.
type TimeDataset struct {
	T []time.Time `json:"time"`
	Y []float64   `json:"values"`
}

// NewUnivariateDataset returns an instance of a TimeDataset given a time and value slice.
func NewUnivariateDataset(t []time.Time, y []float64) (*TimeDataset, error) {
	if len(y) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time feature has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrDatasetLenMismatch,
		)
	}

	for i := 1; i < len(t); i++ {
		if !t[i].After(t[i-1]) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMontonic)
		}
	}

	return newCopy(t, y), nil
}

func newCopy(t []time.Time, y []float64) *TimeDataset {
	tSeries := make([]time.Time, len(t))
	ySeries := make([]float64, len(y))
	copy(tSeries, t)
	copy(ySeries, y)
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}
}

// Copy returns a deep copy of the dataset
func (td *TimeDataset) Copy() *TimeDataset {
	return newCopy(td.T, td.Y)
}

// Len is the number of points in the dataset, 0 for a nil dataset
func (td *TimeDataset) Len() int {
	if td == nil {
		return 0
	}
	return len(td.T)
}

// DropNan returns a new dataset without the points that have a NaN value
func (td *TimeDataset) DropNan() *TimeDataset {
	if td == nil {
		return nil
	}
	return td.filter(func(i int) bool {
		return !math.IsNaN(td.Y[i])
	})
}

func (td *TimeDataset) filter(keep func(i int) bool) *TimeDataset {
	t := make([]time.Time, 0, len(td.T))
	y := make([]float64, 0, len(td.Y))
	for i := 0; i < len(td.T); i++ {
		if !keep(i) {
			continue
		}
		t = append(t, td.T[i])
		y = append(y, td.Y[i])
	}
	return &TimeDataset{
		T: t,
		Y: y,
	}
}

// SplitAt places every point before cut in the train set and the rest in the test set.
func (td *TimeDataset) SplitAt(cut time.Time) (*TimeDataset, *TimeDataset, error) {
	idx := len(td.T)
	for i, tPnt := range td.T {
		if !tPnt.Before(cut) {
			idx = i
			break
		}
	}
	return td.splitIdx(idx)
}

// SplitFraction holds out the trailing testFrac share of points, rounded up, as the test set.
func (td *TimeDataset) SplitFraction(testFrac float64) (*TimeDataset, *TimeDataset, error) {
	if testFrac <= 0 || testFrac >= 1 || math.IsNaN(testFrac) {
		return nil, nil, fmt.Errorf("got %.4f, %w", testFrac, ErrInvalidFraction)
	}
	n := len(td.T)
	testCnt := int(math.Ceil(float64(n) * testFrac))
	return td.splitIdx(n - testCnt)
}

func (td *TimeDataset) splitIdx(idx int) (*TimeDataset, *TimeDataset, error) {
	n := len(td.T)
	if idx <= 0 || idx >= n {
		return nil, nil, fmt.Errorf("train has %d points and test has %d points, %w", idx, n-idx, ErrEmptySplit)
	}
	train := newCopy(td.T[:idx], td.Y[:idx])
	test := newCopy(td.T[idx:], td.Y[idx:])
	return train, test, nil
}

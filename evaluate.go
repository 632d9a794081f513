// Package forecasteval scores forecasts over a held out test set and plots the evaluation.
package forecasteval

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aouyang1/go-forecast-eval/metrics"
	"github.com/aouyang1/go-forecast-eval/timedataset"
	"github.com/goccy/go-json"
)

var (
	ErrEmptyTimeDataset = errors.New("no timedataset or uninitialized")
	ErrOverlappingSplit = errors.New("test set does not start after the train set ends")
)

// Results holds a scored forecast over a held out test set
type Results struct {
	Train     *timedataset.TimeDataset `json:"train,omitempty"`
	Test      *timedataset.TimeDataset `json:"test"`
	Predicted []float64                `json:"predicted"`
	Residual  []float64                `json:"residual"`
	Scores    *metrics.Scores          `json:"scores"`
}

// Evaluate scores the predicted values against the test set. The train set is optional and only
// used for plotting, but when present it must end before the test set starts.
func Evaluate(train, test *timedataset.TimeDataset, predicted []float64) (*Results, error) {
	if test.Len() == 0 {
		return nil, fmt.Errorf("test set, %w", ErrEmptyTimeDataset)
	}
	if train.Len() > 0 {
		trainEnd := timedataset.TimeSlice(train.T).EndTime()
		testStart := timedataset.TimeSlice(test.T).StartTime()
		if !trainEnd.Before(testStart) {
			return nil, fmt.Errorf(
				"train ends at %s, test starts at %s, %w",
				trainEnd.Format(time.RFC3339), testStart.Format(time.RFC3339), ErrOverlappingSplit,
			)
		}
	}

	scores, err := metrics.NewScores(test.Y, predicted)
	if err != nil {
		return nil, fmt.Errorf("unable to score predictions, %w", err)
	}

	residual := make([]float64, len(predicted))
	for i := range predicted {
		residual[i] = predicted[i] - test.Y[i]
	}

	pred := make([]float64, len(predicted))
	copy(pred, predicted)

	res := &Results{
		Test:      test.Copy(),
		Predicted: pred,
		Residual:  residual,
		Scores:    scores,
	}
	if train.Len() > 0 {
		res.Train = train.Copy()
	}
	return res, nil
}

// Series joins the train and test sets back into a single dataset
func (r *Results) Series() (*timedataset.TimeDataset, error) {
	if r.Train.Len() == 0 {
		return r.Test.Copy(), nil
	}
	t := append(append([]time.Time{}, r.Train.T...), r.Test.T...)
	y := append(append([]float64{}, r.Train.Y...), r.Test.Y...)
	return timedataset.NewUnivariateDataset(t, y)
}

// WriteJSON encodes the results as indented json. Non-finite scores are written as null.
func (r *Results) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

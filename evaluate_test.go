package forecasteval

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aouyang1/go-forecast-eval/metrics"
	"github.com/aouyang1/go-forecast-eval/timedataset"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDataset(t *testing.T, start time.Time, y []float64) *timedataset.TimeDataset {
	t.Helper()
	td, err := timedataset.NewUnivariateDataset(
		timedataset.GenerateT(len(y), 24*time.Hour, start),
		y,
	)
	require.Nil(t, err)
	return td
}

func TestEvaluate(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	train := newDataset(t, start, []float64{1, 2, 3})
	test := newDataset(t, start.Add(3*24*time.Hour), []float64{10, 20, 30})

	testData := map[string]struct {
		train     *timedataset.TimeDataset
		test      *timedataset.TimeDataset
		predicted []float64
		err       error
	}{
		"valid": {
			train:     train,
			test:      test,
			predicted: []float64{12, 18, 33},
		},
		"no train": {
			test:      test,
			predicted: []float64{12, 18, 33},
		},
		"no test": {
			train:     train,
			predicted: []float64{12, 18, 33},
			err:       ErrEmptyTimeDataset,
		},
		"overlapping": {
			train:     test,
			test:      train,
			predicted: []float64{1, 2, 3},
			err:       ErrOverlappingSplit,
		},
		"prediction length mismatch": {
			train:     train,
			test:      test,
			predicted: []float64{12, 18},
			err:       metrics.ErrLengthMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := Evaluate(td.train, td.test, td.predicted)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)

			assert.InDelta(t, 1.0, res.Scores.Bias, 1e-9)
			assert.InDelta(t, 7.0/3.0, res.Scores.MAE, 1e-9)
			assert.InDelta(t, 40.0/3.0, res.Scores.MAPE, 1e-9)
			assert.Equal(t, []float64{2, -2, 3}, res.Residual)
			assert.Equal(t, td.train.Len(), res.Train.Len())
		})
	}
}

func TestEvaluateCopiesInput(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	test := newDataset(t, start, []float64{10, 20})
	predicted := []float64{11, 21}

	res, err := Evaluate(nil, test, predicted)
	require.Nil(t, err)

	predicted[0] = 0
	test.Y[0] = 0
	assert.Equal(t, []float64{11, 21}, res.Predicted)
	assert.Equal(t, []float64{10, 20}, res.Test.Y)
}

func TestResultsSeries(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	train := newDataset(t, start, []float64{1, 2})
	test := newDataset(t, start.Add(2*24*time.Hour), []float64{3, 4})

	res, err := Evaluate(train, test, []float64{3, 4})
	require.Nil(t, err)

	series, err := res.Series()
	require.Nil(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, series.Y)
	assert.Equal(t, 4, series.Len())

	res.Train = nil
	series, err = res.Series()
	require.Nil(t, err)
	assert.Equal(t, []float64{3, 4}, series.Y)
}

func TestResultsWriteJSON(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	test := newDataset(t, start, []float64{0, 20})

	res, err := Evaluate(nil, test, []float64{1, 20})
	require.Nil(t, err)

	var buf bytes.Buffer
	require.Nil(t, res.WriteJSON(&buf))

	var decoded struct {
		Predicted []float64       `json:"predicted"`
		Residual  []float64       `json:"residual"`
		Scores    *metrics.Scores `json:"scores"`
		Train     json.RawMessage `json:"train"`
	}
	require.Nil(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, []float64{1, 20}, decoded.Predicted)
	assert.Equal(t, []float64{1, 0}, decoded.Residual)
	assert.InDelta(t, 0.5, decoded.Scores.Bias, 1e-9)
	assert.True(t, math.IsNaN(decoded.Scores.MAPE), "infinite mape is written as null")
	assert.Nil(t, decoded.Train)
}

func TestPlotOptsDefaults(t *testing.T) {
	testData := map[string]struct {
		opt      *PlotOpts
		expected PlotOpts
	}{
		"nil": {
			expected: PlotOpts{Title: DefaultPlotTitle, Target: DefaultPlotTarget},
		},
		"partial": {
			opt:      &PlotOpts{Target: "sales"},
			expected: PlotOpts{Title: DefaultPlotTitle, Target: "sales"},
		},
		"full": {
			opt:      &PlotOpts{Title: "Weekly", Target: "sales"},
			expected: PlotOpts{Title: "Weekly", Target: "sales"},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, td.opt.withDefaults())
		})
	}
}

func TestResultsPlot(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	train := newDataset(t, start, []float64{1, 2, 3})
	test := newDataset(t, start.Add(3*24*time.Hour), []float64{10, 20, 30})

	res, err := Evaluate(train, test, []float64{12, 18, 33})
	require.Nil(t, err)

	c, err := res.Charts(nil)
	require.Nil(t, err)
	assert.Len(t, c, 4)

	path := filepath.Join(t.TempDir(), "evaluation.html")
	require.Nil(t, res.Plot(path, &PlotOpts{Title: "Daily Sales", Target: "sales"}))

	out, err := os.ReadFile(path)
	require.Nil(t, err)
	assert.Contains(t, string(out), "Daily Sales")
	assert.Contains(t, string(out), "Yearly Seasonality")
}

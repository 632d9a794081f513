package plot

import (
	"time"

	"github.com/aouyang1/go-forecast-eval/metrics"
	"github.com/aouyang1/go-forecast-eval/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// TrainTestSplit plots the train and test sets as two series over their combined time axis. Each
// series is missing wherever the other one has data.
func TrainTestSplit(train, test *timedataset.TimeDataset, target, title string) *charts.Line {
	nTrain, nTest := train.Len(), test.Len()

	t := make([]time.Time, 0, nTrain+nTest)
	trainData := make([]opts.LineData, 0, nTrain+nTest)
	testData := make([]opts.LineData, 0, nTrain+nTest)
	if train != nil {
		t = append(t, train.T...)
		trainData = append(trainData, lineData(train.Y)...)
		testData = append(testData, missingData(nTrain)...)
	}
	if test != nil {
		t = append(t, test.T...)
		trainData = append(trainData, missingData(nTest)...)
		testData = append(testData, lineData(test.Y)...)
	}

	line := newLine(title, "", "", target)
	line.SetXAxis(t).
		AddSeries("Train", trainData).
		AddSeries("Test", testData)
	return line
}

// Evaluation plots the actual test values against the predicted values. When scores are given
// they are shown as the subtitle. A nil test set plots only the predicted values.
func Evaluation(test *timedataset.TimeDataset, predicted []float64, scores *metrics.Scores, title string) *charts.Line {
	var subtitle string
	if scores != nil {
		subtitle = scores.String()
	}

	var t []time.Time
	var actual []float64
	if test != nil {
		t, actual = test.T, test.Y
	}

	line := newLine(title, subtitle, "", "")
	line.SetXAxis(t).
		AddSeries("Actual", lineData(actual)).
		AddSeries("Predicted", lineData(predicted))
	return line
}

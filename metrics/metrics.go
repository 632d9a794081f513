// Package metrics scores a forecast against the values it was trying to predict.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch is returned when actual and predicted differ in length
var ErrLengthMismatch = errors.New("predicted and actual have different lengths")

// Number is any element type that can be scored.
type Number interface {
	~float64 | ~float32 |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// pair holds actual and predicted values after conversion to float64 along with the
// element-wise error predicted - actual.
type pair struct {
	actual    []float64
	predicted []float64
	err       []float64
}

func newPair[T Number](actual, predicted []T) (*pair, error) {
	if len(predicted) != len(actual) {
		return nil, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrLengthMismatch)
	}

	p := &pair{
		actual:    toFloat64(actual),
		predicted: toFloat64(predicted),
		err:       make([]float64, len(actual)),
	}
	floats.SubTo(p.err, p.predicted, p.actual)
	return p, nil
}

func toFloat64[T Number](x []T) []float64 {
	if f, ok := any(x).([]float64); ok {
		return f
	}
	res := make([]float64, len(x))
	for i, v := range x {
		res[i] = float64(v)
	}
	return res
}

func (p *pair) bias() float64 {
	return stat.Mean(p.err, nil)
}

func (p *pair) mae() float64 {
	absErr := make([]float64, len(p.err))
	for i, e := range p.err {
		absErr[i] = math.Abs(e)
	}
	return stat.Mean(absErr, nil)
}

func (p *pair) mape() float64 {
	pctErr := make([]float64, len(p.err))
	floats.DivTo(pctErr, p.err, p.actual)
	for i, e := range pctErr {
		pctErr[i] = math.Abs(e) * 100.0
	}
	return stat.Mean(pctErr, nil)
}

func (p *pair) mse() float64 {
	return floats.Dot(p.err, p.err) / float64(len(p.err))
}

func (p *pair) rSquared() float64 {
	r2 := stat.RSquaredFrom(p.predicted, p.actual, nil)
	if math.IsNaN(r2) && len(p.actual) > 0 && floats.Equal(p.predicted, p.actual) {
		return 1.0
	}
	return r2
}

// Bias computes the mean of predicted - actual. A positive bias means the forecast
// systematically over-predicts.
func Bias[T Number](actual, predicted []T) (float64, error) {
	p, err := newPair(actual, predicted)
	if err != nil {
		return 0, err
	}
	return p.bias(), nil
}

// MAE computes the mean absolute error, mean(abs(predicted - actual)).
// A score of 0 means a perfect match with no errors.
func MAE[T Number](actual, predicted []T) (float64, error) {
	p, err := newPair(actual, predicted)
	if err != nil {
		return 0, err
	}
	return p.mae(), nil
}

// MAPE computes the mean absolute percent error, mean(abs((predicted - actual) / actual)) * 100.
// Zeros in actual are not skipped and produce +Inf, or NaN when the prediction is also zero.
func MAPE[T Number](actual, predicted []T) (float64, error) {
	p, err := newPair(actual, predicted)
	if err != nil {
		return 0, err
	}
	return p.mape(), nil
}

// MSE computes the mean squared error, mean((predicted - actual)^2).
func MSE[T Number](actual, predicted []T) (float64, error) {
	p, err := newPair(actual, predicted)
	if err != nil {
		return 0, err
	}
	return p.mse(), nil
}

// RMSE is the square root of MSE and carries the units of the series.
func RMSE[T Number](actual, predicted []T) (float64, error) {
	mse, err := MSE(actual, predicted)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// RSquared computes the r squared value between the predicted and actual where 1.0 means perfect
// fit and 0 represents no relationship
func RSquared[T Number](actual, predicted []T) (float64, error) {
	p, err := newPair(actual, predicted)
	if err != nil {
		return 0, err
	}
	return p.rSquared(), nil
}

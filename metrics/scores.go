package metrics

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// Scores tracks the fit scores of a forecast
type Scores struct {
	Bias float64 `json:"bias"`
	MAE  float64 `json:"mean_absolute_error"`
	MAPE float64 `json:"mean_absolute_percent_error"`
	MSE  float64 `json:"mean_squared_error"`
	RMSE float64 `json:"root_mean_squared_error"`
	R2   float64 `json:"r_squared"`
}

// NewScores calculates every score given the actual and predicted input slice values. Both
// slices are converted once and shared across the individual scores.
func NewScores[T Number](actual, predicted []T) (*Scores, error) {
	p, err := newPair(actual, predicted)
	if err != nil {
		return nil, fmt.Errorf("unable to compute scores, %w", err)
	}

	mse := p.mse()
	return &Scores{
		Bias: p.bias(),
		MAE:  p.mae(),
		MAPE: p.mape(),
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		R2:   p.rSquared(),
	}, nil
}

// String renders the scores on a single line, used as a chart subtitle
func (s *Scores) String() string {
	return fmt.Sprintf(
		"bias=%.4f mae=%.4f mape=%.2f%% rmse=%.4f r2=%.4f",
		s.Bias, s.MAE, s.MAPE, s.RMSE, s.R2,
	)
}

type scoresJSON struct {
	Bias *float64 `json:"bias"`
	MAE  *float64 `json:"mean_absolute_error"`
	MAPE *float64 `json:"mean_absolute_percent_error"`
	MSE  *float64 `json:"mean_squared_error"`
	RMSE *float64 `json:"root_mean_squared_error"`
	R2   *float64 `json:"r_squared"`
}

// finite returns nil for NaN and infinite values since json has no representation for them
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// MarshalJSON writes non-finite scores as null
func (s Scores) MarshalJSON() ([]byte, error) {
	return json.Marshal(scoresJSON{
		Bias: finite(s.Bias),
		MAE:  finite(s.MAE),
		MAPE: finite(s.MAPE),
		MSE:  finite(s.MSE),
		RMSE: finite(s.RMSE),
		R2:   finite(s.R2),
	})
}

// UnmarshalJSON reads null scores back as NaN
func (s *Scores) UnmarshalJSON(data []byte) error {
	var sj scoresJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}
	fromPtr := func(v *float64) float64 {
		if v == nil {
			return math.NaN()
		}
		return *v
	}
	s.Bias = fromPtr(sj.Bias)
	s.MAE = fromPtr(sj.MAE)
	s.MAPE = fromPtr(sj.MAPE)
	s.MSE = fromPtr(sj.MSE)
	s.RMSE = fromPtr(sj.RMSE)
	s.R2 = fromPtr(sj.R2)
	return nil
}

package forecasteval

import (
	"fmt"

	"github.com/aouyang1/go-forecast-eval/plot"
	"github.com/go-echarts/go-echarts/v2/components"
)

const (
	DefaultPlotTitle  = "Forecast Evaluation"
	DefaultPlotTarget = "value"
)

// PlotOpts names the plotted target and the page title. Empty fields fall back to the defaults.
type PlotOpts struct {
	Title  string
	Target string
}

func (o *PlotOpts) withDefaults() PlotOpts {
	res := PlotOpts{
		Title:  DefaultPlotTitle,
		Target: DefaultPlotTarget,
	}
	if o == nil {
		return res
	}
	if o.Title != "" {
		res.Title = o.Title
	}
	if o.Target != "" {
		res.Target = o.Target
	}
	return res
}

// Charts builds the train/test split, evaluation, residual and yearly seasonality charts for the
// results
func (r *Results) Charts(opt *PlotOpts) ([]components.Charter, error) {
	o := opt.withDefaults()

	series, err := r.Series()
	if err != nil {
		return nil, fmt.Errorf("unable to join train and test sets, %w", err)
	}

	return []components.Charter{
		plot.TrainTestSplit(r.Train, r.Test, o.Target, "Train/Test Split"),
		plot.Evaluation(r.Test, r.Predicted, r.Scores, "Forecast vs Actual"),
		plot.LineTSeries(
			"Forecast Residual",
			[]string{"Residual"},
			r.Test.T,
			[][]float64{r.Residual},
		),
		plot.YearlySeasonality(series, o.Target, "Yearly Seasonality"),
	}, nil
}

// Plot uses the Apache Echarts library to generate an html file showing the train/test split,
// the forecast against the actual values, the residual and the yearly seasonality
func (r *Results) Plot(path string, opt *PlotOpts) error {
	c, err := r.Charts(opt)
	if err != nil {
		return err
	}
	return plot.RenderFile(path, opt.withDefaults().Title, c...)
}

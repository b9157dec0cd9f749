package services

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"airbnb-dashboard/models"
)

// DefaultPeriod is a weekly cycle over daily observations.
const DefaultPeriod = 7

// Decomposer splits a daily series into trend, seasonal and residual parts.
type Decomposer interface {
	Decompose(series models.DailyPriceSeries) (*models.Decomposition, error)
}

// ClassicalDecomposer is the additive classical decomposition: a centred
// moving average for the trend and per-phase means of the detrended series
// for the seasonal component.
type ClassicalDecomposer struct {
	Period int
}

// NewClassicalDecomposer returns a decomposer for the given period,
// falling back to DefaultPeriod when period is not positive.
func NewClassicalDecomposer(period int) *ClassicalDecomposer {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &ClassicalDecomposer{Period: period}
}

// Decompose requires at least two full periods of observations.
func (d *ClassicalDecomposer) Decompose(series models.DailyPriceSeries) (*models.Decomposition, error) {
	p := d.Period
	n := len(series)
	if p < 2 || n < 2*p {
		return nil, &models.DecompositionError{Points: n, Period: p}
	}

	observed := series.Values()
	trend := movingAverage(observed, centredWeights(p))

	detrended := make([]float64, n)
	for i := range observed {
		detrended[i] = observed[i] - trend[i]
	}

	figure := phaseMeans(detrended, p)
	centre := stat.Mean(figure, nil)
	for i := range figure {
		figure[i] -= centre
	}

	seasonal := make([]float64, n)
	residual := make([]float64, n)
	for i := range observed {
		seasonal[i] = figure[i%p]
		residual[i] = detrended[i] - seasonal[i]
	}

	return &models.Decomposition{
		Dates:    series.Dates(),
		Observed: observed,
		Trend:    trend,
		Seasonal: seasonal,
		Residual: residual,
		Period:   p,
	}, nil
}

// centredWeights returns p equal weights for odd p, and p+1 weights with
// halved ends for even p, so the window is always centred.
func centredWeights(p int) []float64 {
	if p%2 == 1 {
		w := make([]float64, p)
		for i := range w {
			w[i] = 1 / float64(p)
		}
		return w
	}

	w := make([]float64, p+1)
	for i := range w {
		w[i] = 1 / float64(p)
	}
	w[0] /= 2
	w[p] /= 2
	return w
}

// movingAverage applies a centred filter. Points within half a window of
// either end are NaN.
func movingAverage(x, weights []float64) []float64 {
	n := len(x)
	half := len(weights) / 2
	out := make([]float64, n)

	for i := range out {
		if i < half || i+half >= n {
			out[i] = math.NaN()
			continue
		}
		var sum float64
		for k, w := range weights {
			sum += w * x[i-half+k]
		}
		out[i] = sum
	}
	return out
}

// phaseMeans averages x[i], x[i+p], x[i+2p], ... for each phase i,
// skipping NaN values.
func phaseMeans(x []float64, p int) []float64 {
	out := make([]float64, p)
	for phase := 0; phase < p; phase++ {
		var vals []float64
		for i := phase; i < len(x); i += p {
			if !math.IsNaN(x[i]) {
				vals = append(vals, x[i])
			}
		}
		if len(vals) == 0 {
			out[phase] = math.NaN()
			continue
		}
		out[phase] = stat.Mean(vals, nil)
	}
	return out
}

package engine

import (
	"math"
	"time"

	"github.com/sageplan/sage-backend/internal/model"
)

// Perturbation amplitudes as fractions of the series end value. Three
// well-separated sinusoid periods give smooth but non-monotonic movement
// with no entropy source.
const (
	noiseAmpFast    = 0.006
	noiseAmpMid     = 0.004
	noiseAmpSlow    = 0.01
	noisePeriodFast = 5.0
	noisePeriodMid  = 13.0
	noisePeriodSlow = 37.0
)

// PerformanceRange is a named lookback preset for the performance chart.
type PerformanceRange string

const (
	Range1W  PerformanceRange = "1W"
	Range1M  PerformanceRange = "1M"
	Range3M  PerformanceRange = "3M"
	Range1Y  PerformanceRange = "1Y"
	RangeAll PerformanceRange = "ALL"
)

// rangeWindows maps each preset to its (days, step) sampling pair. Larger
// ranges sample more coarsely to bound output size.
var rangeWindows = map[PerformanceRange]struct{ days, step int }{
	Range1W:  {7, 1},
	Range1M:  {30, 1},
	Range3M:  {90, 2},
	Range1Y:  {365, 7},
	RangeAll: {1825, 30},
}

// RangeWindow resolves a preset to its sampling parameters.
func RangeWindow(r PerformanceRange) (days, step int, ok bool) {
	w, ok := rangeWindows[r]
	if !ok {
		return 0, 0, false
	}
	return w.days, w.step, true
}

// GeneratePerformanceSeries produces a synthetic portfolio value series
// ending at endValue on the given end date. The series is constructed
// backward: the start value is back-solved from constant compound growth at
// annualReturn over the window, then each sampled day gets a deterministic
// multi-frequency perturbation. Identical arguments always produce an
// identical series.
func GeneratePerformanceSeries(endValue, annualReturn float64, days, step int, end time.Time) []model.PerformancePoint {
	if days < 0 {
		days = 0
	}
	if step < 1 {
		step = 1
	}

	startValue := endValue / math.Pow(1+annualReturn, float64(days)/365)

	points := make([]model.PerformancePoint, 0, days/step+1)
	for i := 0; i <= days; i += step {
		t := float64(i) / 365
		base := startValue * math.Pow(1+annualReturn, t)
		noise := endValue * (noiseAmpFast*math.Sin(float64(i)/noisePeriodFast) +
			noiseAmpMid*math.Sin(float64(i)/noisePeriodMid) +
			noiseAmpSlow*math.Sin(float64(i)/noisePeriodSlow))
		points = append(points, model.PerformancePoint{
			Date:  end.AddDate(0, 0, i-days),
			Value: round2(base + noise),
		})
	}

	return points
}

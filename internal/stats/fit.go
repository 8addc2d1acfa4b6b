package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Fit is an ordinary least squares line y = Intercept + Slope·x.
type Fit struct {
	Slope     float64
	Intercept float64
	// SlopeErr and InterceptErr are standard errors. They are NaN for a fit
	// through exactly two points.
	SlopeErr     float64
	InterceptErr float64
	RSquared     float64
	N            int
}

// At evaluates the fitted line at x.
func (f Fit) At(x float64) float64 { return f.Intercept + f.Slope*x }

// LinearFit fits a straight line to the points (x[i], y[i]).
func LinearFit(x, y []float64) (Fit, error) {
	if len(x) != len(y) {
		return Fit{}, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(x), len(y))
	}
	n := len(x)
	if n < 2 {
		return Fit{}, fmt.Errorf("%w, got %d", ErrTooFewPoints, n)
	}

	xMean := stat.Mean(x, nil)
	var sxx float64
	for _, xi := range x {
		d := xi - xMean
		sxx += d * d
	}
	if sxx == 0 {
		return Fit{}, ErrDegenerateFit
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	fit := Fit{
		Slope:        slope,
		Intercept:    intercept,
		SlopeErr:     math.NaN(),
		InterceptErr: math.NaN(),
		RSquared:     stat.RSquared(x, y, nil, intercept, slope),
		N:            n,
	}

	if n > 2 {
		var ssr float64
		for i := range x {
			r := y[i] - fit.At(x[i])
			ssr += r * r
		}
		s := math.Sqrt(ssr / float64(n-2))
		fit.SlopeErr = s / math.Sqrt(sxx)
		fit.InterceptErr = s * math.Sqrt(1/float64(n)+xMean*xMean/sxx)
	}
	return fit, nil
}

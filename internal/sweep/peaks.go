package sweep

import (
	"fmt"
	"sort"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
)

// Quantity selects one column of the estimates.
type Quantity int

const (
	Epsilon Quantity = iota
	Magnetization
	SpecificHeat
	Susceptibility
)

var quantityNames = []string{"epsilon", "m_abs", "C_v", "chi"}

func (q Quantity) String() string {
	if q < 0 || int(q) >= len(quantityNames) {
		return fmt.Sprintf("Quantity(%d)", int(q))
	}
	return quantityNames[q]
}

// ParseQuantity maps a column name to its Quantity.
func ParseQuantity(name string) (Quantity, error) {
	for i, n := range quantityNames {
		if n == name {
			return Quantity(i), nil
		}
	}
	return 0, fmt.Errorf("sweep: unknown quantity %q (one of %v)", name, quantityNames)
}

// Of extracts q from e.
func (q Quantity) Of(e stats.Estimates) float64 {
	switch q {
	case Epsilon:
		return e.Epsilon
	case Magnetization:
		return e.Magnetization
	case SpecificHeat:
		return e.SpecificHeat
	case Susceptibility:
		return e.Susceptibility
	}
	return 0
}

// Values returns q for every point.
func Values(points []Point, q Quantity) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = q.Of(p.Estimates)
	}
	return out
}

// SortByTemperature orders points by ascending temperature in place.
func SortByTemperature(points []Point) {
	sort.SliceStable(points, func(i, j int) bool { return points[i].Temperature < points[j].Temperature })
}

// PeakOf returns the index of the point where q is largest. Ties go to the
// lowest temperature. points must be sorted by temperature.
func PeakOf(points []Point, q Quantity) (int, error) {
	if len(points) == 0 {
		return 0, ErrNoPoints
	}
	best := 0
	for i, p := range points {
		if q.Of(p.Estimates) > q.Of(points[best].Estimates) {
			best = i
		}
	}
	return best, nil
}

// ZoomWindow returns the temperature interval spanning the C_v and χ peaks,
// widened by margin grid points on each side and clamped to the grid.
// points must be sorted by temperature.
func ZoomWindow(points []Point, margin int) (tMin, tMax float64, err error) {
	cv, err := PeakOf(points, SpecificHeat)
	if err != nil {
		return 0, 0, err
	}
	chi, _ := PeakOf(points, Susceptibility)

	lo := max(0, min(cv, chi)-margin)
	hi := min(len(points)-1, max(cv, chi)+margin)
	return points[lo].Temperature, points[hi].Temperature, nil
}

// Extrapolation is the linear fit of T_c(L) against 1/L. Intercept is the
// estimate of T_c(∞).
type Extrapolation struct {
	stats.Fit
	Sizes []int
	Peaks []float64
}

// CriticalTemperature fits the peak temperatures T_c(L) against 1/L.
func CriticalTemperature(peaks map[int]float64) (Extrapolation, error) {
	sizes := make([]int, 0, len(peaks))
	for L := range peaks {
		if L < 1 {
			return Extrapolation{}, fmt.Errorf("sweep: invalid lattice size %d", L)
		}
		sizes = append(sizes, L)
	}
	sort.Ints(sizes)

	x := make([]float64, len(sizes))
	y := make([]float64, len(sizes))
	for i, L := range sizes {
		x[i] = 1 / float64(L)
		y[i] = peaks[L]
	}

	fit, err := stats.LinearFit(x, y)
	if err != nil {
		return Extrapolation{}, err
	}
	return Extrapolation{Fit: fit, Sizes: sizes, Peaks: y}, nil
}

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Bucket is one distinct value of a distribution.
type Bucket struct {
	Value       float64
	Count       int
	Probability float64
}

// Distribution is the empirical probability distribution of a sample
// sequence. Buckets are sorted by ascending value and probabilities sum to 1.
type Distribution struct {
	buckets []Bucket
	n       int
}

// NewDistribution buckets f(s) for every sample in a single pass. A nil f
// buckets the samples themselves.
func NewDistribution[T Number](samples []T, f Transform[T]) (*Distribution, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	f = orIdentity(f)

	counts := make(map[float64]int)
	for _, s := range samples {
		counts[f(s)]++
	}

	n := len(samples)
	buckets := make([]Bucket, 0, len(counts))
	for v, c := range counts {
		buckets = append(buckets, Bucket{
			Value:       v,
			Count:       c,
			Probability: float64(c) / float64(n),
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Value < buckets[j].Value })

	return &Distribution{buckets: buckets, n: n}, nil
}

// Buckets returns a copy of the buckets in ascending value order.
func (d *Distribution) Buckets() []Bucket {
	out := make([]Bucket, len(d.buckets))
	copy(out, d.buckets)
	return out
}

// Len returns the number of distinct values.
func (d *Distribution) Len() int { return len(d.buckets) }

// N returns the number of samples the distribution was built from.
func (d *Distribution) N() int { return d.n }

// Probability returns the probability of value v, 0 if it never occurred.
func (d *Distribution) Probability(v float64) float64 {
	i := sort.Search(len(d.buckets), func(i int) bool { return d.buckets[i].Value >= v })
	if i < len(d.buckets) && d.buckets[i].Value == v {
		return d.buckets[i].Probability
	}
	return 0
}

// Expected returns Σ g(value)·p(value). A nil g gives the mean.
func (d *Distribution) Expected(g func(float64) float64) float64 {
	values := make([]float64, len(d.buckets))
	counts := make([]float64, len(d.buckets))
	for i, b := range d.buckets {
		values[i] = b.Value
		if g != nil {
			values[i] = g(b.Value)
		}
		counts[i] = float64(b.Count)
	}
	return stat.Mean(values, counts)
}

// Mean returns the expectation of the bucketed values.
func (d *Distribution) Mean() float64 { return d.Expected(nil) }

// Variance returns ⟨v²⟩ - ⟨v⟩².
func (d *Distribution) Variance() float64 {
	mean := d.Mean()
	return d.Expected(func(v float64) float64 { return v * v }) - mean*mean
}

// Mode returns the most probable value. Ties go to the smaller value.
func (d *Distribution) Mode() float64 {
	best := Bucket{Probability: math.Inf(-1)}
	for _, b := range d.buckets {
		if b.Probability > best.Probability {
			best = b
		}
	}
	return best.Value
}

package stats

// ExpectedValue returns the arithmetic mean of f(s) over samples. A nil f
// averages the samples themselves.
func ExpectedValue[T Number](samples []T, f Transform[T]) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	f = orIdentity(f)

	var sum float64
	for _, s := range samples {
		sum += f(s)
	}
	return sum / float64(len(samples)), nil
}

// Mean returns the arithmetic mean of samples.
func Mean[T Number](samples []T) (float64, error) {
	return ExpectedValue(samples, nil)
}

// Variance returns the population variance ⟨x²⟩ - ⟨x⟩² of samples.
func Variance[T Number](samples []T) (float64, error) {
	mean, err := ExpectedValue(samples, nil)
	if err != nil {
		return 0, err
	}
	meanSq, _ := ExpectedValue(samples, Square[T])
	return meanSq - mean*mean, nil
}

package stats

import "math"

// Number is any signed integer or floating point sample type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Transform maps a sample to the value that is averaged or bucketed.
// A nil Transform is treated as Identity.
type Transform[T Number] func(T) float64

// Identity returns x as float64.
func Identity[T Number](x T) float64 { return float64(x) }

// Abs returns |x|.
func Abs[T Number](x T) float64 { return math.Abs(float64(x)) }

// Square returns x².
func Square[T Number](x T) float64 {
	v := float64(x)
	return v * v
}

// Scaled returns a transform multiplying each sample by k, e.g. 1/N to turn
// extensive samples into per-site ones.
func Scaled[T Number](k float64) Transform[T] {
	return func(x T) float64 { return k * float64(x) }
}

func orIdentity[T Number](f Transform[T]) Transform[T] {
	if f == nil {
		return Identity[T]
	}
	return f
}

package tdmatrix

import "math"

// Ones returns a dense vector of length n filled with 1.
func Ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}

// VecMax returns the maximum entry of v, or 0 for an empty vector.
func VecMax(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	max := v[0]
	for _, x := range v[1:] {
		if x > max {
			max = x
		}
	}

	return max
}

// HasZero reports whether any entry of v is exactly zero.
func HasZero(v []float64) bool {
	for _, x := range v {
		if x == 0 {
			return true
		}
	}

	return false
}

// MulElem returns a*b, element-wise. a and b must have equal length.
func MulElem(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}

	return out
}

// DivElem returns a/b, element-wise. a and b must have equal length; the
// caller is responsible for checking b for zeros beforehand if division by
// zero should be treated as an algorithm-level EarlyStop rather than +Inf.
func DivElem(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] / b[i]
	}

	return out
}

// Pow returns v raised element-wise to exponent g.
func Pow(v []float64, g float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Pow(x, g)
	}

	return out
}

// Scale returns v scaled by a constant factor.
func Scale(v []float64, factor float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * factor
	}

	return out
}

// Normalize divides v by its own maximum, so the returned vector's maximum
// entry is exactly 1. ok is false when max(v) == 0 (an all-zero vector
// cannot be normalised without producing NaN) — spec.md §9's "Normalisation
// ties" note: treat this as the signal for the kernel to stop iterating.
func Normalize(v []float64) (out []float64, ok bool) {
	max := VecMax(v)
	if max == 0 {
		return v, false
	}

	return Scale(v, 1/max), true
}

// Sub returns a-b, element-wise.
func Sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}

// Clone returns a copy of v.
func Clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}

package iterator

import (
	"errors"
	"math"
)

// Measure enumerates the distance functions a Convergence iterator may use.
type Measure string

// The four distance measures named in spec.md §4.C.
const (
	L1     Measure = "l1"
	L2     Measure = "l2"
	LInf   Measure = "l_inf"
	Cosine Measure = "cosine"
)

// ErrUnknownMeasure indicates a Measure value outside the four enumerated
// constants.
var ErrUnknownMeasure = errors.New("iterator: unknown distance measure")

// Distance computes the distance between a and b under the given measure.
// a and b must have equal length.
func Distance(measure Measure, a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	switch measure {
	case L1:
		var sum float64
		for i := range a {
			sum += math.Abs(a[i] - b[i])
		}
		return sum, nil

	case L2:
		var sum float64
		for i := range a {
			d := a[i] - b[i]
			sum += d * d
		}
		return math.Sqrt(sum), nil

	case LInf:
		var max float64
		for i := range a {
			d := math.Abs(a[i] - b[i])
			if d > max {
				max = d
			}
		}
		return max, nil

	case Cosine:
		norm1, norm2, dot := 0.0, 0.0, 0.0
		for i := range a {
			norm1 += a[i] * a[i]
			norm2 += b[i] * b[i]
			dot += a[i] * b[i]
		}
		norm1 = math.Sqrt(norm1)
		norm2 = math.Sqrt(norm2)
		if norm1 == 0 || norm2 == 0 {
			return 1, nil
		}
		d := 1 - (dot / (norm1 * norm2))
		return clip(d, 0, 1), nil

	default:
		return 0, ErrUnknownMeasure
	}
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// RankingVector returns the dense-rank encoding of v: sort ascending, assign
// rank 0 to the smallest value, and increment the rank only on a strict
// increase, so tied values share a rank. The result is mapped back to v's
// original positions.
func RankingVector(v []float64) []float64 {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	// Simple insertion sort by value; n is the number of sources/claims,
	// which is small relative to algorithm iteration cost.
	sortByValue(idx, v)

	ranks := make([]float64, len(v))
	rank := 0
	for i, pos := range idx {
		if i > 0 && v[pos] > v[idx[i-1]] {
			rank++
		}
		ranks[pos] = float64(rank)
	}

	return ranks
}

func sortByValue(idx []int, v []float64) {
	for i := 1; i < len(idx); i++ {
		j := i
		for j > 0 && v[idx[j-1]] > v[idx[j]] {
			idx[j-1], idx[j] = idx[j], idx[j-1]
			j--
		}
	}
}

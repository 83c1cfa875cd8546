package algorithm

import (
	"time"

	"github.com/katalvlaran/truthdiscovery/dataset"
	"github.com/katalvlaran/truthdiscovery/iterator"
	"github.com/katalvlaran/truthdiscovery/result"
	"github.com/katalvlaran/truthdiscovery/tdmatrix"
)

// rescaleThreshold is the magnitude at which UnboundedSums rescales its
// running trust/belief vectors to stay within float64's comfortable range,
// mirroring the reference implementation's constant of 1000.
const rescaleThreshold = 1000

// UnboundedSums is a variant of Sums that never renormalises trust and
// belief to a maximum of 1, letting both grow without bound; only their
// relative order is meaningful, so the final scores are converted to dense
// ranking vectors rather than reported as raw magnitudes.
// Grounded on truthdiscovery/algorithm/unboundedsums.py, a feature present
// in the reference implementation but dropped from the distilled kernel
// list; it is included here because it needs nothing beyond what Sums
// already exercises plus the Ordinal iterator.
type UnboundedSums struct {
	iter iterator.Iterator
}

// UnboundedSumsOption configures an UnboundedSums kernel.
type UnboundedSumsOption func(*UnboundedSums)

// WithUnboundedSumsIterator overrides the default Ordinal(2) iterator.
func WithUnboundedSumsIterator(it iterator.Iterator) UnboundedSumsOption {
	return func(u *UnboundedSums) { u.iter = it }
}

// NewUnboundedSums builds an UnboundedSums kernel with a default
// Ordinal(2) iterator and Count prior beliefs.
func NewUnboundedSums(opts ...UnboundedSumsOption) *UnboundedSums {
	u := &UnboundedSums{}
	for _, opt := range opts {
		opt(u)
	}
	if u.iter == nil {
		u.iter, _ = iterator.NewOrdinal(2)
	}
	return u
}

// Run iterates trust = SC*belief, belief = SC^T*trust with no
// max-normalisation, rescaling by 1000 whenever either vector's magnitude
// exceeds rescaleThreshold, then converts the final vectors to dense
// ranking vectors.
func (u *UnboundedSums) Run(d *dataset.Dataset) (*result.Result, error) {
	if d.NumClaims() == 0 {
		return nil, dataset.ErrEmptyDataset
	}

	belief, err := priorBeliefs(PriorsCount, d)
	if err != nil {
		return nil, err
	}
	trust := make([]float64, d.NumSources())

	u.iter.Reset()
	start := time.Now()

	for {
		done, err := u.iter.Finished()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		newTrust, err := d.SC().MatVec(belief)
		if err != nil {
			return nil, err
		}
		newBelief, err := d.SC().MatVecT(newTrust)
		if err != nil {
			return nil, err
		}

		if err := u.iter.Compare(trust, newTrust); err != nil {
			return nil, err
		}
		trust, belief = newTrust, newBelief

		if tdmatrix.VecMax(trust) > rescaleThreshold {
			trust = tdmatrix.Scale(trust, 1.0/rescaleThreshold)
		}
		if tdmatrix.VecMax(belief) > rescaleThreshold {
			belief = tdmatrix.Scale(belief, 1.0/rescaleThreshold)
		}
	}

	elapsed := time.Since(start)
	iterations := u.iter.Count()

	rankedTrust := iterator.RankingVector(trust)
	rankedBelief := iterator.RankingVector(belief)

	return packageResult("unbounded_sums", d, rankedTrust, rankedBelief, elapsed, &iterations, stateConverged)
}

package algorithm

import (
	"math"

	"github.com/katalvlaran/truthdiscovery/dataset"
	"github.com/katalvlaran/truthdiscovery/iterator"
	"github.com/katalvlaran/truthdiscovery/result"
	"github.com/katalvlaran/truthdiscovery/tdmatrix"
)

// AverageLog is Pasternack and Roth's refinement of Sums: the same belief
// update, but trust is weighted by log(claims made) / claims made, so
// prolific sources are not automatically favoured.
// Grounded on truthdiscovery/algorithm/average_log.py.
type AverageLog struct {
	iter   iterator.Iterator
	priors Priors
}

// AverageLogOption configures an AverageLog kernel.
type AverageLogOption func(*AverageLog)

// WithAverageLogIterator overrides the default Fixed(20) iterator.
func WithAverageLogIterator(it iterator.Iterator) AverageLogOption {
	return func(a *AverageLog) { a.iter = it }
}

// WithAverageLogPriors overrides the default Fixed prior belief.
func WithAverageLogPriors(p Priors) AverageLogOption {
	return func(a *AverageLog) { a.priors = p }
}

// NewAverageLog builds an AverageLog kernel with a default Fixed(20)
// iterator and Fixed prior beliefs.
func NewAverageLog(opts ...AverageLogOption) *AverageLog {
	a := &AverageLog{priors: PriorsFixed}
	for _, opt := range opts {
		opt(a)
	}
	if a.iter == nil {
		a.iter, _ = iterator.NewFixed(20)
	}
	return a
}

// Run iterates trust = weights .* (SC*belief), belief = SC^T*trust,
// normalised each iteration, where weights[i] = log(claims_i)/claims_i.
func (a *AverageLog) Run(d *dataset.Dataset) (*result.Result, error) {
	belief0, err := priorBeliefs(a.priors, d)
	if err != nil {
		return nil, err
	}
	trust0 := make([]float64, d.NumSources())

	claimCounts := d.SC().RowSums()
	weights := make([]float64, len(claimCounts))
	for i, c := range claimCounts {
		if c == 0 {
			return nil, ErrEmptyAssertion
		}
		weights[i] = math.Log(c) / c
	}

	step := func(trust, belief []float64) ([]float64, []float64, bool, error) {
		rawTrust, err := d.SC().MatVec(belief)
		if err != nil {
			return nil, nil, false, err
		}
		newTrust := tdmatrix.MulElem(weights, rawTrust)
		normTrust, ok := tdmatrix.Normalize(newTrust)
		if !ok {
			return nil, nil, true, nil
		}

		newBelief, err := d.SC().MatVecT(normTrust)
		if err != nil {
			return nil, nil, false, err
		}
		normBelief, ok := tdmatrix.Normalize(newBelief)
		if !ok {
			return nil, nil, true, nil
		}

		return normTrust, normBelief, false, nil
	}

	return runIterative("average_log", d, a.iter, trust0, belief0, step)
}

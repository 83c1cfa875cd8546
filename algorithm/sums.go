package algorithm

import (
	"github.com/katalvlaran/truthdiscovery/dataset"
	"github.com/katalvlaran/truthdiscovery/iterator"
	"github.com/katalvlaran/truthdiscovery/result"
	"github.com/katalvlaran/truthdiscovery/tdmatrix"
)

// Sums is the Hubs-and-Authorities-style kernel of Kleinberg, adapted to
// truth discovery by Pasternack and Roth. Trust and belief feed each other
// through SC and are renormalised by their max every iteration.
// Grounded on truthdiscovery/algorithm/sums.py.
type Sums struct {
	iter   iterator.Iterator
	priors Priors
}

// SumsOption configures a Sums kernel.
type SumsOption func(*Sums)

// WithSumsIterator overrides the default Fixed(20) iterator.
func WithSumsIterator(it iterator.Iterator) SumsOption {
	return func(s *Sums) { s.iter = it }
}

// WithSumsPriors overrides the default Fixed prior belief.
func WithSumsPriors(p Priors) SumsOption {
	return func(s *Sums) { s.priors = p }
}

// NewSums builds a Sums kernel with a default Fixed(20) iterator and Fixed
// prior beliefs, matching BaseIterativeAlgorithm's defaults.
func NewSums(opts ...SumsOption) *Sums {
	s := &Sums{priors: PriorsFixed}
	for _, opt := range opts {
		opt(s)
	}
	if s.iter == nil {
		s.iter, _ = iterator.NewFixed(20)
	}
	return s
}

// Run iterates trust = SC*belief, belief = SC^T*trust, each normalised by
// its own max, until the iterator is satisfied.
func (s *Sums) Run(d *dataset.Dataset) (*result.Result, error) {
	belief0, err := priorBeliefs(s.priors, d)
	if err != nil {
		return nil, err
	}
	trust0 := make([]float64, d.NumSources())

	step := func(trust, belief []float64) ([]float64, []float64, bool, error) {
		newTrust, err := d.SC().MatVec(belief)
		if err != nil {
			return nil, nil, false, err
		}
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

	return runIterative("sums", d, s.iter, trust0, belief0, step)
}

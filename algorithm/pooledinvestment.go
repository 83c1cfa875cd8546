package algorithm

import (
	"github.com/katalvlaran/truthdiscovery/dataset"
	"github.com/katalvlaran/truthdiscovery/iterator"
	"github.com/katalvlaran/truthdiscovery/result"
	"github.com/katalvlaran/truthdiscovery/tdmatrix"
)

// PooledInvestment refines Investment by pooling a claim's returns among
// the mutually exclusive claims for the same variable before growing them
// non-linearly, so competing claims are compared on equal footing.
// Grounded on truthdiscovery/algorithm/pooled_investment.py.
type PooledInvestment struct {
	iter   iterator.Iterator
	priors Priors
	g      float64
}

// PooledInvestmentOption configures a PooledInvestment kernel.
type PooledInvestmentOption func(*PooledInvestment)

// WithPooledInvestmentIterator overrides the default Fixed(10) iterator.
func WithPooledInvestmentIterator(it iterator.Iterator) PooledInvestmentOption {
	return func(p *PooledInvestment) { p.iter = it }
}

// WithPooledInvestmentPriors overrides the default Uniform prior belief.
func WithPooledInvestmentPriors(priors Priors) PooledInvestmentOption {
	return func(p *PooledInvestment) { p.priors = priors }
}

// WithPooledInvestmentG overrides the default growth exponent (1.4).
func WithPooledInvestmentG(g float64) PooledInvestmentOption {
	return func(p *PooledInvestment) { p.g = g }
}

// NewPooledInvestment builds a PooledInvestment kernel with a default
// Fixed(10) iterator, Uniform prior beliefs, and g = 1.4.
func NewPooledInvestment(opts ...PooledInvestmentOption) *PooledInvestment {
	p := &PooledInvestment{priors: PriorsUniform, g: 1.4}
	for _, opt := range opts {
		opt(p)
	}
	if p.iter == nil {
		p.iter, _ = iterator.NewFixed(10)
	}
	return p
}

// Run reuses Investment's trust update and pools returns within each
// variable's mutually exclusive claim set before applying the growth
// exponent.
func (p *PooledInvestment) Run(d *dataset.Dataset) (*result.Result, error) {
	belief0, err := priorBeliefs(p.priors, d)
	if err != nil {
		return nil, err
	}

	claimCounts := d.SC().RowSums()
	for _, c := range claimCounts {
		if c == 0 {
			return nil, ErrEmptyAssertion
		}
	}

	trust0 := tdmatrix.Ones(d.NumSources())

	step := func(trust, belief []float64) ([]float64, []float64, bool, error) {
		newTrust, earlyStop, err := investmentTrustStep(d, claimCounts, trust, belief)
		if err != nil || earlyStop {
			return nil, nil, earlyStop, err
		}

		baseReturns, err := d.SC().MatVecT(tdmatrix.DivElem(newTrust, claimCounts))
		if err != nil {
			return nil, nil, false, err
		}
		grown := tdmatrix.Pow(baseReturns, p.g)
		pooled, err := d.MutEx().MatVec(grown)
		if err != nil {
			return nil, nil, false, err
		}
		if tdmatrix.HasZero(pooled) {
			return nil, nil, true, nil
		}
		newBelief := tdmatrix.MulElem(baseReturns, tdmatrix.DivElem(grown, pooled))

		normTrust, ok := tdmatrix.Normalize(newTrust)
		if !ok {
			return nil, nil, true, nil
		}
		normBelief, ok := tdmatrix.Normalize(newBelief)
		if !ok {
			return nil, nil, true, nil
		}

		return normTrust, normBelief, false, nil
	}

	return runIterative("pooled_investment", d, p.iter, trust0, belief0, step)
}

package algorithm

import (
	"github.com/katalvlaran/truthdiscovery/dataset"
	"github.com/katalvlaran/truthdiscovery/iterator"
	"github.com/katalvlaran/truthdiscovery/result"
	"github.com/katalvlaran/truthdiscovery/tdmatrix"
)

// Investment is Pasternack and Roth's kernel where sources invest uniformly
// in the claims they assert and receive back a share of the "returns" each
// claim generates, proportional to their investment.
// Grounded on truthdiscovery/algorithm/investment.py.
type Investment struct {
	iter   iterator.Iterator
	priors Priors
	g      float64
}

// InvestmentOption configures an Investment kernel.
type InvestmentOption func(*Investment)

// WithInvestmentIterator overrides the default Fixed(20) iterator.
func WithInvestmentIterator(it iterator.Iterator) InvestmentOption {
	return func(inv *Investment) { inv.iter = it }
}

// WithInvestmentPriors overrides the default Voted prior belief.
func WithInvestmentPriors(p Priors) InvestmentOption {
	return func(inv *Investment) { inv.priors = p }
}

// WithInvestmentG overrides the default non-linear growth exponent (1.2).
func WithInvestmentG(g float64) InvestmentOption {
	return func(inv *Investment) { inv.g = g }
}

// NewInvestment builds an Investment kernel with a default Fixed(20)
// iterator, Voted prior beliefs, and g = 1.2.
func NewInvestment(opts ...InvestmentOption) *Investment {
	inv := &Investment{priors: PriorsVoted, g: 1.2}
	for _, opt := range opts {
		opt(inv)
	}
	if inv.iter == nil {
		inv.iter, _ = iterator.NewFixed(20)
	}
	return inv
}

// Run iterates the investment/return cycle described on the Investment
// type, normalising trust and belief by their max each round.
func (inv *Investment) Run(d *dataset.Dataset) (*result.Result, error) {
	belief0, err := priorBeliefs(inv.priors, d)
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

		newInvestment := tdmatrix.DivElem(newTrust, claimCounts)
		rawBelief, err := d.SC().MatVecT(newInvestment)
		if err != nil {
			return nil, nil, false, err
		}
		newBelief := tdmatrix.Pow(rawBelief, inv.g)

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

	return runIterative("investment", d, inv.iter, trust0, belief0, step)
}

// investmentTrustStep computes Investment's shared trust update: sources
// invest uniformly across their claims (trust/claimCounts), claims return
// that investment scaled by their total backing, and trust is the
// resulting payout. Shared with PooledInvestment.
func investmentTrustStep(d *dataset.Dataset, claimCounts, trust, belief []float64) (newTrust []float64, earlyStop bool, err error) {
	investmentAmounts := tdmatrix.DivElem(trust, claimCounts)

	returns, err := d.SC().MatVecT(investmentAmounts)
	if err != nil {
		return nil, false, err
	}
	if tdmatrix.HasZero(returns) {
		return nil, true, nil
	}
	invReturns := tdmatrix.DivElem(tdmatrix.Ones(len(returns)), returns)

	scaled, err := d.SC().ScaleColumns(invReturns)
	if err != nil {
		return nil, false, err
	}
	matBelief, err := scaled.MatVec(belief)
	if err != nil {
		return nil, false, err
	}

	return tdmatrix.MulElem(investmentAmounts, matBelief), false, nil
}

package algorithm

import (
	"github.com/katalvlaran/truthdiscovery/dataset"
	"github.com/katalvlaran/truthdiscovery/tdmatrix"
)

// Priors enumerates the prior-belief choices of spec.md §4.D.
type Priors string

// The four prior belief choices. Count is not named in spec.md's
// enumeration table but is used by UnboundedSums (see unboundedsums.go),
// grounded on the Python reference's PriorBelief.COUNT.
const (
	PriorsFixed   Priors = "fixed"
	PriorsVoted   Priors = "voted"
	PriorsUniform Priors = "uniform"
	PriorsCount   Priors = "count"
)

// priorBeliefs computes the initial belief vector b0 for the given Priors
// choice, per spec.md §4.D's three formulas.
func priorBeliefs(priors Priors, d *dataset.Dataset) ([]float64, error) {
	numClaims := d.NumClaims()
	numSources := d.NumSources()

	switch priors {
	case PriorsFixed:
		b := make([]float64, numClaims)
		for i := range b {
			b[i] = 0.5
		}
		return b, nil

	case PriorsVoted:
		counts, err := d.SC().MatVecT(tdmatrix.Ones(numSources))
		if err != nil {
			return nil, err
		}
		denom, err := d.MutEx().MatVec(counts)
		if err != nil {
			return nil, err
		}
		return tdmatrix.DivElem(counts, denom), nil

	case PriorsUniform:
		denom, err := d.MutEx().MatVec(tdmatrix.Ones(numClaims))
		if err != nil {
			return nil, err
		}
		ones := tdmatrix.Ones(numClaims)
		return tdmatrix.DivElem(ones, denom), nil

	case PriorsCount:
		return d.SC().MatVecT(tdmatrix.Ones(numSources))

	default:
		return nil, ErrUnknownPriors
	}
}

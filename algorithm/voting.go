package algorithm

import (
	"time"

	"github.com/katalvlaran/truthdiscovery/dataset"
	"github.com/katalvlaran/truthdiscovery/result"
	"github.com/katalvlaran/truthdiscovery/tdmatrix"
)

// Voting is the baseline truth-discovery method: belief in a value is the
// number of sources asserting it, and every source is equally trusted.
// Grounded on truthdiscovery/algorithm/voting.py's MajorityVoting.
type Voting struct{}

// NewVoting builds a Voting kernel. It takes no parameters.
func NewVoting() *Voting {
	return &Voting{}
}

// Run computes claim belief as normalised vote counts and constant trust.
func (v *Voting) Run(d *dataset.Dataset) (*result.Result, error) {
	if d.NumClaims() == 0 {
		return nil, dataset.ErrEmptyDataset
	}
	start := time.Now()

	belief, err := d.SC().MatVecT(tdmatrix.Ones(d.NumSources()))
	if err != nil {
		return nil, err
	}
	normalisedBelief, ok := tdmatrix.Normalize(belief)
	if !ok {
		normalisedBelief = belief
	}

	trust := tdmatrix.Ones(d.NumSources())

	return runOnce("voting", d, trust, normalisedBelief, time.Since(start))
}

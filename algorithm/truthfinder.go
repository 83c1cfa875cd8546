package algorithm

import (
	"math"

	"github.com/katalvlaran/truthdiscovery/dataset"
	"github.com/katalvlaran/truthdiscovery/iterator"
	"github.com/katalvlaran/truthdiscovery/result"
)

// TruthFinder is Yin, Han and Yu's kernel: trust is converted to a
// log-domain confidence, propagated to claims (optionally boosted by
// implication between related claims), squashed back through a sigmoid
// into belief, and projected back onto trust through a row-normalised SC.
// Grounded on truthdiscovery/algorithm/truth_finder.py.
//
// The reference's "a_mat = (sc.T / claims_per_source).T" is, after the
// transpose cancels out, exactly SC row-normalised by each source's own
// claim count; that is what RowNormalize computes directly.
type TruthFinder struct {
	iter            iterator.Iterator
	influenceParam  float64 // rho
	dampeningFactor float64 // gamma
	initialTrust    float64
}

// TruthFinderOption configures a TruthFinder kernel.
type TruthFinderOption func(*TruthFinder)

// WithTruthFinderIterator overrides the default Convergence(Cosine, 0.001) iterator.
func WithTruthFinderIterator(it iterator.Iterator) TruthFinderOption {
	return func(tf *TruthFinder) { tf.iter = it }
}

// WithTruthFinderInfluenceParam overrides rho, the weight implication
// between claims carries (default 0.5).
func WithTruthFinderInfluenceParam(rho float64) TruthFinderOption {
	return func(tf *TruthFinder) { tf.influenceParam = rho }
}

// WithTruthFinderDampeningFactor overrides gamma, which keeps confidence
// from saturating when sources are not independent (default 0.3).
func WithTruthFinderDampeningFactor(gamma float64) TruthFinderOption {
	return func(tf *TruthFinder) { tf.dampeningFactor = gamma }
}

// WithTruthFinderInitialTrust overrides the starting trust value assigned
// to every source (default 0.9).
func WithTruthFinderInitialTrust(t0 float64) TruthFinderOption {
	return func(tf *TruthFinder) { tf.initialTrust = t0 }
}

// NewTruthFinder builds a TruthFinder kernel with the paper's defaults:
// rho = 0.5, gamma = 0.3, initial trust 0.9, Convergence(Cosine, 0.001).
func NewTruthFinder(opts ...TruthFinderOption) *TruthFinder {
	tf := &TruthFinder{influenceParam: 0.5, dampeningFactor: 0.3, initialTrust: 0.9}
	for _, opt := range opts {
		opt(tf)
	}
	if tf.iter == nil {
		tf.iter, _ = iterator.NewConvergence(iterator.Cosine, 0.001, 0)
	}
	return tf
}

// logTrust converts trust in [0, 1) to the paper's tau vector in [0, +inf),
// avoiding the underflow that working directly with products of trust
// values in [0,1] would cause.
func logTrust(trust []float64) []float64 {
	out := make([]float64, len(trust))
	for i, t := range trust {
		out[i] = -math.Log(1 - t)
	}
	return out
}

func sigmoid(v []float64, gamma float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = 1 / (1 + math.Exp(-gamma*x))
	}
	return out
}

// Run iterates TruthFinder's trust/belief fixed point until the configured
// iterator is satisfied (cosine-distance convergence by default).
func (tf *TruthFinder) Run(d *dataset.Dataset) (*result.Result, error) {
	aMat := d.SC().RowNormalize()

	trust0 := make([]float64, d.NumSources())
	for i := range trust0 {
		trust0[i] = tf.initialTrust
	}
	belief0 := make([]float64, d.NumClaims())

	step := func(trust, belief []float64) ([]float64, []float64, bool, error) {
		for _, t := range trust {
			if t >= 1 {
				// trust saturation: log(1-t) is undefined; keep the
				// previous iteration's state.
				return nil, nil, true, nil
			}
		}

		tau := logTrust(trust)
		direct, err := d.SC().MatVecT(tau)
		if err != nil {
			return nil, nil, false, err
		}
		implied, err := d.Imp().MatVecT(direct)
		if err != nil {
			return nil, nil, false, err
		}
		logBelief := make([]float64, len(direct))
		for i := range logBelief {
			logBelief[i] = direct[i] + tf.influenceParam*implied[i]
		}
		newBelief := sigmoid(logBelief, tf.dampeningFactor)

		newTrust, err := aMat.MatVec(newBelief)
		if err != nil {
			return nil, nil, false, err
		}

		return newTrust, newBelief, false, nil
	}

	return runIterative("truth_finder", d, tf.iter, trust0, belief0, step)
}

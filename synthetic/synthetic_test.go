package synthetic_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/truthdiscovery/algorithm"
	"github.com/katalvlaran/truthdiscovery/evaluator"
	"github.com/katalvlaran/truthdiscovery/synthetic"
	"github.com/stretchr/testify/require"
)

func TestGenerateBadParameters(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, _, err := synthetic.Generate(nil, rng)
	require.ErrorIs(t, err, synthetic.ErrBadParameter)

	_, _, err = synthetic.Generate([]float64{1.5}, rng)
	require.ErrorIs(t, err, synthetic.ErrBadParameter)

	_, _, err = synthetic.Generate([]float64{0.5}, rng, synthetic.WithDomainSize(1))
	require.ErrorIs(t, err, synthetic.ErrBadParameter)
}

func TestGeneratePerfectTrustYieldsPerfectVotingAccuracy(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	d, trueValues, err := synthetic.Generate(
		[]float64{1},
		rng,
		synthetic.WithNumVariables(10),
		synthetic.WithClaimProbability(1),
		synthetic.WithDomainSize(4),
	)
	require.NoError(t, err)

	res, err := algorithm.NewVoting().Run(d)
	require.NoError(t, err)

	eval := evaluator.New(trueValues, rand.New(rand.NewSource(1)))
	acc, err := eval.Accuracy(res)
	require.NoError(t, err)
	require.Equal(t, 1.0, acc)
}

func TestGenerateEveryVariableAndSourceHasAClaim(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	trust := []float64{0.9, 0.1, 0.5}

	d, trueValues, err := synthetic.Generate(
		trust,
		rng,
		synthetic.WithNumVariables(20),
		synthetic.WithClaimProbability(0.05),
		synthetic.WithDomainSize(3),
	)
	require.NoError(t, err)
	require.Equal(t, len(trust), d.NumSources())
	require.Len(t, trueValues, 20)

	for s, claims := range d.SC().RowSums() {
		require.Greater(t, claims, 0.0, "source %d makes no claim", s)
	}
	// BeliefDict lists only variables that have at least one claim.
	belief, err := d.BeliefDict(make([]float64, d.NumClaims()))
	require.NoError(t, err)
	require.Len(t, belief, 20)
}

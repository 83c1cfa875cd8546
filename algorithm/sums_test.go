package algorithm_test

import (
	"testing"

	"github.com/katalvlaran/truthdiscovery/algorithm"
	"github.com/katalvlaran/truthdiscovery/iterator"
	"github.com/stretchr/testify/require"
)

func TestSumsMatchesWorkedExample(t *testing.T) {
	d := d0(t)

	it, err := iterator.NewConvergence(iterator.L1, 1e-5, 0)
	require.NoError(t, err)

	res, err := algorithm.NewSums(algorithm.WithSumsIterator(it)).Run(d)
	require.NoError(t, err)

	require.InDelta(t, 1.0, res.Trust["s1"], 1e-3)
	require.InDelta(t, 0.53209, res.Trust["s2"], 1e-3)
	require.InDelta(t, 0.34730, res.Trust["s3"], 1e-3)

	require.InDelta(t, 0.65270, res.Belief["y"]["nine"], 1e-3)
	require.InDelta(t, 0.34730, res.Belief["y"]["eight"], 1e-3)
}

func TestSumsCountsIterations(t *testing.T) {
	d := d0(t)
	res, err := algorithm.NewSums().Run(d)
	require.NoError(t, err)
	require.NotNil(t, res.Iterations)
	require.Equal(t, 20, *res.Iterations)
}

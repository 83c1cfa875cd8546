package algorithm_test

import (
	"testing"

	"github.com/katalvlaran/truthdiscovery/algorithm"
	"github.com/katalvlaran/truthdiscovery/dataset"
	"github.com/stretchr/testify/require"
)

func d0(t *testing.T) *dataset.Dataset {
	t.Helper()
	d, err := dataset.New([]dataset.Triple{
		{Source: "s1", Variable: "x", Value: "one"},
		{Source: "s1", Variable: "y", Value: "nine"},
		{Source: "s1", Variable: "z", Value: "seven"},
		{Source: "s2", Variable: "x", Value: "one"},
		{Source: "s2", Variable: "y", Value: "eight"},
		{Source: "s3", Variable: "z", Value: "seven"},
	})
	require.NoError(t, err)
	return d
}

func TestVotingMatchesWorkedExample(t *testing.T) {
	d := d0(t)
	res, err := algorithm.NewVoting().Run(d)
	require.NoError(t, err)

	require.Equal(t, 1.0, res.Trust["s1"])
	require.Equal(t, 1.0, res.Trust["s2"])
	require.Equal(t, 1.0, res.Trust["s3"])

	require.Equal(t, 1.0, res.Belief["x"]["one"])
	require.InDelta(t, 0.5, res.Belief["y"]["nine"], 1e-12)
	require.InDelta(t, 0.5, res.Belief["y"]["eight"], 1e-12)
	require.Equal(t, 1.0, res.Belief["z"]["seven"])
}

func TestVotingEmptyDataset(t *testing.T) {
	d, err := dataset.New(nil)
	require.NoError(t, err)
	_, err = algorithm.NewVoting().Run(d)
	require.ErrorIs(t, err, dataset.ErrEmptyDataset)
}

package algorithm_test

import (
	"testing"

	"github.com/katalvlaran/truthdiscovery/algorithm"
	"github.com/stretchr/testify/require"
)

func TestUnboundedSumsReturnsRankingVectors(t *testing.T) {
	d := d0(t)

	res, err := algorithm.NewUnboundedSums().Run(d)
	require.NoError(t, err)

	require.Len(t, res.Trust, d.NumSources())
	seenRanks := make(map[float64]bool)
	for _, v := range res.Trust {
		require.GreaterOrEqual(t, v, 0.0)
		seenRanks[v] = true
	}
	require.NotEmpty(t, seenRanks)
}

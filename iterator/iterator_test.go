package iterator_test

import (
	"testing"

	"github.com/katalvlaran/truthdiscovery/iterator"
	"github.com/stretchr/testify/require"
)

func TestFixedNegativeLimit(t *testing.T) {
	_, err := iterator.NewFixed(-1)
	require.ErrorIs(t, err, iterator.ErrNegativeLimit)
}

func TestFixedRunsExactlyLimitTimes(t *testing.T) {
	f, err := iterator.NewFixed(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		done, err := f.Finished()
		require.NoError(t, err)
		require.False(t, done)
		require.NoError(t, f.Compare(nil, nil))
	}
	done, err := f.Finished()
	require.NoError(t, err)
	require.True(t, done)
	require.Equal(t, 3, f.Count())
}

func TestFixedReset(t *testing.T) {
	f, err := iterator.NewFixed(1)
	require.NoError(t, err)
	require.NoError(t, f.Compare(nil, nil))
	done, _ := f.Finished()
	require.True(t, done)

	f.Reset()
	require.Equal(t, 0, f.Count())
	done, _ = f.Finished()
	require.False(t, done)
}

func TestDistanceMeasures(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}

	d, err := iterator.Distance(iterator.L1, a, b)
	require.NoError(t, err)
	require.InDelta(t, 7, d, 1e-9)

	d, err = iterator.Distance(iterator.L2, a, b)
	require.NoError(t, err)
	require.InDelta(t, 5, d, 1e-9)

	d, err = iterator.Distance(iterator.LInf, a, b)
	require.NoError(t, err)
	require.InDelta(t, 4, d, 1e-9)

	d, err = iterator.Distance(iterator.Cosine, []float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	_, err = iterator.Distance(iterator.Measure("bogus"), a, b)
	require.ErrorIs(t, err, iterator.ErrUnknownMeasure)

	_, err = iterator.Distance(iterator.L1, a, []float64{1})
	require.ErrorIs(t, err, iterator.ErrDimensionMismatch)
}

func TestConvergenceStopsBelowThreshold(t *testing.T) {
	c, err := iterator.NewConvergence(iterator.L1, 0.5, 10)
	require.NoError(t, err)

	require.NoError(t, c.Compare([]float64{0}, []float64{1})) // distance 1, not converged
	done, err := c.Finished()
	require.NoError(t, err)
	require.False(t, done)

	require.NoError(t, c.Compare([]float64{0}, []float64{0.1})) // distance 0.1, converged
	done, err = c.Finished()
	require.NoError(t, err)
	require.True(t, done)
}

func TestConvergenceDidNotConverge(t *testing.T) {
	c, err := iterator.NewConvergence(iterator.L1, 0.0001, 2)
	require.NoError(t, err)

	require.NoError(t, c.Compare([]float64{0}, []float64{1}))
	done, err := c.Finished()
	require.NoError(t, err)
	require.False(t, done)

	require.NoError(t, c.Compare([]float64{0}, []float64{1}))
	_, err = c.Finished()
	require.ErrorIs(t, err, iterator.ErrDidNotConverge)
}

func TestConvergenceUnknownMeasure(t *testing.T) {
	_, err := iterator.NewConvergence(iterator.Measure("nope"), 0.1, 10)
	require.ErrorIs(t, err, iterator.ErrUnknownMeasure)
}

func TestOrdinalInvalidThreshold(t *testing.T) {
	_, err := iterator.NewOrdinal(0)
	require.ErrorIs(t, err, iterator.ErrInvalidThreshold)
}

func TestOrdinalStopsAfterStableRankings(t *testing.T) {
	o, err := iterator.NewOrdinal(2)
	require.NoError(t, err)

	stable := []float64{1, 2, 3}
	require.NoError(t, o.Compare(stable, stable))
	done, err := o.Finished()
	require.NoError(t, err)
	require.False(t, done)

	require.NoError(t, o.Compare(stable, stable))
	done, err = o.Finished()
	require.NoError(t, err)
	require.True(t, done)
}

func TestOrdinalResetsOnRankChange(t *testing.T) {
	o, err := iterator.NewOrdinal(1)
	require.NoError(t, err)

	require.NoError(t, o.Compare([]float64{1, 2}, []float64{2, 1}))
	done, err := o.Finished()
	require.NoError(t, err)
	require.False(t, done, "ranking changed so the stable count must reset")
}

func TestRankingVectorTiesShareRank(t *testing.T) {
	v := []float64{5, 1, 1, 3}
	r := iterator.RankingVector(v)
	require.Equal(t, []float64{2, 0, 0, 1}, r)
}

func TestRankingVectorStableUnderMonotoneTransform(t *testing.T) {
	v := []float64{5, 1, 1, 3}
	r1 := iterator.RankingVector(v)

	scaled := make([]float64, len(v))
	for i, x := range v {
		scaled[i] = x*2 + 10
	}
	r2 := iterator.RankingVector(scaled)

	require.Equal(t, r1, r2)
}

package tdmatrix_test

import (
	"testing"

	"github.com/katalvlaran/truthdiscovery/tdmatrix"
	"github.com/stretchr/testify/require"
)

func TestNewCSRBadShape(t *testing.T) {
	_, err := tdmatrix.NewCSR(0, 2, nil, nil, nil)
	require.ErrorIs(t, err, tdmatrix.ErrBadShape)
}

func TestNewCSRDimensionMismatch(t *testing.T) {
	_, err := tdmatrix.NewCSR(2, 2, []int{0}, []int{0, 1}, []float64{1, 1})
	require.ErrorIs(t, err, tdmatrix.ErrDimensionMismatch)
}

func TestNewCSRIndexOutOfRange(t *testing.T) {
	_, err := tdmatrix.NewCSR(2, 2, []int{5}, []int{0}, []float64{1})
	require.ErrorIs(t, err, tdmatrix.ErrIndexOutOfRange)
}

func TestNewCSRMergesDuplicates(t *testing.T) {
	m, err := tdmatrix.NewCSR(2, 2,
		[]int{0, 0, 1},
		[]int{0, 0, 1},
		[]float64{1, 2, 5},
	)
	require.NoError(t, err)
	require.Equal(t, 2, m.NNZ())

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

func buildSample(t *testing.T) *tdmatrix.CSR {
	t.Helper()
	// [[1, 0, 1],
	//  [0, 2, 0]]
	m, err := tdmatrix.NewCSR(2, 3,
		[]int{0, 0, 1},
		[]int{0, 2, 1},
		[]float64{1, 1, 2},
	)
	require.NoError(t, err)

	return m
}

func TestAtOutOfRange(t *testing.T) {
	m := buildSample(t)
	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, tdmatrix.ErrIndexOutOfRange)
}

func TestMatVec(t *testing.T) {
	m := buildSample(t)
	out, err := m.MatVec([]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 2}, out)

	_, err = m.MatVec([]float64{1, 1})
	require.ErrorIs(t, err, tdmatrix.ErrDimensionMismatch)
}

func TestMatVecT(t *testing.T) {
	m := buildSample(t)
	out, err := m.MatVecT([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 1}, out)
}

func TestRowSums(t *testing.T) {
	m := buildSample(t)
	require.Equal(t, []float64{2, 2}, m.RowSums())
}

func TestRowNormalize(t *testing.T) {
	m := buildSample(t)
	n := m.RowNormalize()
	v, err := n.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.5, v, 1e-9)
	v, err = n.At(1, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, v, 1e-9)
}

func TestScaleColumns(t *testing.T) {
	m := buildSample(t)
	scaled, err := m.ScaleColumns([]float64{2, 3, 4})
	require.NoError(t, err)
	v, err := scaled.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	_, err = m.ScaleColumns([]float64{1, 2})
	require.ErrorIs(t, err, tdmatrix.ErrDimensionMismatch)
}

func TestIsSymmetric(t *testing.T) {
	sym, err := tdmatrix.NewCSR(2, 2, []int{0, 0, 1}, []int{0, 1, 0}, []float64{1, 5, 5})
	require.NoError(t, err)
	require.True(t, sym.IsSymmetric())

	require.False(t, buildSample(t).IsSymmetric())
}

func TestVecHelpers(t *testing.T) {
	require.Equal(t, []float64{1, 1, 1}, tdmatrix.Ones(3))
	require.Equal(t, 5.0, tdmatrix.VecMax([]float64{1, 5, 3}))
	require.True(t, tdmatrix.HasZero([]float64{1, 0, 3}))
	require.False(t, tdmatrix.HasZero([]float64{1, 2, 3}))
	require.Equal(t, []float64{2, 6}, tdmatrix.MulElem([]float64{1, 2}, []float64{2, 3}))
	require.Equal(t, []float64{2, 1.5}, tdmatrix.DivElem([]float64{4, 3}, []float64{2, 2}))
	require.Equal(t, []float64{4, 9}, tdmatrix.Pow([]float64{2, 3}, 2))
	require.Equal(t, []float64{2, 4}, tdmatrix.Scale([]float64{1, 2}, 2))
	require.Equal(t, []float64{1, -1}, tdmatrix.Sub([]float64{2, 1}, []float64{1, 2}))

	out, ok := tdmatrix.Normalize([]float64{1, 2, 4})
	require.True(t, ok)
	require.Equal(t, []float64{0.25, 0.5, 1}, out)

	_, ok = tdmatrix.Normalize([]float64{0, 0})
	require.False(t, ok)
}

package ids_test

import (
	"testing"

	"github.com/katalvlaran/truthdiscovery/ids"
	"github.com/stretchr/testify/require"
)

func TestGetIDInsertsDensely(t *testing.T) {
	tbl := ids.NewTable[string]()

	id1, err := tbl.GetID("alice", true)
	require.NoError(t, err)
	require.Equal(t, 0, id1)

	id2, err := tbl.GetID("bob", true)
	require.NoError(t, err)
	require.Equal(t, 1, id2)

	// Re-inserting an existing label returns the same ID.
	again, err := tbl.GetID("alice", true)
	require.NoError(t, err)
	require.Equal(t, id1, again)

	require.Equal(t, 2, tbl.Count())
}

func TestGetIDNoInsertUnknown(t *testing.T) {
	tbl := ids.NewTable[string]()

	_, err := tbl.GetID("ghost", false)
	require.ErrorIs(t, err, ids.ErrUnknownLabel)
}

func TestLabelOfRoundTrips(t *testing.T) {
	tbl := ids.NewTable[string]()
	id, err := tbl.GetID("x", true)
	require.NoError(t, err)

	label, err := tbl.LabelOf(id)
	require.NoError(t, err)
	require.Equal(t, "x", label)
}

func TestLabelOfUnknownID(t *testing.T) {
	tbl := ids.NewTable[string]()
	_, err := tbl.LabelOf(4)
	require.ErrorIs(t, err, ids.ErrUnknownID)
}

func TestHas(t *testing.T) {
	tbl := ids.NewTable[int]()
	require.False(t, tbl.Has(7))
	_, err := tbl.GetID(7, true)
	require.NoError(t, err)
	require.True(t, tbl.Has(7))
}

func TestCompositeClaimKey(t *testing.T) {
	type claimKey struct {
		VarID int
		ValID int
	}
	tbl := ids.NewTable[claimKey]()

	c1, err := tbl.GetID(claimKey{VarID: 0, ValID: 1}, true)
	require.NoError(t, err)
	c2, err := tbl.GetID(claimKey{VarID: 0, ValID: 1}, true)
	require.NoError(t, err)
	require.Equal(t, c1, c2)

	c3, err := tbl.GetID(claimKey{VarID: 0, ValID: 2}, true)
	require.NoError(t, err)
	require.NotEqual(t, c1, c3)
}

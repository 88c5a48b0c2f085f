package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowdb/dberr"
	"rowdb/pager"
	"rowdb/row"
)

func TestStartOnEmptyTableIsEndOfTable(t *testing.T) {
	tbl, err := Open(newTempPath(t))
	require.NoError(t, err)
	defer tbl.Close()

	c, err := Start(tbl)
	require.NoError(t, err)
	assert.True(t, c.EndOfTable)
}

func TestFindReturnsInsertionPointForMissingKey(t *testing.T) {
	tbl, err := Open(newTempPath(t))
	require.NoError(t, err)
	defer tbl.Close()

	for _, key := range []uint32{10, 30} {
		c, err := Find(tbl, key)
		require.NoError(t, err)
		require.NoError(t, c.Insert(key, row.Row{ID: key}))
	}

	c, err := Find(tbl, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, c.CellNum)
}

func TestInsertAtExistingKeyIsCallerResponsibility(t *testing.T) {
	tbl, err := Open(newTempPath(t))
	require.NoError(t, err)
	defer tbl.Close()

	c, err := Find(tbl, 5)
	require.NoError(t, err)
	require.NoError(t, c.Insert(5, row.Row{ID: 5}))

	// Cursor.Insert has no duplicate check of its own; it is the
	// statement layer's job to detect this before calling Insert.
	dup, err := Find(tbl, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, dup.CellNum)
}

func TestInsertOnFullLeafReturnsTableFull(t *testing.T) {
	tbl, err := Open(newTempPath(t))
	require.NoError(t, err)
	defer tbl.Close()

	for i := 0; i < pager.LeafNodeMaxCells; i++ {
		key := uint32(i)
		c, err := Find(tbl, key)
		require.NoError(t, err)
		require.NoError(t, c.Insert(key, row.Row{ID: key}))
	}

	c, err := Find(tbl, uint32(pager.LeafNodeMaxCells))
	require.NoError(t, err)
	err = c.Insert(uint32(pager.LeafNodeMaxCells), row.Row{ID: uint32(pager.LeafNodeMaxCells)})
	require.Error(t, err)
	assert.ErrorIs(t, err, dberr.ErrTableFull)
}

func TestAdvancePastLastRowSetsEndOfTable(t *testing.T) {
	tbl, err := Open(newTempPath(t))
	require.NoError(t, err)
	defer tbl.Close()

	c, err := Find(tbl, 1)
	require.NoError(t, err)
	require.NoError(t, c.Insert(1, row.Row{ID: 1}))

	start, err := Start(tbl)
	require.NoError(t, err)
	require.False(t, start.EndOfTable)
	require.NoError(t, start.Advance())
	assert.True(t, start.EndOfTable)
}

func TestEndCursorHasNoRowToRead(t *testing.T) {
	tbl, err := Open(newTempPath(t))
	require.NoError(t, err)
	defer tbl.Close()

	c, err := Find(tbl, 1)
	require.NoError(t, err)
	require.NoError(t, c.Insert(1, row.Row{ID: 1}))

	end, err := End(tbl)
	require.NoError(t, err)
	_, err = end.Read()
	require.Error(t, err)
}

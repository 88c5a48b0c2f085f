package table

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowdb/row"
)

func newTempPath(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp("", "table-*.db")
	require.NoError(t, err)
	path := f.Name()
	require.NoError(t, f.Close())
	t.Cleanup(func() { os.Remove(path) })
	return path
}

func TestOpenCreatesEmptyRootLeaf(t *testing.T) {
	tbl, err := Open(newTempPath(t))
	require.NoError(t, err)
	defer tbl.Close()

	root, err := tbl.Pager.Get(RootPageNum)
	require.NoError(t, err)
	assert.True(t, root.IsRoot)
	assert.Equal(t, 0, root.NumCells())
}

func TestInsertThenSelectPreservesKeyOrder(t *testing.T) {
	tbl, err := Open(newTempPath(t))
	require.NoError(t, err)
	defer tbl.Close()

	for _, key := range []uint32{3, 1, 2} {
		c, err := Find(tbl, key)
		require.NoError(t, err)
		require.NoError(t, c.Insert(key, row.Row{ID: key, Username: "u", Email: "e@x"}))
	}

	c, err := Start(tbl)
	require.NoError(t, err)
	var got []uint32
	for !c.EndOfTable {
		r, err := c.Read()
		require.NoError(t, err)
		got = append(got, r.ID)
		require.NoError(t, c.Advance())
	}
	assert.Equal(t, []uint32{1, 2, 3}, got)
}

func TestClosePersistsRowsAcrossReopen(t *testing.T) {
	path := newTempPath(t)

	tbl, err := Open(path)
	require.NoError(t, err)
	c, err := Find(tbl, 1)
	require.NoError(t, err)
	require.NoError(t, c.Insert(1, row.Row{ID: 1, Username: "alice", Email: "alice@example.com"}))
	require.NoError(t, tbl.Close())

	tbl2, err := Open(path)
	require.NoError(t, err)
	defer tbl2.Close()

	c2, err := Start(tbl2)
	require.NoError(t, err)
	require.False(t, c2.EndOfTable)
	r, err := c2.Read()
	require.NoError(t, err)
	assert.Equal(t, "alice", r.Username)
}

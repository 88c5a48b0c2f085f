package table

import (
	"fmt"

	"rowdb/row"
)

// Cursor names a position within a table: a page and a cell index on
// that page, plus whether the position is one past the last cell.
// Every cursor in this revision lives on the single root leaf —
// PageNum is carried anyway as the shape Advance would need to walk
// sideways to a sibling leaf once this database has more than one.
type Cursor struct {
	table      *Table
	PageNum    int
	CellNum    int
	EndOfTable bool
}

// Start returns a cursor at the first row of the table.
func Start(t *Table) (*Cursor, error) {
	root, err := t.Pager.Get(t.RootPageNum)
	if err != nil {
		return nil, err
	}
	return &Cursor{
		table:      t,
		PageNum:    t.RootPageNum,
		CellNum:    0,
		EndOfTable: root.NumCells() == 0,
	}, nil
}

// End returns a cursor one past the last row of the table.
func End(t *Table) (*Cursor, error) {
	root, err := t.Pager.Get(t.RootPageNum)
	if err != nil {
		return nil, err
	}
	return &Cursor{
		table:      t,
		PageNum:    t.RootPageNum,
		CellNum:    root.NumCells(),
		EndOfTable: true,
	}, nil
}

// Find returns a cursor positioned at key, or at the position key
// would be inserted at if it is not present. Callers compare the cell
// at the returned position against key to tell the two cases apart.
func Find(t *Table, key uint32) (*Cursor, error) {
	root, err := t.Pager.Get(t.RootPageNum)
	if err != nil {
		return nil, err
	}
	_, idx := root.BinarySearch(key)
	return &Cursor{
		table:      t,
		PageNum:    t.RootPageNum,
		CellNum:    idx,
		EndOfTable: false,
	}, nil
}

// Read returns the row at the cursor's current position.
func (c *Cursor) Read() (row.Row, error) {
	node, err := c.table.Pager.Get(c.PageNum)
	if err != nil {
		return row.Row{}, err
	}
	if c.EndOfTable || c.CellNum >= node.NumCells() {
		return row.Row{}, fmt.Errorf("table: Read: cursor is past the last row")
	}
	return node.Cells[c.CellNum].Row, nil
}

// Write overwrites the row at the cursor's current cell, leaving its
// key untouched.
func (c *Cursor) Write(r row.Row) error {
	node, err := c.table.Pager.Get(c.PageNum)
	if err != nil {
		return err
	}
	if c.CellNum >= node.NumCells() {
		return fmt.Errorf("table: Write: cursor is past the last row")
	}
	node.Cells[c.CellNum].Row = r
	return nil
}

// Insert inserts (key, r) at the cursor's current cell, shifting any
// later cells right. It fails with dberr.ErrTableFull once the leaf
// is at capacity — there is no split to fall back to.
func (c *Cursor) Insert(key uint32, r row.Row) error {
	node, err := c.table.Pager.Get(c.PageNum)
	if err != nil {
		return err
	}
	return node.Insert(c.CellNum, key, r)
}

// Advance moves the cursor to the next row. Because every table is
// one leaf today, this only ever moves within PageNum and flips
// EndOfTable at the end; a multi-leaf table would instead follow a
// next-leaf pointer here once CellNum runs off the end of the page.
func (c *Cursor) Advance() error {
	node, err := c.table.Pager.Get(c.PageNum)
	if err != nil {
		return err
	}
	c.CellNum++
	if c.CellNum >= node.NumCells() {
		c.EndOfTable = true
	}
	return nil
}

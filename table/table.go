// Package table ties the pager's single root leaf to the cursor
// abstraction clients use to read and insert rows. There are no
// interior nodes, no splitting, and no deletion: a table is exactly
// one resident root page for as long as it fits.
package table

import (
	"rowdb/pager"
)

// RootPageNum is the only page a table ever addresses.
const RootPageNum = 0

// Table owns the pager for one database file and tracks the root page.
type Table struct {
	Pager       *pager.Pager
	RootPageNum int
}

// Open opens path through the pager and ensures page 0 exists as a
// leaf, creating an empty one if the file was just created.
func Open(path string) (*Table, error) {
	p, err := pager.Open(path)
	if err != nil {
		return nil, err
	}

	if p.NumPages() == 0 {
		if _, err := p.GetMut(RootPageNum); err != nil {
			p.Close()
			return nil, err
		}
	}

	return &Table{Pager: p, RootPageNum: RootPageNum}, nil
}

// Close flushes every resident page and closes the backing file.
func (t *Table) Close() error {
	return t.Pager.Close()
}

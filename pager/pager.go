// Package pager maps fixed-size pages to a backing file with an
// in-memory, never-evicting cache, and defines the on-page layout of
// the one node type this database uses: a B-tree leaf.
package pager

import (
	"fmt"
	"io"
	"os"

	"rowdb/dberr"
)

const (
	// PageSize is the fixed size of every page, on disk and in memory.
	PageSize = 4096
	// TableMaxPages is the hard cap on resident pages. A request past
	// this cap is an error, never an eviction.
	TableMaxPages = 100
)

// Pager owns the backing file and a fixed-capacity slot array, one
// slot per page index. A slot is nil until the page it names has been
// read from disk or freshly allocated.
type Pager struct {
	file     *os.File
	slots    [TableMaxPages]*Node
	numPages int // number of pages currently considered to exist

	numPagesOnDisk int // pages that existed in the file when it was opened
}

// Open opens path read-write, creating it if missing, and computes how
// many pages it currently holds. A file whose length is not an exact
// multiple of PageSize is rejected as dberr.ErrCorruptFile.
func Open(path string) (*Pager, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	size := fi.Size()
	if size%PageSize != 0 {
		f.Close()
		return nil, fmt.Errorf("pager: %w: size %d is not a multiple of %d", dberr.ErrCorruptFile, size, PageSize)
	}

	numPages := int(size / PageSize)
	return &Pager{
		file:           f,
		numPages:       numPages,
		numPagesOnDisk: numPages,
	}, nil
}

// NumPages reports how many pages currently exist, including pages
// allocated in memory but not yet flushed.
func (p *Pager) NumPages() int { return p.numPages }

// Get returns the resident node at pageNum, loading it from disk or
// allocating a fresh empty leaf as needed.
func (p *Pager) Get(pageNum int) (*Node, error) {
	if pageNum < 0 || pageNum >= TableMaxPages {
		return nil, fmt.Errorf("pager: Get(%d): %w", pageNum, dberr.ErrOutOfBounds)
	}

	if p.slots[pageNum] != nil {
		return p.slots[pageNum], nil
	}

	if pageNum < p.numPagesOnDisk {
		node, err := p.readFromDisk(pageNum)
		if err != nil {
			return nil, err
		}
		p.slots[pageNum] = node
		return node, nil
	}

	node := CreateEmptyLeaf()
	p.slots[pageNum] = node
	if pageNum >= p.numPages {
		p.numPages = pageNum + 1
	}
	return node, nil
}

// GetMut is an alias for Get: every resident node is already mutable
// in place, so there is no separate read-only accessor to distinguish
// it from.
func (p *Pager) GetMut(pageNum int) (*Node, error) { return p.Get(pageNum) }

func (p *Pager) readFromDisk(pageNum int) (*Node, error) {
	buf := make([]byte, PageSize)
	off := int64(pageNum) * PageSize
	if _, err := p.file.Seek(off, io.SeekStart); err != nil {
		return nil, fmt.Errorf("pager: %w: seek page %d: %v", dberr.ErrCouldNotRead, pageNum, err)
	}
	if _, err := io.ReadFull(p.file, buf); err != nil {
		return nil, fmt.Errorf("pager: %w: read page %d: %v", dberr.ErrCouldNotRead, pageNum, err)
	}
	return Load(buf)
}

// Flush serializes the resident node at pageNum, if any, and writes it
// to the file at its natural offset. Writes exactly PageSize bytes,
// never a partial page.
func (p *Pager) Flush(pageNum int) error {
	node := p.slots[pageNum]
	if node == nil {
		return nil
	}

	buf := make([]byte, PageSize)
	if err := node.Serialize(buf); err != nil {
		return fmt.Errorf("pager: Flush(%d): %w", pageNum, err)
	}

	off := int64(pageNum) * PageSize
	if _, err := p.file.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("pager: %w: seek page %d: %v", dberr.ErrCouldNotWrite, pageNum, err)
	}
	if _, err := p.file.Write(buf); err != nil {
		return fmt.Errorf("pager: %w: write page %d: %v", dberr.ErrCouldNotWrite, pageNum, err)
	}
	return nil
}

// FlushAll flushes every resident page. Unoccupied slots are skipped —
// they were never touched this session.
func (p *Pager) FlushAll() error {
	var firstErr error
	for i := 0; i < p.numPages; i++ {
		if p.slots[i] == nil {
			continue
		}
		if err := p.Flush(i); err != nil {
			// Degraded-state recovery: drop the failed page from the
			// cache rather than retry it, and keep flushing the rest.
			p.slots[i] = nil
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Close flushes every resident page and closes the backing file.
func (p *Pager) Close() error {
	flushErr := p.FlushAll()
	closeErr := p.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

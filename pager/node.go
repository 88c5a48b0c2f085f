package pager

import (
	"encoding/binary"
	"fmt"

	"rowdb/dberr"
	"rowdb/row"
)

// On-disk leaf header layout (spec-pinned, not derived from struct
// padding):
//
//	offset 0: is_root     (1 byte)
//	offset 1: parent_ptr  (4 bytes, little-endian)
//	offset 5: num_cells   (4 bytes, little-endian)
const (
	nodeTypeSize       = 1
	isRootOffset       = 0
	parentPtrSize      = 4
	parentPtrOffset    = isRootOffset + nodeTypeSize
	numCellsSize       = 4
	numCellsOffset     = parentPtrOffset + parentPtrSize
	LeafNodeHeaderSize = numCellsOffset + numCellsSize

	// CommonNodeHeaderSize is the is_root+parent_ptr prefix every node
	// would share with a future interior-node type. There is no node
	// type tag: this database only ever has leaf pages.
	CommonNodeHeaderSize = numCellsOffset

	// LeafNodeKeySize is the width of a cell's key prefix.
	LeafNodeKeySize = 4
)

// LeafNodeCellSize is one (key, row) cell. Not a const: row.Size is a
// package variable computed from column.BuildRowMeta at init time.
var LeafNodeCellSize = LeafNodeKeySize + int(row.Size)

// LeafNodeSpaceForCells is the number of bytes in a page left over for
// cells once the header is accounted for.
var LeafNodeSpaceForCells = PageSize - LeafNodeHeaderSize

// LeafNodeMaxCells is the largest number of cells a single leaf can
// hold. This spec never splits a leaf, so a full leaf is a hard error
// (dberr.ErrTableFull), not a trigger for a new node.
var LeafNodeMaxCells = LeafNodeSpaceForCells / LeafNodeCellSize

// Cell is one (key, row) pair. Cells within a Node are kept in
// strictly increasing key order.
type Cell struct {
	Key uint32
	Row row.Row
}

// Node is the in-memory form of one leaf page: a header plus an
// ordered array of cells. parentPtr is round-tripped through
// Serialize/Load but never set to anything but 0 by this revision —
// it is the shaped extension point for a future internal-node layer.
type Node struct {
	IsRoot    bool
	ParentPtr uint32
	Cells     []Cell
}

// CreateEmptyLeaf returns a fresh root leaf with no cells.
func CreateEmptyLeaf() *Node {
	return &Node{
		IsRoot:    true,
		ParentPtr: 0,
		Cells:     make([]Cell, 0, LeafNodeMaxCells),
	}
}

// NumCells reports how many cells are currently populated.
func (n *Node) NumCells() int { return len(n.Cells) }

// BinarySearch performs an ordered-array search for key. When found is
// false, index is the position at which a cell with key would be
// inserted to preserve order.
func (n *Node) BinarySearch(key uint32) (found bool, index int) {
	lo, hi := 0, len(n.Cells)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case n.Cells[mid].Key == key:
			return true, mid
		case key < n.Cells[mid].Key:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return false, lo
}

// Insert shifts cells at [cellIndex, NumCells) right by one and writes
// the new cell at cellIndex. The caller must have already verified
// cellIndex <= NumCells(). There is no node splitting, so a full leaf
// returns dberr.ErrTableFull rather than growing.
func (n *Node) Insert(cellIndex int, key uint32, r row.Row) error {
	if len(n.Cells) >= LeafNodeMaxCells {
		return dberr.ErrTableFull
	}
	if cellIndex < 0 || cellIndex > len(n.Cells) {
		return fmt.Errorf("pager: insert index %d out of range [0, %d]", cellIndex, len(n.Cells))
	}

	n.Cells = append(n.Cells, Cell{})
	copy(n.Cells[cellIndex+1:], n.Cells[cellIndex:])
	n.Cells[cellIndex] = Cell{Key: key, Row: r}
	return nil
}

// Serialize writes the node's header and cells into buf, which must be
// exactly PageSize bytes. Cell slots beyond NumCells are zero-filled
// so the on-disk image is deterministic for a given logical state.
func (n *Node) Serialize(buf []byte) error {
	if len(buf) != PageSize {
		return fmt.Errorf("pager: Serialize: buf is %d bytes, want %d", len(buf), PageSize)
	}
	for i := range buf {
		buf[i] = 0
	}

	if n.IsRoot {
		buf[isRootOffset] = 1
	}
	binary.LittleEndian.PutUint32(buf[parentPtrOffset:parentPtrOffset+parentPtrSize], n.ParentPtr)
	binary.LittleEndian.PutUint32(buf[numCellsOffset:numCellsOffset+numCellsSize], uint32(len(n.Cells)))

	for i, c := range n.Cells {
		off := LeafNodeHeaderSize + i*LeafNodeCellSize
		binary.LittleEndian.PutUint32(buf[off:off+LeafNodeKeySize], c.Key)
		encoded, err := row.Encode(c.Row)
		if err != nil {
			return fmt.Errorf("pager: Serialize: cell %d: %w", i, err)
		}
		copy(buf[off+LeafNodeKeySize:off+LeafNodeCellSize], encoded)
	}
	return nil
}

// Load parses a Node out of buf, which must be exactly PageSize bytes.
func Load(buf []byte) (*Node, error) {
	if len(buf) != PageSize {
		return nil, fmt.Errorf("pager: Load: buf is %d bytes, want %d", len(buf), PageSize)
	}

	n := &Node{
		IsRoot:    buf[isRootOffset] != 0,
		ParentPtr: binary.LittleEndian.Uint32(buf[parentPtrOffset : parentPtrOffset+parentPtrSize]),
	}
	numCells := binary.LittleEndian.Uint32(buf[numCellsOffset : numCellsOffset+numCellsSize])
	if int(numCells) > LeafNodeMaxCells {
		return nil, fmt.Errorf("pager: Load: %w: num_cells %d exceeds max %d", dberr.ErrCorruptRow, numCells, LeafNodeMaxCells)
	}

	n.Cells = make([]Cell, numCells)
	for i := 0; i < int(numCells); i++ {
		off := LeafNodeHeaderSize + i*LeafNodeCellSize
		key := binary.LittleEndian.Uint32(buf[off : off+LeafNodeKeySize])
		r, err := row.Decode(buf[off+LeafNodeKeySize : off+LeafNodeCellSize])
		if err != nil {
			return nil, fmt.Errorf("pager: Load: cell %d: %w", i, err)
		}
		n.Cells[i] = Cell{Key: key, Row: r}
	}
	return n, nil
}

package main

import (
	"fmt"

	"rowdb/pager"
	"rowdb/row"
	"rowdb/table"
)

// MetaCommandResult is the outcome of handling a "." command.
type MetaCommandResult int

const (
	MetaCommandSuccess MetaCommandResult = iota
	MetaCommandUnrecognizedCommand
	MetaCommandExit
)

// handleMetaCommand recognizes .exit, .constants, and .btree.
func handleMetaCommand(input string, tbl *table.Table) MetaCommandResult {
	switch input {
	case ".exit":
		return MetaCommandExit
	case ".constants":
		printConstants()
		return MetaCommandSuccess
	case ".btree":
		printBTree(tbl)
		return MetaCommandSuccess
	default:
		return MetaCommandUnrecognizedCommand
	}
}

func printConstants() {
	fmt.Println("Constants:")
	fmt.Printf("ROW_SIZE: %d\n", row.Size)
	fmt.Printf("COMMON_NODE_HEADER_SIZE: %d\n", pager.CommonNodeHeaderSize)
	fmt.Printf("LEAF_NODE_HEADER_SIZE: %d\n", pager.LeafNodeHeaderSize)
	fmt.Printf("LEAF_NODE_CELL_SIZE: %d\n", pager.LeafNodeCellSize)
	fmt.Printf("LEAF_NODE_SPACE_FOR_CELLS: %d\n", pager.LeafNodeSpaceForCells)
	fmt.Printf("LEAF_NODE_MAX_CELLS: %d\n", pager.LeafNodeMaxCells)
}

func printBTree(tbl *table.Table) {
	root, err := tbl.Pager.Get(tbl.RootPageNum)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("leaf (size %d)\n", root.NumCells())
	for i, c := range root.Cells {
		fmt.Printf("  - %d : %d\n", i, c.Key)
	}
}

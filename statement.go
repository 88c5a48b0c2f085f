package main

import (
	"strconv"
	"strings"

	"rowdb/dberr"
	"rowdb/pager"
	"rowdb/row"
	"rowdb/table"
)

// StatementType names the one of two statements a line of input can
// prepare into.
type StatementType int

const (
	StatementInsert StatementType = iota
	StatementSelect
)

// PrepareResult is the outcome of parsing one line of input into a
// Statement. These never leave the REPL as Go errors: parse errors are
// reported to the user and the loop continues.
type PrepareResult int

const (
	PrepareSuccess PrepareResult = iota
	PrepareUnrecognizedStatement
	PrepareSyntaxError
	PrepareNegativeID
	PrepareStringTooLong
)

// Statement is a parsed, not-yet-executed command.
type Statement struct {
	Type        StatementType
	RowToInsert row.Row
}

// prepareStatement parses one line of input into stmt.
func prepareStatement(input string, stmt *Statement) PrepareResult {
	if strings.HasPrefix(input, "insert") {
		stmt.Type = StatementInsert
		return prepareInsert(input, stmt)
	}
	if input == "select" {
		stmt.Type = StatementSelect
		return PrepareSuccess
	}
	return PrepareUnrecognizedStatement
}

func prepareInsert(input string, stmt *Statement) PrepareResult {
	fields := strings.Fields(input)
	if len(fields) != 4 {
		return PrepareSyntaxError
	}

	id, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return PrepareSyntaxError
	}
	if id < 0 {
		return PrepareNegativeID
	}

	username, email := fields[2], fields[3]
	if len(username) > row.MaxUsernameLen || len(email) > row.MaxEmailLen {
		return PrepareStringTooLong
	}

	stmt.RowToInsert = row.Row{ID: uint32(id), Username: username, Email: email}
	return PrepareSuccess
}

// executeInsert applies an insert statement against tbl. The returned
// error, when non-nil, is dberr.ErrTableFull, dberr.ErrDuplicateKey,
// or an error from the pager or the leaf insert; the caller maps the
// first two to their literal messages.
func executeInsert(stmt *Statement, tbl *table.Table) error {
	root, err := tbl.Pager.Get(tbl.RootPageNum)
	if err != nil {
		return err
	}
	if root.NumCells() >= pager.LeafNodeMaxCells {
		return dberr.ErrTableFull
	}

	r := stmt.RowToInsert
	c, err := table.Find(tbl, r.ID)
	if err != nil {
		return err
	}
	if c.CellNum < root.NumCells() && root.Cells[c.CellNum].Key == r.ID {
		return dberr.ErrDuplicateKey
	}

	return c.Insert(r.ID, r)
}

// executeSelect yields every row in ascending id order.
func executeSelect(tbl *table.Table, yield func(row.Row) error) error {
	c, err := table.Start(tbl)
	if err != nil {
		return err
	}
	for !c.EndOfTable {
		r, err := c.Read()
		if err != nil {
			return err
		}
		if err := yield(r); err != nil {
			return err
		}
		if err := c.Advance(); err != nil {
			return err
		}
	}
	return nil
}

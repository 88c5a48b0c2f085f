// Package dberr collects the sentinel errors every storage layer in
// rowdb returns, so callers compare with errors.Is instead of
// matching strings.
package dberr

import "errors"

var (
	// ErrUnexpectedEOF is returned by the row codec when the input is
	// shorter than ROW_SIZE.
	ErrUnexpectedEOF = errors.New("unexpected eof decoding row")
	// ErrCorruptRow is returned by the row codec when a decoded
	// username_len or email_len exceeds its field's capacity.
	ErrCorruptRow = errors.New("corrupt row")
	// ErrTableFull is returned when an insert targets a leaf that has
	// already reached LeafNodeMaxCells.
	ErrTableFull = errors.New("table full")
	// ErrDuplicateKey is returned when an insert's key already exists.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrOutOfBounds is returned by the pager when a page number is at
	// or beyond TableMaxPages.
	ErrOutOfBounds = errors.New("page number out of bounds")
	// ErrCouldNotRead is returned by the pager when the underlying file
	// fails a seek or read.
	ErrCouldNotRead = errors.New("could not read page")
	// ErrCouldNotWrite is returned by the pager when the underlying file
	// fails a seek or write.
	ErrCouldNotWrite = errors.New("could not write page")
	// ErrCorruptFile is returned when a database file's length is not a
	// multiple of PageSize.
	ErrCorruptFile = errors.New("database file size is not a multiple of the page size")
)

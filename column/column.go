// Package column declares the fixed row schema for the one implicit
// table this database knows how to store, and computes the byte
// offsets a row's fields live at.
//
// A real multi-table engine would let schemas vary at runtime; this
// one hard-codes a single schema (Non-goal: no schema evolution) but
// keeps the offset-computation machinery schema-driven so that seam
// stays real rather than inlined away.
package column

import "fmt"

// Type is the kind of value a column holds.
type Type int

const (
	// TypeUint32 is a 4-byte little-endian unsigned integer.
	TypeUint32 Type = iota
	// TypeText is a length-prefixed, zero-padded byte buffer.
	TypeText
)

// Column describes one field of the row.
type Column struct {
	Name      string
	Type      Type
	MaxLength uint32 // only meaningful for TypeText
}

// Schema is an ordered list of columns.
type Schema []Column

// ColMeta is a Column plus its computed position within a row.
type ColMeta struct {
	Name      string
	Type      Type
	Offset    uint32
	ByteSize  uint32 // bytes this column occupies in the encoded row
	MaxLength uint32 // TypeText only: max payload bytes, excluding the length prefix
}

// RowMeta is the result of laying a Schema out as a fixed-size row.
type RowMeta struct {
	NumCols int
	Columns []ColMeta
	RowSize uint32
}

// textLengthPrefixSize is the width of the length prefix stored ahead
// of every TypeText field's fixed buffer.
const textLengthPrefixSize = 1

// BuildRowMeta computes field offsets and the total row size for schema.
// TypeUint32 columns occupy 4 bytes; TypeText columns occupy
// 1 (length prefix) + MaxLength bytes.
func BuildRowMeta(schema Schema) (*RowMeta, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("column: schema must have at least one column")
	}

	cols := make([]ColMeta, 0, len(schema))
	var offset uint32
	for _, c := range schema {
		switch c.Type {
		case TypeUint32:
			cols = append(cols, ColMeta{
				Name:     c.Name,
				Type:     TypeUint32,
				Offset:   offset,
				ByteSize: 4,
			})
			offset += 4

		case TypeText:
			if c.MaxLength == 0 {
				return nil, fmt.Errorf("column: text column %q must have MaxLength > 0", c.Name)
			}
			size := textLengthPrefixSize + c.MaxLength
			cols = append(cols, ColMeta{
				Name:      c.Name,
				Type:      TypeText,
				Offset:    offset,
				ByteSize:  size,
				MaxLength: c.MaxLength,
			})
			offset += size

		default:
			return nil, fmt.Errorf("column: unsupported column type for %q", c.Name)
		}
	}

	return &RowMeta{
		NumCols: len(cols),
		Columns: cols,
		RowSize: offset,
	}, nil
}

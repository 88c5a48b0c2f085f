// Package row implements the fixed-size, length-prefixed record
// format stored in every leaf cell: an id, a username, and an email.
package row

import (
	"encoding/binary"
	"fmt"

	"rowdb/column"
	"rowdb/dberr"
)

// Field width limits, pinned independently of host struct padding.
const (
	MaxUsernameLen = 32
	MaxEmailLen    = 255
)

// Schema is the one fixed schema this database knows how to store.
var Schema = column.Schema{
	{Name: "id", Type: column.TypeUint32},
	{Name: "username", Type: column.TypeText, MaxLength: MaxUsernameLen},
	{Name: "email", Type: column.TypeText, MaxLength: MaxEmailLen},
}

// Meta is Schema laid out as concrete byte offsets. Computed once at
// init so Size is usable as a constant-like value everywhere else.
var Meta = mustBuildMeta(Schema)

// Size is ROW_SIZE: the exact number of bytes Encode always produces.
var Size = Meta.RowSize

func mustBuildMeta(schema column.Schema) *column.RowMeta {
	meta, err := column.BuildRowMeta(schema)
	if err != nil {
		panic(err)
	}
	return meta
}

// Row is one record: the primary key plus its two text fields.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Encode serializes row into exactly Size bytes, zero-padding unused
// buffer space so the same logical row always produces the same
// bytes.
func Encode(r Row) ([]byte, error) {
	if len(r.Username) > MaxUsernameLen {
		return nil, fmt.Errorf("row: username too long (%d > %d)", len(r.Username), MaxUsernameLen)
	}
	if len(r.Email) > MaxEmailLen {
		return nil, fmt.Errorf("row: email too long (%d > %d)", len(r.Email), MaxEmailLen)
	}

	buf := make([]byte, Size)
	idMeta := Meta.Columns[0]
	userMeta := Meta.Columns[1]
	emailMeta := Meta.Columns[2]

	binary.LittleEndian.PutUint32(buf[idMeta.Offset:idMeta.Offset+4], r.ID)

	writeText(buf, userMeta, r.Username)
	writeText(buf, emailMeta, r.Email)

	return buf, nil
}

func writeText(buf []byte, meta column.ColMeta, s string) {
	base := meta.Offset
	buf[base] = byte(len(s))
	copy(buf[base+1:base+1+meta.MaxLength], s)
}

// Decode parses exactly Size bytes into a Row. It returns
// dberr.ErrUnexpectedEOF if src is shorter than Size, and
// dberr.ErrCorruptRow if a decoded length prefix exceeds its field's
// capacity. Invalid UTF-8 in username/email is preserved, not
// rejected — only the display layer cares about that.
func Decode(src []byte) (Row, error) {
	if len(src) < int(Size) {
		return Row{}, fmt.Errorf("row: %w: got %d bytes, want %d", dberr.ErrUnexpectedEOF, len(src), Size)
	}

	idMeta := Meta.Columns[0]
	userMeta := Meta.Columns[1]
	emailMeta := Meta.Columns[2]

	id := binary.LittleEndian.Uint32(src[idMeta.Offset : idMeta.Offset+4])

	username, err := readText(src, userMeta)
	if err != nil {
		return Row{}, err
	}
	email, err := readText(src, emailMeta)
	if err != nil {
		return Row{}, err
	}

	return Row{ID: id, Username: username, Email: email}, nil
}

func readText(src []byte, meta column.ColMeta) (string, error) {
	base := meta.Offset
	n := uint32(src[base])
	if n > meta.MaxLength {
		return "", fmt.Errorf("row: %w: field %q length %d exceeds capacity %d", dberr.ErrCorruptRow, meta.Name, n, meta.MaxLength)
	}
	return string(src[base+1 : base+1+n]), nil
}

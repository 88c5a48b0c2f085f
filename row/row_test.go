package row

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowdb/dberr"
)

func TestSizeIsPinned(t *testing.T) {
	assert.EqualValues(t, 293, Size, "ROW_SIZE must stay pinned per the on-disk format")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Row{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
		{ID: 0, Username: "", Email: ""},
		{ID: 42, Username: strings.Repeat("a", MaxUsernameLen), Email: strings.Repeat("b", MaxEmailLen)},
	}

	for _, want := range cases {
		buf, err := Encode(want)
		require.NoError(t, err)
		require.Len(t, buf, int(Size))

		got, err := Decode(buf)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestEncodeRejectsOversizedFields(t *testing.T) {
	_, err := Encode(Row{ID: 1, Username: strings.Repeat("a", MaxUsernameLen+1)})
	require.Error(t, err)

	_, err = Encode(Row{ID: 1, Email: strings.Repeat("e", MaxEmailLen+1)})
	require.Error(t, err)
}

func TestEncodeIsDeterministicAndZeroPadded(t *testing.T) {
	buf1, err := Encode(Row{ID: 7, Username: "bob", Email: "b@x"})
	require.NoError(t, err)
	buf2, err := Encode(Row{ID: 7, Username: "bob", Email: "b@x"})
	require.NoError(t, err)
	assert.Equal(t, buf1, buf2)

	// Bytes beyond the used prefix of the username field must be zero.
	userMeta := Meta.Columns[1]
	tail := buf1[userMeta.Offset+1+3 : userMeta.Offset+1+userMeta.MaxLength]
	for _, b := range tail {
		assert.Zero(t, b)
	}
}

func TestDecodeUnexpectedEOF(t *testing.T) {
	_, err := Decode(make([]byte, int(Size)-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dberr.ErrUnexpectedEOF))
}

func TestDecodeCorruptRow(t *testing.T) {
	buf := make([]byte, Size)
	userMeta := Meta.Columns[1]
	buf[userMeta.Offset] = byte(MaxUsernameLen + 1) // length prefix too large
	_, err := Decode(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dberr.ErrCorruptRow))
}

func TestDecodePreservesInvalidUTF8(t *testing.T) {
	buf := make([]byte, Size)
	userMeta := Meta.Columns[1]
	buf[userMeta.Offset] = 1
	buf[userMeta.Offset+1] = 0xff // not valid UTF-8 on its own

	got, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, string([]byte{0xff}), got.Username)
}

package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"rowdb/row"
)

// FormatRow renders a row the way select prints it: "(id, username,
// email)". A field that is not valid UTF-8 — possible because the row
// codec round-trips bytes verbatim, not just valid strings — is
// rendered with the offending bytes replaced rather than aborting the
// whole select.
func FormatRow(r row.Row) string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, sanitize(r.Username), sanitize(r.Email))
}

func sanitize(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "�")
}

// Package strbuf implements the Llama runtime's string operations over
// C-style string cells: a NUL-terminated byte sequence stored inside a
// caller-owned, fixed-capacity slice. The runtime never allocates cells;
// capacity is whatever the caller sized the slice to.
//
// The writing operations are capacity-checked: a copy or concatenation
// that will not fit, terminator included, returns ErrNoSpace and leaves
// the destination unchanged.
package strbuf

import (
	"bytes"
	"errors"
)

// ErrNoSpace reports a destination cell too small for the result.
var ErrNoSpace = errors.New("strbuf: destination capacity exhausted")

// content returns the bytes before the terminator. A cell with no
// terminator inside the slice is read as full-length.
func content(cell []byte) []byte {
	if i := bytes.IndexByte(cell, 0); i >= 0 {
		return cell[:i]
	}
	return cell
}

// Len returns the number of content bytes before the terminator.
func Len(cell []byte) int {
	return len(content(cell))
}

// Compare compares two cells byte-wise and returns -1, 0 or +1 as a is
// lexicographically less than, equal to or greater than b.
func Compare(a, b []byte) int {
	return bytes.Compare(content(a), content(b))
}

// Copy replaces dst's content with src's content. Fails with ErrNoSpace
// if dst cannot hold the content plus the terminator.
func Copy(dst, src []byte) error {
	c := content(src)
	if len(c)+1 > len(dst) {
		return ErrNoSpace
	}
	n := copy(dst, c)
	dst[n] = 0
	return nil
}

// Concat appends src's content to dst's content. Fails with ErrNoSpace
// if the combined content plus the terminator does not fit in dst.
func Concat(dst, src []byte) error {
	head := Len(dst)
	c := content(src)
	if head+len(c)+1 > len(dst) {
		return ErrNoSpace
	}
	n := copy(dst[head:], c)
	dst[head+n] = 0
	return nil
}

// Set writes the Go string s into cell as NUL-terminated content.
func Set(cell []byte, s string) error {
	if len(s)+1 > len(cell) {
		return ErrNoSpace
	}
	n := copy(cell, s)
	cell[n] = 0
	return nil
}

// String extracts cell's content as a Go string.
func String(cell []byte) string {
	return string(content(cell))
}

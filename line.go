// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package strv

// LineState carries the line-ending discriminator between SplitLine
// calls over consecutive buffers. The zero value carries nothing.
// Non-zero it holds the terminator byte that ended the previous
// buffer, so that a CRLF or LFCR pair split across two buffers is
// still consumed as one line ending.
type LineState byte

// Pending reports whether a terminator byte is carried.
func (st LineState) Pending() bool {
	return st != 0
}

var lineEndings = FromString("\r\n")

// pairsWith reports whether a then b form a CRLF or LFCR sequence.
func pairsWith(a, b byte) bool {
	return (a == '\r' && b == '\n') || (a == '\n' && b == '\r')
}

// SplitLine consumes and returns the first line of v, excluding its
// terminator. CR, LF, CRLF and LFCR all end a line; a CRLF or LFCR
// pair is one ending while two identical terminator bytes are two,
// the second producing an empty line.
//
// st, which may be nil, threads the discriminator between calls when
// lines are read incrementally: on entry a carried terminator that
// pairs with v's first byte silently consumes that byte and spends
// the carried state; on return st holds the terminator when it is v's
// final byte and could be half of a pair split across buffers, and is
// zero otherwise.
//
// Without a terminator anywhere in v, v is left as scanned (less a
// consumed completion byte), the invalid view is returned and no
// partial line is emitted. An empty, invalid or nil receiver returns
// the invalid view.
func (v *View) SplitLine(st *LineState) View {
	if v == nil || v.n == 0 {
		return View{}
	}

	src := *v
	if st != nil && st.Pending() && pairsWith(byte(*st), src.At(0)) {
		src.PopByte()
		// the carried half found its pair, the state is spent
		*st = 0
	}

	out := src.SplitFirst(lineEndings)
	if !src.IsValid() {
		*v = out
		return View{}
	}

	term := out.buf[out.off+out.n]

	var carry LineState
	if src.n == 0 {
		// the buffer ends on the terminator, it may be half a pair
		carry = LineState(term)
	} else if pairsWith(term, src.At(0)) {
		src.PopByte()
	}

	if st != nil {
		*st = carry
	}
	*v = src

	return out.check()
}

// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package strv

import (
	"bytes"
	"io"

	"github.com/negrel/assert"

	"github.com/trim21/strv/internal/pkg/unsafe"
)

// View references bytes inside an externally owned buffer. The zero
// value is the invalid view.
type View struct {
	buf []byte // full backing buffer, nil marks the invalid view
	off int    // window start within buf
	n   int    // window length
}

// a valid backing for zero-length views that have no buffer of their
// own, such as FromString("")
var emptyBuf = make([]byte, 0)

// FromString returns a view of the whole string. The conversion is
// zero-copy and O(1); the returned view is always valid.
func FromString(s string) View {
	if len(s) == 0 {
		return View{buf: emptyBuf}
	}

	return View{buf: unsafe.Bytes(s), n: len(s)}
}

// FromBytes returns a view of the whole slice. A nil slice gives the
// invalid view, a non-nil empty slice gives a valid empty view.
func FromBytes(b []byte) View {
	if b == nil {
		return View{}
	}

	return View{buf: b, n: len(b)}
}

// FromCString views b up to, but not including, the first NUL byte.
// Without a NUL the whole slice is viewed. A nil slice gives the
// invalid view.
func FromCString(b []byte) View {
	if b == nil {
		return View{}
	}

	n := bytes.IndexByte(b, 0)
	if n < 0 {
		n = len(b)
	}

	return View{buf: b, n: n}
}

// IsValid reports whether the view references a buffer, regardless of
// length. A valid empty view is still valid.
func (v View) IsValid() bool {
	return v.buf != nil
}

// Len returns the number of bytes viewed.
func (v View) Len() int {
	return v.n
}

// At returns the byte at index i. It panics if i is out of range.
func (v View) At(i int) byte {
	return v.window()[i]
}

// Bytes returns the viewed bytes without copying. The slice is nil for
// the invalid view and non-nil empty for a valid empty view. Callers
// must not modify it.
func (v View) Bytes() []byte {
	return v.window()
}

// String returns a copy of the viewed bytes.
func (v View) String() string {
	return string(v.window())
}

// Copy copies the viewed bytes into dst and returns the number of
// bytes copied, which is the smaller of dst's length and Len.
func (v View) Copy(dst []byte) int {
	return copy(dst, v.window())
}

// CString renders the view into dst as a NUL-terminated string,
// truncating to dst's capacity. It copies min(len(dst)-1, Len) bytes,
// writes the terminator and returns the written prefix including it.
// An empty dst is returned unchanged.
func (v View) CString(dst []byte) []byte {
	if len(dst) == 0 {
		return dst
	}

	n := min(len(dst)-1, v.n)
	copy(dst, v.window()[:n])
	dst[n] = 0

	return dst[:n+1]
}

// WriteTo writes the viewed bytes to w.
func (v View) WriteTo(w io.Writer) (int64, error) {
	if v.n == 0 {
		return 0, nil
	}

	n, err := w.Write(v.window())

	return int64(n), err
}

// Swap exchanges two view values. Nothing referenced is touched. A nil
// argument makes it a no-op.
func Swap(a, b *View) {
	if a == nil || b == nil {
		return
	}

	*a, *b = *b, *a
}

// window returns the viewed region of the backing buffer, nil for the
// invalid view.
func (v View) window() []byte {
	if v.buf == nil {
		return nil
	}

	return v.buf[v.off : v.off+v.n]
}

// check asserts the window sits inside the backing buffer. It is free
// unless the assert build tag is set.
func (v View) check() View {
	assert.GreaterOrEqual(v.off, 0)
	assert.GreaterOrEqual(v.n, 0)
	assert.LessOrEqual(v.off+v.n, len(v.buf))

	return v
}

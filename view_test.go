// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package strv_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trim21/strv"
)

func TestFromString(t *testing.T) {
	t.Parallel()

	v := strv.FromString("hello")
	require.True(t, v.IsValid())
	require.Equal(t, 5, v.Len())
	require.Equal(t, "hello", v.String())

	empty := strv.FromString("")
	require.True(t, empty.IsValid())
	require.Equal(t, 0, empty.Len())
}

func TestFromBytes(t *testing.T) {
	t.Parallel()

	require.False(t, strv.FromBytes(nil).IsValid())

	empty := strv.FromBytes([]byte{})
	require.True(t, empty.IsValid())
	require.Equal(t, 0, empty.Len())

	v := strv.FromBytes([]byte("abc"))
	require.Equal(t, "abc", v.String())
}

func TestFromCString(t *testing.T) {
	t.Parallel()

	require.False(t, strv.FromCString(nil).IsValid())

	v := strv.FromCString([]byte("abc\x00def"))
	require.Equal(t, "abc", v.String())

	// no NUL views the whole slice
	v = strv.FromCString([]byte("abc"))
	require.Equal(t, "abc", v.String())

	// leading NUL is a valid empty view
	v = strv.FromCString([]byte("\x00abc"))
	require.True(t, v.IsValid())
	require.Equal(t, 0, v.Len())
}

func TestZeroValueIsInvalid(t *testing.T) {
	t.Parallel()

	var v strv.View
	require.False(t, v.IsValid())
	require.Equal(t, 0, v.Len())
	require.Nil(t, v.Bytes())
}

func TestAt(t *testing.T) {
	t.Parallel()

	v := strv.FromString("abc")
	require.Equal(t, byte('a'), v.At(0))
	require.Equal(t, byte('c'), v.At(2))
	require.Panics(t, func() { v.At(3) })
}

func TestBytesZeroCopy(t *testing.T) {
	t.Parallel()

	buf := []byte("abc")
	v := strv.FromBytes(buf)

	b := v.Bytes()
	require.Equal(t, []byte("abc"), b)
	require.Same(t, &buf[0], &b[0])
}

func TestCopy(t *testing.T) {
	t.Parallel()

	v := strv.FromString("hello")

	dst := make([]byte, 3)
	require.Equal(t, 3, v.Copy(dst))
	require.Equal(t, "hel", string(dst))

	dst = make([]byte, 8)
	require.Equal(t, 5, v.Copy(dst))
}

func TestCString(t *testing.T) {
	t.Parallel()

	v := strv.FromString("hello")

	dst := make([]byte, 8)
	out := v.CString(dst)
	require.Equal(t, []byte("hello\x00"), out)

	// truncates to capacity, terminator always fits
	dst = make([]byte, 4)
	out = v.CString(dst)
	require.Equal(t, []byte("hel\x00"), out)

	// empty destination is a no-op
	require.Empty(t, v.CString(nil))
	require.Empty(t, v.CString([]byte{}))

	// the invalid view renders as just the terminator
	var invalid strv.View
	out = invalid.CString(dst)
	require.Equal(t, []byte("\x00"), out)
}

func TestWriteTo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := strv.FromString("hello").WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
	require.Equal(t, "hello", buf.String())

	var invalid strv.View
	n, err = invalid.WriteTo(&buf)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSwap(t *testing.T) {
	t.Parallel()

	a := strv.FromString("left")
	b := strv.FromString("right")

	strv.Swap(&a, &b)
	require.Equal(t, "right", a.String())
	require.Equal(t, "left", b.String())

	// nil arguments are a no-op
	strv.Swap(&a, nil)
	strv.Swap(nil, &b)
	require.Equal(t, "right", a.String())
	require.Equal(t, "left", b.String())
}

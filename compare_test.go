// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package strv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trim21/strv"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	a := strv.FromString("hello")
	b := strv.FromBytes([]byte("hello"))
	c := strv.FromString("Hello")

	require.True(t, a.Equal(a))
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(strv.FromString("hell")))
}

// Equality is structural on (length, content) only. The invalid view
// and a valid empty view both hold zero bytes, so they compare equal
// even though IsValid tells them apart. Deliberate, do not "fix".
func TestEqualInvalidMatchesValidEmpty(t *testing.T) {
	t.Parallel()

	var invalid strv.View
	empty := strv.FromString("")

	require.False(t, invalid.IsValid())
	require.True(t, empty.IsValid())

	require.True(t, invalid.Equal(empty))
	require.True(t, empty.Equal(invalid))
	require.True(t, invalid.Equal(invalid))
	require.True(t, invalid.EqualFold(empty))
}

func TestEqualFold(t *testing.T) {
	t.Parallel()

	a := strv.FromString("Hello World")
	b := strv.FromString("hELLO wORLD")

	require.True(t, a.EqualFold(b))
	require.True(t, b.EqualFold(a))
	require.False(t, a.Equal(b))
	require.False(t, a.EqualFold(strv.FromString("hello")))

	// folding is ASCII only
	require.False(t, strv.FromString("ä").EqualFold(strv.FromString("Ä")))
}

// case-insensitive match is a superset of case-sensitive match
func TestEqualFoldSuperset(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "a", "Ab", "hello world", "123 GO"} {
		a := strv.FromString(s)
		b := strv.FromString(s)
		require.True(t, a.Equal(b))
		require.True(t, a.EqualFold(b))
	}
}

func TestHasPrefix(t *testing.T) {
	t.Parallel()

	v := strv.FromString("hello world")

	require.True(t, v.HasPrefix(strv.FromString("hello")))
	require.True(t, v.HasPrefix(strv.FromString("")))
	require.True(t, v.HasPrefix(v))
	require.False(t, v.HasPrefix(strv.FromString("world")))
	require.False(t, v.HasPrefix(strv.FromString("hello world!")))
}

func TestHasPrefixInvalid(t *testing.T) {
	t.Parallel()

	var invalid strv.View
	v := strv.FromString("hello")

	// an invalid prefix matches only an invalid view
	require.True(t, invalid.HasPrefix(invalid))
	require.False(t, v.HasPrefix(invalid))

	// a valid empty prefix matches everything, invalid included
	require.True(t, invalid.HasPrefix(strv.FromString("")))
}

func TestHasPrefixFold(t *testing.T) {
	t.Parallel()

	v := strv.FromString("Hello World")

	require.True(t, v.HasPrefixFold(strv.FromString("hELLO")))
	require.False(t, v.HasPrefix(strv.FromString("hELLO")))
	require.False(t, v.HasPrefixFold(strv.FromString("world")))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	require.Zero(t, strv.FromString("abc").Compare(strv.FromString("abc")))
	require.Zero(t, strv.FromString("").Compare(strv.FromString("")))

	// signed difference of the first differing byte pair
	require.Equal(t, -1, strv.FromString("abc").Compare(strv.FromString("abd")))
	require.Equal(t, 1, strv.FromString("abd").Compare(strv.FromString("abc")))
	require.Equal(t, int('a')-int('b'), strv.FromString("a").Compare(strv.FromString("b")))

	// a strict prefix orders before the longer view
	require.Equal(t, -1, strv.FromString("ab").Compare(strv.FromString("abc")))
	require.Equal(t, 1, strv.FromString("abc").Compare(strv.FromString("ab")))

	// the invalid view compares as empty
	var invalid strv.View
	require.Zero(t, invalid.Compare(strv.FromString("")))
	require.Equal(t, -1, invalid.Compare(strv.FromString("a")))
}

// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package fields_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trim21/strv/internal/fields"
)

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := fields.Parse("1,3,5-9")
	require.NoError(t, err)

	require.True(t, s.Has(1))
	require.False(t, s.Has(2))
	require.True(t, s.Has(3))
	require.False(t, s.Has(4))
	for i := 5; i <= 9; i++ {
		require.True(t, s.Has(i))
	}
	require.False(t, s.Has(10))
	require.Equal(t, 9, s.Max())
}

func TestParseOpenRange(t *testing.T) {
	t.Parallel()

	s, err := fields.Parse("7-")
	require.NoError(t, err)

	require.False(t, s.Has(6))
	require.True(t, s.Has(7))
	require.True(t, s.Has(100000))
	require.Equal(t, 0, s.Max())
}

func TestParsePrefixRange(t *testing.T) {
	t.Parallel()

	s, err := fields.Parse("-3")
	require.NoError(t, err)

	require.True(t, s.Has(1))
	require.True(t, s.Has(3))
	require.False(t, s.Has(4))
}

func TestParseSpacesAndEmpty(t *testing.T) {
	t.Parallel()

	s, err := fields.Parse(" 2 , , 4 ")
	require.NoError(t, err)

	require.False(t, s.Has(1))
	require.True(t, s.Has(2))
	require.True(t, s.Has(4))
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	s, err := fields.Parse("")
	require.NoError(t, err)
	require.True(t, s.Empty())
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{"a", "0", "3-1", "1,x", "1.5"} {
		_, err := fields.Parse(expr)
		require.Error(t, err, expr)
	}
}

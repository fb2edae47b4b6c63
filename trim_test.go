// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package strv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trim21/strv"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	v := strv.FromString("..++data++..")
	cutset := strv.FromString(".+")

	require.Equal(t, "data++..", v.TrimLeft(cutset).String())
	require.Equal(t, "..++data", v.TrimRight(cutset).String())
	require.Equal(t, "data", v.Trim(cutset).String())

	// membership is case-sensitive
	require.Equal(t, "Xab", strv.FromString("xXab").TrimLeft(strv.FromString("x")).String())
}

func TestTrimIdempotent(t *testing.T) {
	t.Parallel()

	cutset := strv.FromString(" \t")

	for _, s := range []string{"  a  ", "a", "", "\t \t", " a b "} {
		once := strv.FromString(s).Trim(cutset)
		twice := once.Trim(cutset)
		require.True(t, once.Equal(twice), "%q", s)
	}
}

func TestTrimExhausted(t *testing.T) {
	t.Parallel()

	v := strv.FromString("aaaa").Trim(strv.FromString("a"))
	require.True(t, v.IsValid())
	require.Equal(t, 0, v.Len())
}

func TestTrimInvalidCutset(t *testing.T) {
	t.Parallel()

	var invalid strv.View
	v := strv.FromString("  a  ")

	require.Equal(t, "  a  ", v.Trim(invalid).String())
	require.Equal(t, "  a  ", v.Trim(strv.FromString("")).String())
}

func TestTrimSpace(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a b", strv.FromString(" \t\r\na b\v\f ").TrimSpace().String())
	require.Equal(t, 0, strv.FromString(" \n ").TrimSpace().Len())
}

// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swaggest/assertjson"

	"github.com/trim21/strv"
	"github.com/trim21/strv/internal/config"
)

func views(ss ...string) []strv.View {
	out := make([]strv.View, len(ss))
	for i, s := range ss {
		out[i] = strv.FromString(s)
	}

	return out
}

func TestPrinterText(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p, err := newPrinter(&out, config.Output{Format: "text", Color: "never"})
	require.NoError(t, err)

	require.NoError(t, p.Line(views("a", "b", "c")))
	require.Equal(t, "a\tb\tc\n", out.String())
}

func TestPrinterOutDelim(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p, err := newPrinter(&out, config.Output{Format: "text", Color: "never", Delim: ", "})
	require.NoError(t, err)

	require.NoError(t, p.Line(views("a", "b")))
	require.Equal(t, "a, b\n", out.String())
}

func TestPrinterJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p, err := newPrinter(&out, config.Output{Format: "json", Color: "never"})
	require.NoError(t, err)

	require.NoError(t, p.Line(views("a", `quote " me`, "")))
	assertjson.Equal(t, []byte(`["a", "quote \" me", ""]`), out.Bytes())
}

func TestPrinterMaxWidth(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p, err := newPrinter(&out, config.Output{Format: "text", Color: "never", MaxWidth: "4"})
	require.NoError(t, err)

	require.NoError(t, p.Line(views("abcdefgh", "ab")))
	require.Equal(t, "abcd\tab\n", out.String())
}

func TestPrinterBadMaxWidth(t *testing.T) {
	t.Parallel()

	_, err := newPrinter(&bytes.Buffer{}, config.Output{Format: "text", Color: "never", MaxWidth: "wide"})
	require.Error(t, err)
}

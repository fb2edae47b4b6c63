// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package strv

import (
	"fmt"
	"strconv"

	"github.com/trim21/strv/internal/pkg/unsafe"
)

var _ fmt.Formatter = View{}

// Format implements fmt.Formatter so a view embeds into formatted
// output without an intermediate string. %s and %v write the viewed
// bytes as-is, %q quotes them. Width, precision and the '-' flag work
// as for strings; the invalid view prints as empty.
func (v View) Format(f fmt.State, verb rune) {
	b := v.window()
	if p, ok := f.Precision(); ok && p < len(b) {
		b = b[:p]
	}

	var out []byte
	switch verb {
	case 's', 'v':
		out = b
	case 'q':
		out = strconv.AppendQuote(nil, string(b))
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(strv.View)", verb)
		return
	}

	left := f.Flag('-')
	if w, ok := f.Width(); ok && w > len(out) {
		if left {
			_, _ = f.Write(out)
			writePad(f, w-len(out))
			return
		}
		writePad(f, w-len(out))
	}

	_, _ = f.Write(out)
}

func writePad(f fmt.State, n int) {
	const spaces = "                "
	for n > 0 {
		c := min(n, len(spaces))
		_, _ = f.Write(unsafe.Bytes(spaces[:c]))
		n -= c
	}
}

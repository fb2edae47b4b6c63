// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package strv

// asciiSpace is what TrimSpace removes, ASCII whitespace only.
var asciiSpace = FromString("\t\n\v\f\r ")

// TrimLeft returns v with every leading byte that is a member of
// cutset removed. Membership is case-sensitive; an invalid cutset
// trims nothing.
func (v View) TrimLeft(cutset View) View {
	for v.n > 0 && cutset.containsByte(v.buf[v.off], false) {
		v.off++
		v.n--
	}

	return v
}

// TrimRight returns v with every trailing cutset byte removed.
func (v View) TrimRight(cutset View) View {
	for v.n > 0 && cutset.containsByte(v.buf[v.off+v.n-1], false) {
		v.n--
	}

	return v
}

// Trim returns v with cutset bytes removed from both ends.
func (v View) Trim(cutset View) View {
	return v.TrimLeft(cutset).TrimRight(cutset)
}

// TrimSpace returns v with ASCII whitespace removed from both ends.
func (v View) TrimSpace() View {
	return v.Trim(asciiSpace)
}

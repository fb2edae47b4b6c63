// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package strv

import (
	"bytes"

	"github.com/trim21/strv/internal/pkg/ascii"
)

// Equal reports whether both views hold the same bytes. Equality is
// structural on (length, content) only, so an invalid view and a valid
// empty view are equal.
func (v View) Equal(o View) bool {
	return bytes.Equal(v.window(), o.window())
}

// EqualFold is Equal under ASCII case folding.
func (v View) EqualFold(o View) bool {
	if v.n != o.n {
		return false
	}

	a, b := v.window(), o.window()
	for i := range a {
		if ascii.ToUpper(a[i]) != ascii.ToUpper(b[i]) {
			return false
		}
	}

	return true
}

// HasPrefix reports whether the view begins with prefix. An invalid
// prefix matches only an invalid view. A valid empty prefix matches
// everything, the invalid view included.
func (v View) HasPrefix(prefix View) bool {
	if !prefix.IsValid() {
		return !v.IsValid()
	}

	if v.n < prefix.n {
		return false
	}

	return bytes.Equal(v.window()[:prefix.n], prefix.window())
}

// HasPrefixFold is HasPrefix under ASCII case folding.
func (v View) HasPrefixFold(prefix View) bool {
	if !prefix.IsValid() {
		return !v.IsValid()
	}

	if v.n < prefix.n {
		return false
	}

	a, b := v.window()[:prefix.n], prefix.window()
	for i := range a {
		if ascii.ToUpper(a[i]) != ascii.ToUpper(b[i]) {
			return false
		}
	}

	return true
}

// Compare orders two views byte-wise. The result is the signed
// difference of the first differing byte pair; with one view a prefix
// of the other the longer view is greater. Equal content compares 0.
func (v View) Compare(o View) int {
	a, b := v.window(), o.window()

	m := min(len(a), len(b))
	for i := 0; i < m; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}

	switch {
	case v.n > o.n:
		return 1
	case v.n < o.n:
		return -1
	}

	return 0
}

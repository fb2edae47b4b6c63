// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package strv

import (
	"bytes"

	"github.com/trim21/strv/internal/pkg/ascii"
)

// Find returns a view of the first occurrence of needle inside v,
// anchored within v's buffer, or the invalid view if needle is absent
// or either input is invalid. A valid empty needle matches at the
// start of v.
func (v View) Find(needle View) View {
	if !v.IsValid() || !needle.IsValid() {
		return View{}
	}

	i := bytes.Index(v.window(), needle.window())
	if i < 0 {
		return View{}
	}

	return View{buf: v.buf, off: v.off + i, n: needle.n}.check()
}

// FindLast is Find scanning backwards, returning the last occurrence.
// A valid empty needle matches at the end of v.
func (v View) FindLast(needle View) View {
	if !v.IsValid() || !needle.IsValid() {
		return View{}
	}

	i := bytes.LastIndex(v.window(), needle.window())
	if i < 0 {
		return View{}
	}

	return View{buf: v.buf, off: v.off + i, n: needle.n}.check()
}

// Contains reports whether needle occurs inside v.
func (v View) Contains(needle View) bool {
	return v.Find(needle).IsValid()
}

// containsByte reports whether c is one of the viewed bytes,
// optionally under ASCII case folding. The invalid view contains
// nothing.
func (v View) containsByte(c byte, fold bool) bool {
	if !fold {
		return bytes.IndexByte(v.window(), c) >= 0
	}

	c = ascii.ToUpper(c)
	for _, b := range v.window() {
		if ascii.ToUpper(b) == c {
			return true
		}
	}

	return false
}

// indexAny returns the offset of the first byte of s that is a member
// of the set, -1 if none is.
func indexAny(s []byte, set View, fold bool) int {
	for i, c := range s {
		if set.containsByte(c, fold) {
			return i
		}
	}

	return -1
}

func lastIndexAny(s []byte, set View, fold bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if set.containsByte(s[i], fold) {
			return i
		}
	}

	return -1
}

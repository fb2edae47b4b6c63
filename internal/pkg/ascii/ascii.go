// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package ascii has byte-level ASCII helpers. Bytes outside the ASCII
// letters pass through unchanged, multi-byte encodings are not
// interpreted.
package ascii

func ToUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}

func ToLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}

func IsSpace(c byte) bool {
	switch c {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	}

	return false
}

func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

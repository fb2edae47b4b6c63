// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

//go:build !linux && !darwin

package term

func Width() (int, bool) {
	return 0, false
}

func IsTerminal() bool {
	return false
}

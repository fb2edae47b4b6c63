// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

//go:build linux || darwin

package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// Width returns the column count of the terminal on stdout, or
// ok=false when stdout is not a terminal.
func Width() (int, bool) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 0, false
	}

	return int(ws.Col), true
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	_, ok := Width()
	return ok
}

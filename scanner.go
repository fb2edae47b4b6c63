// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package strv

import (
	"errors"
	"io"

	"github.com/docker/go-units"
)

// ErrLineTooLong is reported by LineScanner when a single line does
// not fit the scan buffer.
var ErrLineTooLong = errors.New("strv: line too long for scan buffer")

const defaultScanBuf = 64 * units.KiB

// LineScanner reads lines incrementally from an io.Reader through
// SplitLine, threading the line-ending discriminator across buffer
// refills so a CRLF or LFCR pair split between two reads still counts
// as one ending. It owns exactly one scan buffer, caller-supplied or
// allocated once; the view operations themselves never allocate.
//
// Each Scan may move unconsumed bytes to the buffer front and refill
// the rest, so views returned by earlier Line calls are invalidated
// by the next Scan. Copy (View.String or View.Copy) anything that has
// to survive.
type LineScanner struct {
	r    io.Reader
	err  error
	buf  []byte
	view View
	line View
	st   LineState
	eof  bool
}

// NewLineScanner returns a scanner reading from r. A nil or empty buf
// allocates a default 64KiB scan buffer; lines longer than the buffer
// fail the scan with ErrLineTooLong.
func NewLineScanner(r io.Reader, buf []byte) *LineScanner {
	if len(buf) == 0 {
		buf = make([]byte, defaultScanBuf)
	}

	return &LineScanner{r: r, buf: buf}
}

// Scan advances to the next line, reading more input as needed. It
// returns false at end of input or on error; Err tells which. A final
// line without a terminator is still emitted.
func (s *LineScanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for {
		if line := s.view.SplitLine(&s.st); line.IsValid() {
			s.line = line
			return true
		}

		if s.eof {
			if s.view.n == 0 {
				return false
			}

			// unterminated tail becomes the last line
			s.line = s.view.SplitAt(s.view.n)
			return true
		}

		if !s.fill() {
			return false
		}
	}
}

// fill compacts the unconsumed window to the buffer front and reads
// more after it.
func (s *LineScanner) fill() bool {
	keep := s.view.Copy(s.buf)
	if keep == len(s.buf) {
		s.err = ErrLineTooLong
		return false
	}

	// a reader returning neither data nor error must not spin us
	for i := 0; i < 100; i++ {
		n, err := s.r.Read(s.buf[keep:])
		if n == 0 && err == nil {
			continue
		}

		s.view = View{buf: s.buf, n: keep + n}

		if err != nil {
			if errors.Is(err, io.EOF) {
				s.eof = true
				return true
			}

			s.err = err
			return false
		}

		return true
	}

	s.err = io.ErrNoProgress
	return false
}

// Line returns the most recently scanned line. The view stays usable
// until the next Scan call.
func (s *LineScanner) Line() View {
	return s.line
}

// Text returns the most recently scanned line as a copied string.
func (s *LineScanner) Text() string {
	return s.line.String()
}

// Err returns the first error hit by Scan, never io.EOF.
func (s *LineScanner) Err() error {
	return s.err
}

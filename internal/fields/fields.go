// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package fields parses cut-style field selections such as "1,3,5-9"
// or "2-" into a set queried per field number.
package fields

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/trim21/errgo"

	"github.com/trim21/strv/internal/pkg/as"
	"github.com/trim21/strv/internal/pkg/ascii"
)

// Set holds selected field numbers. Field numbers start at 1.
type Set struct {
	bm       *roaring.Bitmap
	openFrom uint32 // fields >= openFrom are selected when non-zero
}

// Parse reads a comma-separated selection. Each element is a single
// field "7", a closed range "5-9", an open range "5-" selecting every
// field from 5 on, or "-9" meaning "1-9". Empty elements are skipped.
func Parse(expr string) (*Set, error) {
	s := &Set{bm: roaring.New()}

	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if err := s.addPart(part); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Set) addPart(part string) error {
	first, rest, ranged := strings.Cut(part, "-")

	if !ranged {
		n, err := parseField(first)
		if err != nil {
			return err
		}

		s.bm.Add(n)
		return nil
	}

	start := uint32(1)
	if first != "" {
		n, err := parseField(first)
		if err != nil {
			return err
		}

		start = n
	}

	if rest == "" {
		if s.openFrom == 0 || start < s.openFrom {
			s.openFrom = start
		}
		return nil
	}

	end, err := parseField(rest)
	if err != nil {
		return err
	}

	if end < start {
		return fmt.Errorf("invalid field range %q", part)
	}

	s.bm.AddRange(uint64(start), uint64(end)+1)
	return nil
}

func parseField(raw string) (uint32, error) {
	for i := 0; i < len(raw); i++ {
		if !ascii.IsDigit(raw[i]) {
			return 0, fmt.Errorf("invalid field %q", raw)
		}
	}

	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errgo.Wrap(err, "failed to parse field number")
	}

	if n == 0 {
		return 0, fmt.Errorf("invalid field %q, field numbers start at 1", raw)
	}

	return uint32(n), nil
}

// Has reports whether field number i is selected.
func (s *Set) Has(i int) bool {
	n := as.Uint32(i)
	if s.openFrom != 0 && n >= s.openFrom {
		return true
	}

	return s.bm.Contains(n)
}

// Empty reports whether nothing is selected.
func (s *Set) Empty() bool {
	return s.openFrom == 0 && s.bm.IsEmpty()
}

// Max returns the highest selected field number, or 0 when the
// selection is empty or open-ended.
func (s *Set) Max() int {
	if s.openFrom != 0 || s.bm.IsEmpty() {
		return 0
	}

	return int(s.bm.Maximum())
}

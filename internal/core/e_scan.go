// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package core

import (
	"context"
	"io"

	"github.com/trim21/strv"
	"github.com/trim21/strv/internal/pkg/empty"
	"github.com/trim21/strv/internal/pkg/gfs"
)

// scanReader drains one input line by line and feeds every line
// through the filter, split and print pipeline.
func (e *Engine) scanReader(ctx context.Context, r io.Reader) error {
	buf := e.getBuf()
	defer e.putBuf(buf)

	scratch := e.viewPool.Get()
	defer func() {
		e.viewPool.Put(scratch[:0])
	}()

	sc := strv.NewLineScanner(gfs.NewReader(ctx, r), buf)
	for sc.Scan() {
		if err := e.emit(sc.Line(), &scratch); err != nil {
			return err
		}
	}

	return sc.Err()
}

// emit runs one line through the pipeline. scratch is the caller-owned
// field buffer, reused across lines.
func (e *Engine) emit(line strv.View, scratch *[]strv.View) error {
	e.lines.Inc()
	e.bytesRead.Add(int64(line.Len()))
	e.flow.Update(line.Len())

	if e.match.Len() > 0 && !e.matches(line) {
		return nil
	}

	if e.dedup != nil {
		key := line.String()
		if _, seen := e.dedup.Get(key); seen {
			e.suppressed.Inc()
			return nil
		}

		e.dedup.Add(key, empty.Empty{})
	}

	out := (*scratch)[:0]

	if e.fieldSet == nil {
		out = append(out, line.Trim(e.trimSet))
	} else {
		rest := line
		for i := 1; rest.IsValid(); i++ {
			var f strv.View
			if e.cfg.Input.NoCase {
				f = rest.SplitFirstFold(e.delims)
			} else {
				f = rest.SplitFirst(e.delims)
			}

			if e.fieldSet.Has(i) {
				out = append(out, f.Trim(e.trimSet))
			}
		}
	}

	*scratch = out

	if len(out) == 0 {
		return nil
	}

	e.printed.Inc()

	return e.printer.Line(out)
}

func (e *Engine) matches(line strv.View) bool {
	if !e.cfg.Input.NoCase {
		return line.Contains(e.match)
	}

	return containsFold(line, e.match)
}

// containsFold is Contains under ASCII case folding. The library only
// searches case sensitively, so this walks every window of needle's
// length.
func containsFold(hay, needle strv.View) bool {
	if !hay.IsValid() || !needle.IsValid() {
		return false
	}

	for i := 0; i+needle.Len() <= hay.Len(); i++ {
		if hay.Sub(i, i+needle.Len()).EqualFold(needle) {
			return true
		}
	}

	return false
}

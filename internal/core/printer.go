// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package core

import (
	"io"
	"strconv"
	"sync"

	"github.com/fatih/color"
	"github.com/juju/ratelimit"
	"github.com/trim21/errgo"

	"github.com/trim21/strv"
	"github.com/trim21/strv/internal/config"
	"github.com/trim21/strv/internal/pkg/mempool"
	"github.com/trim21/strv/internal/pkg/term"
	"github.com/trim21/strv/internal/pkg/unsafe"
)

// printer assembles one output line per input line and writes it out.
// Line is safe to call from multiple workers.
type printer struct {
	w io.Writer

	hl     *color.Color      // nil disables highlighting
	bucket *ratelimit.Bucket // nil means unlimited

	outDelim string
	jsonOut  bool
	maxWidth int // per-field byte cap, 0 means unlimited

	mu sync.Mutex
}

func newPrinter(w io.Writer, cfg config.Output) (*printer, error) {
	p := &printer{
		w:        w,
		outDelim: cfg.Delim,
		jsonOut:  cfg.Format == "json",
	}

	if p.outDelim == "" {
		p.outDelim = "\t"
	}

	switch cfg.Color {
	case "always":
		p.hl = color.New(color.FgCyan)
		p.hl.EnableColor()
	case "auto":
		if term.IsTerminal() {
			p.hl = color.New(color.FgCyan)
			p.hl.EnableColor()
		}
	}

	switch cfg.MaxWidth {
	case "":
	case "auto":
		if cols, ok := term.Width(); ok {
			p.maxWidth = cols
		}
	default:
		n, err := strconv.Atoi(cfg.MaxWidth)
		if err != nil {
			return nil, errgo.Wrap(err, "parse max-width")
		}

		p.maxWidth = n
	}

	if cfg.RateLimit > 0 {
		p.bucket = ratelimit.NewBucketWithRate(float64(cfg.RateLimit), int64(cfg.RateLimit))
	}

	return p, nil
}

// Line writes the selected fields of one line, joined by the output
// delimiter, or as a JSON string array in json mode.
func (p *printer) Line(fields []strv.View) error {
	buf := mempool.Get()
	defer mempool.Put(buf)

	if p.jsonOut {
		_ = buf.WriteByte('[')
		for i, f := range fields {
			if i > 0 {
				_ = buf.WriteByte(',')
			}

			buf.B = strconv.AppendQuote(buf.B, unsafe.Str(p.clip(f).Bytes()))
		}
		_ = buf.WriteByte(']')
	} else {
		for i, f := range fields {
			if i > 0 {
				_, _ = buf.WriteString(p.outDelim)
			}

			f = p.clip(f)
			if p.hl != nil {
				_, _ = buf.WriteString(p.hl.Sprint(f))
			} else {
				_, _ = f.WriteTo(buf)
			}
		}
	}

	_ = buf.WriteByte('\n')

	if p.bucket != nil {
		p.bucket.Wait(int64(buf.Len()))
	}

	p.mu.Lock()
	_, err := p.w.Write(buf.B)
	p.mu.Unlock()

	if err != nil {
		return errgo.Wrap(err, "write output")
	}

	return nil
}

// clip truncates a field to the configured width.
func (p *printer) clip(f strv.View) strv.View {
	if p.maxWidth <= 0 || f.Len() <= p.maxWidth {
		return f
	}

	return f.Sub(0, p.maxWidth)
}

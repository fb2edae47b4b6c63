// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package core

import (
	"github.com/dustin/go-humanize"

	"github.com/trim21/strv/internal/pkg/null"
)

// Stats is the snapshot served on the follow mode status endpoint.
type Stats struct {
	Lines      int64    `json:"lines"`
	Bytes      int64    `json:"bytes"`
	Printed    int64    `json:"printed"`
	Suppressed int64    `json:"suppressed"`
	Rate       int64    `json:"rate"`
	Followed   int64    `json:"followed"`
	Resume     null.Str `json:"resume"`
}

func (e *Engine) Stats() Stats {
	s := Stats{
		Lines:      e.lines.Value(),
		Bytes:      e.bytesRead.Value(),
		Printed:    e.printed.Value(),
		Suppressed: e.suppressed.Value(),
		Rate:       e.flow.Status().CurRate,
		Followed:   e.followed.Load(),
	}

	if e.opt.Resume != "" {
		s.Resume = null.New(e.opt.Resume)
	}

	return s
}

// LogSummary logs what a finished run scanned and printed.
func (e *Engine) LogSummary() {
	st := e.flow.Status()

	e.log.Info().
		Str("lines", humanize.Comma(e.lines.Value())).
		Str("bytes", humanize.IBytes(uint64(e.bytesRead.Value()))).
		Str("rate", humanize.IBytes(uint64(st.AvgRate))+"/s").
		Int64("printed", e.printed.Value()).
		Int64("suppressed", e.suppressed.Value()).
		Dur("elapsed", st.Duration).
		Msg("scan finished")
}

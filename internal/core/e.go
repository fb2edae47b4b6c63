// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package core

import (
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/panjf2000/ants/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"go.uber.org/atomic"
	"golang.org/x/sync/semaphore"

	"github.com/trim21/strv"
	"github.com/trim21/strv/internal/config"
	"github.com/trim21/strv/internal/fields"
	"github.com/trim21/strv/internal/pkg/empty"
	"github.com/trim21/strv/internal/pkg/flowrate"
	"github.com/trim21/strv/internal/pkg/gsync"
	"github.com/trim21/strv/internal/pkg/mempool"
	"github.com/trim21/strv/internal/resume"
)

// Options are the run-scoped settings that come from the command line
// only, never from the config file.
type Options struct {
	Inputs []string // files and directories, stdin when empty
	Fields string   // field selection such as "1,3,5-9", empty selects whole lines
	Match  string   // only lines containing this are emitted
	Trim   string   // cutset trimmed from both ends of every output field
	Resume string   // follow mode positions file
	Follow bool
}

func New(cfg config.Config, opt Options) (*Engine, error) {
	e := &Engine{
		cfg: cfg,
		opt: opt,

		delims: strv.FromString(cfg.Input.Delims),

		pool: lo.Must(ants.NewPool(workersOrDefault(cfg.Run.Workers), ants.WithPreAlloc(true))),
		sem:  semaphore.NewWeighted(int64(cfg.Run.OpenFiles)),

		viewPool: gsync.NewPool(func() []strv.View {
			return make([]strv.View, 0, 16)
		}),

		flow: flowrate.New(0, 0),

		lines:      xsync.NewCounter(),
		bytesRead:  xsync.NewCounter(),
		printed:    xsync.NewCounter(),
		suppressed: xsync.NewCounter(),

		positions: gsync.NewMap[string, resume.Position](),

		log: log.With().Str("component", "engine").Logger(),
	}

	if cfg.Input.Buffer > 0 {
		e.bufPool = gsync.NewPool(func() []byte {
			return make([]byte, int(cfg.Input.Buffer))
		})
	}

	if opt.Fields != "" {
		set, err := fields.Parse(opt.Fields)
		if err != nil {
			return nil, err
		}

		e.fieldSet = set
	}

	if opt.Match != "" {
		e.match = strv.FromString(opt.Match)
	}

	if opt.Trim != "" {
		e.trimSet = strv.FromString(opt.Trim)
	}

	if cfg.Run.Dedup > 0 {
		e.dedup = expirable.NewLRU[string, empty.Empty](cfg.Run.Dedup, nil, cfg.Run.DedupTTL.Std())
	}

	p, err := newPrinter(os.Stdout, cfg.Output)
	if err != nil {
		return nil, err
	}
	e.printer = p

	return e, nil
}

type Engine struct {
	cfg config.Config
	opt Options

	fieldSet *fields.Set
	delims   strv.View
	match    strv.View // zero view when no filter is set
	trimSet  strv.View // the invalid cutset trims nothing

	pool     *ants.Pool
	sem      *semaphore.Weighted
	bufPool  *gsync.Pool[[]byte] // nil without an explicit buffer size
	viewPool *gsync.Pool[[]strv.View]

	dedup   *expirable.LRU[string, empty.Empty] // nil when disabled
	printer *printer

	flow *flowrate.Monitor

	lines      *xsync.Counter
	bytesRead  *xsync.Counter
	printed    *xsync.Counter
	suppressed *xsync.Counter
	failed     atomic.Uint32
	followed   atomic.Int64

	// final follow mode read positions, written by each tailer when it
	// stops and persisted to the resume file at shutdown
	positions *gsync.Map[string, resume.Position]

	log zerolog.Logger
}

func workersOrDefault(n int) int {
	if n > 0 {
		return n
	}

	return runtime.GOMAXPROCS(0)
}

var metricsOnce sync.Once

func (e *Engine) initMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "strv_lines_scanned_total",
		}, func() float64 {
			return float64(e.lines.Value())
		}))

		prometheus.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "strv_bytes_scanned_total",
		}, func() float64 {
			return float64(e.bytesRead.Value())
		}))

		prometheus.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "strv_lines_printed_total",
		}, func() float64 {
			return float64(e.printed.Value())
		}))

		prometheus.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "strv_lines_suppressed_total",
		}, func() float64 {
			return float64(e.suppressed.Value())
		}))

		prometheus.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "strv_followed_files",
		}, func() float64 {
			return float64(e.followed.Load())
		}))
	})
}

// SetOutput redirects printed lines, stdout by default.
func (e *Engine) SetOutput(w io.Writer) {
	e.printer.w = w
}

// getBuf returns a scan buffer, configured size or a pooled default.
func (e *Engine) getBuf() []byte {
	if e.bufPool != nil {
		return e.bufPool.Get()
	}

	return mempool.GetSlice()
}

func (e *Engine) putBuf(buf []byte) {
	if e.bufPool != nil {
		e.bufPool.Put(buf)
		return
	}

	mempool.PutSlice(buf)
}

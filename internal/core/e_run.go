// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package core

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/karrick/godirwalk"
	"github.com/samber/lo"
	"github.com/trim21/errgo"

	"github.com/trim21/strv/internal/pkg/heap"
)

// Run scans every input once and returns when all of them are drained,
// or tails them forever under --follow until ctx is canceled.
func (e *Engine) Run(ctx context.Context) error {
	e.initMetrics()
	defer e.pool.Release()

	if e.opt.Follow {
		return e.follow(ctx)
	}

	if len(e.opt.Inputs) == 0 {
		return e.scanReader(ctx, os.Stdin)
	}

	files, err := e.gather()
	if err != nil {
		return err
	}

	// largest first, so the longest scan does not end up scheduled last
	h := heap.FromSlice(files)

	var wg sync.WaitGroup
	for h.Len() > 0 {
		f := h.Pop()

		wg.Add(1)
		lo.Must0(e.pool.Submit(func() {
			defer wg.Done()

			if err := e.scanFile(ctx, f.path); err != nil && ctx.Err() == nil {
				e.log.Err(err).Str("file", f.path).Msg("failed to scan file")
				e.failed.Add(1)
			}
		}))
	}

	wg.Wait()

	if n := e.failed.Load(); n > 0 {
		return fmt.Errorf("%d input file(s) failed", n)
	}

	return ctx.Err()
}

type inputFile struct {
	path string
	size int64
}

func (f inputFile) Less(o inputFile) bool {
	return f.size > o.size
}

// gather expands the positional arguments into a flat list of regular
// files. Directories need --recursive and are walked unsorted.
func (e *Engine) gather() ([]inputFile, error) {
	var files []inputFile

	for _, input := range e.opt.Inputs {
		fi, err := os.Stat(input)
		if err != nil {
			return nil, errgo.Wrap(err, "failed to stat input")
		}

		if !fi.IsDir() {
			files = append(files, inputFile{path: input, size: fi.Size()})
			continue
		}

		if !e.cfg.Input.Recursive {
			return nil, fmt.Errorf("%q is a directory, use --recursive to scan it", input)
		}

		err = godirwalk.Walk(input, &godirwalk.Options{
			Unsorted: true,
			Callback: func(path string, de *godirwalk.Dirent) error {
				if !de.IsRegular() {
					return nil
				}

				st, err := os.Stat(path)
				if err != nil {
					return err
				}

				files = append(files, inputFile{path: path, size: st.Size()})
				return nil
			},
		})
		if err != nil {
			return nil, errgo.Wrap(err, "failed to walk directory")
		}
	}

	return files, nil
}

func (e *Engine) scanFile(ctx context.Context, path string) error {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return errgo.Wrap(err, "failed to acquire file slot")
	}
	defer e.sem.Release(1)

	f, err := os.Open(path)
	if err != nil {
		return errgo.Wrap(err, "failed to open input")
	}
	defer f.Close()

	return e.scanReader(ctx, f)
}

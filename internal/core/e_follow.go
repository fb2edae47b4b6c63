// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package core

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/karrick/godirwalk"
	"github.com/sourcegraph/conc"

	"github.com/trim21/strv/internal/resume"
)

// follow tails the inputs until ctx is canceled. Each live file gets
// its own tailer goroutine; files that stop showing up on the
// discovery scan (rotated, deleted) expire out of the registry and
// their tailer is stopped.
func (e *Engine) follow(ctx context.Context) error {
	if len(e.opt.Inputs) == 0 {
		return errors.New("follow mode needs file or directory arguments")
	}

	saved, err := e.loadPositions()
	if err != nil {
		return err
	}

	registry := ttlcache.New[string, *tailer](
		ttlcache.WithTTL[string, *tailer](e.cfg.Follow.Expire.Std()),
	)

	var wg conc.WaitGroup

	registry.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *tailer]) {
		t := item.Value()
		t.stop()

		if reason == ttlcache.EvictionReasonExpired {
			e.log.Info().Str("file", t.path).Msg("file vanished, stopped following")
		}
	})

	go registry.Start()

	tick := time.NewTicker(e.cfg.Follow.PollInterval.Std())
	defer tick.Stop()

	for {
		e.discover(ctx, registry, &wg, saved)

		select {
		case <-ctx.Done():
			registry.Stop()
			registry.DeleteAll()
			wg.Wait()

			return e.savePositions()
		case <-tick.C:
		}
	}
}

// discover walks the inputs and starts a tailer for every file that is
// not already followed. Seeing a file again refreshes its registry TTL.
func (e *Engine) discover(ctx context.Context, registry *ttlcache.Cache[string, *tailer], wg *conc.WaitGroup, saved map[string]resume.Position) {
	start := func(path string) {
		if item := registry.Get(path); item != nil {
			return
		}

		t := newTailer(e, path, saved[path])
		registry.Set(path, t, ttlcache.DefaultTTL)

		e.followed.Add(1)
		e.log.Info().Str("file", path).Int64("offset", t.offset).Msg("following file")

		wg.Go(func() {
			t.run(ctx)
		})
	}

	for _, input := range e.opt.Inputs {
		fi, err := os.Stat(input)
		if err != nil {
			continue
		}

		if !fi.IsDir() {
			start(input)
			continue
		}

		_ = godirwalk.Walk(input, &godirwalk.Options{
			Unsorted: true,
			Callback: func(path string, de *godirwalk.Dirent) error {
				if de.IsRegular() {
					start(path)
				}
				return nil
			},
		})
	}
}

func (e *Engine) loadPositions() (map[string]resume.Position, error) {
	if e.opt.Resume == "" {
		return map[string]resume.Position{}, nil
	}

	saved, err := resume.Load(e.opt.Resume)
	if err != nil {
		e.log.Warn().Err(err).Str("file", e.opt.Resume).Msg("resume file unusable, starting fresh")
		return map[string]resume.Position{}, nil
	}

	return saved, nil
}

func (e *Engine) savePositions() error {
	if e.opt.Resume == "" {
		return nil
	}

	positions := map[string]resume.Position{}
	e.positions.Range(func(path string, pos resume.Position) bool {
		positions[path] = pos
		return true
	})

	return resume.Save(e.opt.Resume, positions)
}

// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package core

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/trim21/errgo"

	"github.com/trim21/strv"
	"github.com/trim21/strv/internal/pkg/empty"
	"github.com/trim21/strv/internal/pkg/gfs"
	"github.com/trim21/strv/internal/resume"
)

// tailer polls one followed file for appended data. The read offset
// and the line-ending discriminator persist across polls, so a CRLF
// pair written in two pieces is still one line ending.
type tailer struct {
	e *Engine

	path    string
	offset  int64
	st      strv.LineState
	scratch []strv.View

	done chan empty.Empty
	log  zerolog.Logger
}

func newTailer(e *Engine, path string, pos resume.Position) *tailer {
	return &tailer{
		e:      e,
		path:   path,
		offset: pos.Offset,
		st:     strv.LineState(pos.EOL),
		done:   make(chan empty.Empty),
		log:    log.With().Str("component", "tailer").Str("file", path).Logger(),
	}
}

func (t *tailer) stop() {
	close(t.done)
}

func (t *tailer) run(ctx context.Context) {
	tick := time.NewTicker(t.e.cfg.Follow.PollInterval.Std())
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			t.finish()
			return
		case <-t.done:
			t.finish()
			return
		case <-tick.C:
			if err := t.poll(ctx); err != nil && !os.IsNotExist(err) && ctx.Err() == nil {
				t.log.Err(err).Msg("poll failed")
			}
		}
	}
}

// finish records the final read position for the resume file and
// drops the file from the followed gauge.
func (t *tailer) finish() {
	t.e.positions.Store(t.path, resume.Position{Offset: t.offset, EOL: byte(t.st)})
	t.e.followed.Add(-1)
}

// poll reads everything appended since the last poll and emits the
// complete lines in it. An unterminated tail stays unread until more
// data arrives; the offset never moves past it.
func (t *tailer) poll(ctx context.Context) error {
	fi, err := os.Stat(t.path)
	if err != nil {
		return err
	}

	size := fi.Size()
	if size < t.offset {
		// truncated, start over
		t.offset = 0
		t.st = 0
	}

	if size == t.offset {
		return nil
	}

	f, err := os.Open(t.path)
	if err != nil {
		return errgo.Wrap(err, "failed to open followed file")
	}
	defer f.Close()

	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return errgo.Wrap(err, "failed to seek followed file")
	}

	buf := t.e.getBuf()
	defer t.e.putBuf(buf)

	r := gfs.NewReader(ctx, f)

	for t.offset < size {
		n, err := r.Read(buf)
		if n > 0 {
			consumed, emitErr := t.drain(buf[:n])
			if emitErr != nil {
				return emitErr
			}

			t.offset += int64(consumed)

			if consumed == 0 {
				// unterminated tail, re-read once more data arrives
				return nil
			}

			if consumed < n {
				if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
					return errgo.Wrap(err, "failed to seek followed file")
				}
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return errgo.Wrap(err, "failed to read followed file")
		}
	}

	return nil
}

// drain emits every complete line in chunk and returns how many bytes
// were consumed. A full chunk without any terminator is emitted whole,
// otherwise the tailer could never move past a line longer than its
// buffer.
func (t *tailer) drain(chunk []byte) (int, error) {
	v := strv.FromBytes(chunk)

	for {
		line := v.SplitLine(&t.st)
		if !line.IsValid() {
			break
		}

		if err := t.e.emit(line, &t.scratch); err != nil {
			return 0, err
		}
	}

	consumed := len(chunk) - v.Len()

	if consumed == 0 && v.Len() == cap(chunk) {
		t.log.Warn().Msg("line longer than the scan buffer, emitting it in pieces")

		if err := t.e.emit(v.SplitAt(v.Len()), &t.scratch); err != nil {
			return 0, err
		}

		consumed = len(chunk)
	}

	return consumed, nil
}

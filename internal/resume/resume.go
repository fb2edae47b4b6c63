// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package resume persists follow-mode read positions between runs.
package resume

import (
	"errors"
	"os"
	"time"

	"github.com/trim21/errgo"
	"github.com/zeebo/bencode"

	"github.com/trim21/strv/internal/pkg/crc32c"
)

// Position is where reading of one followed file stopped.
type Position struct {
	Offset int64 `bencode:"offset"`
	// EOL carries the line-ending discriminator, so a CRLF or LFCR
	// pair split across two runs is still consumed as one ending.
	EOL byte `bencode:"eol"`
}

type payload struct {
	Positions map[string]Position `bencode:"positions"`
	SavedAt   int64               `bencode:"saved_at"`
}

type envelope struct {
	Data bencode.RawMessage `bencode:"data"`
	Sum  uint32             `bencode:"sum"`
}

var ErrChecksum = errors.New("resume file checksum mismatch")

// Load reads positions saved by a previous run. A missing file is an
// empty result, not an error.
func Load(path string) (map[string]Position, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Position{}, nil
		}

		return nil, errgo.Wrap(err, "failed to read resume file")
	}

	var env envelope
	if err := bencode.DecodeBytes(raw, &env); err != nil {
		return nil, errgo.Wrap(err, "failed to parse resume file")
	}

	if crc32c.Sum(env.Data) != env.Sum {
		return nil, ErrChecksum
	}

	var p payload
	if err := bencode.DecodeBytes(env.Data, &p); err != nil {
		return nil, errgo.Wrap(err, "failed to parse resume payload")
	}

	if p.Positions == nil {
		p.Positions = map[string]Position{}
	}

	return p.Positions, nil
}

// Save writes positions to a temp file in the same directory and
// renames it over path, so a crash never leaves a half-written file.
func Save(path string, positions map[string]Position) error {
	data, err := bencode.EncodeBytes(payload{
		Positions: positions,
		SavedAt:   time.Now().Unix(),
	})
	if err != nil {
		return errgo.Wrap(err, "failed to encode resume payload")
	}

	raw, err := bencode.EncodeBytes(envelope{Data: data, Sum: crc32c.Sum(data)})
	if err != nil {
		return errgo.Wrap(err, "failed to encode resume file")
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errgo.Wrap(err, "failed to write resume file")
	}

	if err := os.Rename(tmp, path); err != nil {
		return errgo.Wrap(err, "failed to replace resume file")
	}

	return nil
}

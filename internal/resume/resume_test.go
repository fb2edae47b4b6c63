// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package resume_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trim21/strv/internal/resume"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.dat")

	saved := map[string]resume.Position{
		"/var/log/app.log":    {Offset: 4096, EOL: '\r'},
		"/var/log/access.log": {Offset: 0, EOL: 0},
	}
	require.NoError(t, resume.Save(path, saved))

	loaded, err := resume.Load(path)
	require.NoError(t, err)
	require.Equal(t, saved, loaded)

	// no temp file left behind
	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	loaded, err := resume.Load(filepath.Join(t.TempDir(), "nope.dat"))
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestLoadCorrupted(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.dat")
	require.NoError(t, resume.Save(path, map[string]resume.Position{"a": {Offset: 1}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// flip one payload byte, the checksum must catch it
	raw[len(raw)/2]++
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err = resume.Load(path)
	require.Error(t, err)
}

func TestLoadGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.dat")
	require.NoError(t, os.WriteFile(path, []byte("not bencode"), 0o644))

	_, err := resume.Load(path)
	require.Error(t, err)
}

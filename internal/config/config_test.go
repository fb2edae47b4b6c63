// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-units"
	"github.com/stretchr/testify/require"

	"github.com/trim21/strv/internal/config"
)

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromFile(filepath.Join(t.TempDir(), "strv.toml"))
	require.NoError(t, err)

	require.Equal(t, "\t ", cfg.Input.Delims)
	require.Equal(t, config.Size(256*units.KiB), cfg.Input.Buffer)
	require.Equal(t, "text", cfg.Output.Format)
	require.Equal(t, "auto", cfg.Output.Color)
	require.Equal(t, 128, cfg.Run.OpenFiles)
	require.Equal(t, 500*time.Millisecond, cfg.Follow.PollInterval.Std())
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "strv.toml")
	require.NoError(t, os.WriteFile(p, []byte(`
[input]
delims = ","
buffer = "1MiB"

[output]
format = "json"

[follow]
poll-interval = "2s"
expire = "1h"
`), 0o644))

	cfg, err := config.LoadFromFile(p)
	require.NoError(t, err)

	require.Equal(t, ",", cfg.Input.Delims)
	require.Equal(t, config.Size(units.MiB), cfg.Input.Buffer)
	require.Equal(t, "json", cfg.Output.Format)
	require.Equal(t, 2*time.Second, cfg.Follow.PollInterval.Std())
	require.Equal(t, time.Hour, cfg.Follow.Expire.Std())

	// keys not present keep their defaults
	require.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]string{
		"bad toml":   `delims = `,
		"bad size":   "[input]\nbuffer = \"lots\"",
		"bad format": "[output]\nformat = \"xml\"",
		"bad color":  "[output]\ncolor = \"sometimes\"",
	} {
		p := filepath.Join(t.TempDir(), "strv.toml")
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

		_, err := config.LoadFromFile(p)
		require.Error(t, err, name)
	}
}

// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package config

import (
	"os"
	"reflect"
	"time"

	"github.com/docker/go-units"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/trim21/errgo"
)

// Size is a byte count that decodes from human readable notation, "256KiB" or "1m".
type Size int64

func (s *Size) UnmarshalText(b []byte) error {
	n, err := units.RAMInBytes(string(b))
	if err != nil {
		return errgo.Wrap(err, "parse size")
	}

	*s = Size(n)

	return nil
}

// Duration decodes from time.ParseDuration notation, "500ms" or "5m".
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return errgo.Wrap(err, "parse duration")
	}

	*d = Duration(v)

	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Input struct {
	Delims    string `toml:"delims"`
	NoCase    bool   `toml:"nocase"`
	Recursive bool   `toml:"recursive"`
	Buffer    Size   `toml:"buffer" validate:"gt=0"`
}

type Output struct {
	Delim     string `toml:"delim"`
	Format    string `toml:"format" validate:"oneof=text json"`
	Color     string `toml:"color" validate:"oneof=auto always never"`
	MaxWidth  string `toml:"max-width"`
	RateLimit Size   `toml:"rate-limit" validate:"gte=0"`
}

type Run struct {
	Workers   int      `toml:"workers" validate:"gte=0"`
	OpenFiles int      `toml:"open-files" validate:"gt=0"`
	Dedup     int      `toml:"dedup" validate:"gte=0"`
	DedupTTL  Duration `toml:"dedup-ttl"`
}

type Follow struct {
	PollInterval Duration `toml:"poll-interval"`
	Expire       Duration `toml:"expire"`
	Web          string   `toml:"web"`
}

type Config struct {
	Input  Input  `toml:"input"`
	Output Output `toml:"output"`
	Run    Run    `toml:"run"`
	Follow Follow `toml:"follow"`
}

func LoadFromFile(path string) (Config, error) {
	var cfg = Config{
		Input: Input{
			Delims: "\t ",
			Buffer: Size(256 * units.KiB),
		},
		Output: Output{
			Format: "text",
			Color:  "auto",
		},
		Run: Run{
			OpenFiles: 128,
			DedupTTL:  Duration(time.Minute),
		},
		Follow: Follow{
			PollInterval: Duration(500 * time.Millisecond),
			Expire:       Duration(5 * time.Minute),
		},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, errgo.Wrap(err, "read config file")
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errgo.Wrap(err, "decode config file")
	}

	if err := validate.Struct(cfg); err != nil {
		return cfg, errgo.Wrap(err, "validate config")
	}

	return cfg, nil
}

var validate = func() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("toml")
	})

	return v
}()

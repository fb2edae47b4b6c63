// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Command strv is a zero-copy field and line extraction tool, cut and
// tail -f shaped, built on the strv view library.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/docker/go-units"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/trim21/strv/internal/config"
	"github.com/trim21/strv/internal/core"
	"github.com/trim21/strv/internal/pkg/gslice"
	"github.com/trim21/strv/internal/pkg/sys"
	"github.com/trim21/strv/internal/version"
	"github.com/trim21/strv/internal/web"
)

func main() {
	setupFlagsAndEnvParser()

	if viper.GetBool("version") {
		fmt.Println(version.Print())
		return
	}

	debug := viper.GetBool("debug")
	if debug {
		_, _ = fmt.Fprintln(os.Stderr, "enable debug mode")
	}

	setupLogger()

	if sys.IsLinux {
		if _, err := maxprocs.Set(); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "Failed to set GOMAXPROCS automatically.")
			_, _ = fmt.Fprintln(os.Stderr, "Consider to set env manually if you are running with cgroup.")
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	cfg := mustParseConfig()

	// "-" is the conventional spelling for stdin, which is what the
	// engine reads when no inputs are left
	inputs := gslice.Remove(pflag.Args(), "-")

	app, err := core.New(cfg, core.Options{
		Inputs: inputs,
		Fields: viper.GetString("fields"),
		Match:  viper.GetString("match"),
		Trim:   viper.GetString("trim"),
		Resume: viper.GetString("resume"),
		Follow: viper.GetBool("follow"),
	})
	if err != nil {
		errExit("invalid arguments:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer stop()

	if address := cfg.Follow.Web; address != "" {
		go func() {
			server := web.New(app, debug)
			log.Info().Msgf("status endpoint on http://%s", address)
			if err := http.ListenAndServe(address, server); err != nil {
				_, _ = fmt.Fprintln(os.Stderr, err)
			}
		}()
	}

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		errExit("run failed:", err)
	}

	app.LogSummary()
}

func setupFlagsAndEnvParser() {
	pflag.String("config-file", "", "path to config file (default none)")

	pflag.String("delims", "\t ", "input field delimiter set, any one byte of it splits")
	pflag.String("out-delim", "", "output field delimiter (default tab)")
	pflag.StringP("fields", "f", "", `field selection such as "1,3,5-9" (default whole lines)`)
	pflag.String("trim", "", "cutset trimmed from both ends of every output field")
	pflag.StringP("match", "m", "", "only emit lines containing this text")
	pflag.BoolP("nocase", "i", false, "case-insensitive matching and delimiter membership")

	pflag.String("format", "text", "output format, text or json")
	pflag.String("color", "auto", "highlight output fields, auto/always/never")
	pflag.String("max-width", "", `truncate each output field to N bytes, or "auto" for the terminal width`)
	pflag.String("rate-limit", "", `limit output throughput, e.g. "1MiB"`)

	pflag.BoolP("recursive", "r", false, "descend into directory arguments")
	pflag.Int("workers", 0, "parallel scan workers (default GOMAXPROCS)")
	pflag.String("buffer", "", `scan buffer size per worker, e.g. "256KiB"`)
	pflag.Int("dedup", 0, "suppress repeated lines, keeping this many recent ones")
	pflag.Duration("dedup-ttl", 0, "how long a seen line suppresses repeats")

	pflag.Bool("follow", false, "keep watching the inputs for appended lines")
	pflag.Duration("poll-interval", 0, "follow mode poll interval")
	pflag.Duration("expire", 0, "stop following files unseen for this long")
	pflag.String("resume", "", "follow mode positions file, restored at start and saved at exit")
	pflag.String("web", "", "serve /metrics and /status on this address in follow mode")

	pflag.Bool("log-json", false, "log as json format")
	pflag.String("log-level", "error", "log level")
	pflag.Bool("debug", false, "enable debug mode")
	pflag.BoolP("version", "V", false, "print version and exit")

	// this avoids 'pflag: help requested' error when calling for help message.
	if slices.Contains(os.Args[1:], "--help") || slices.Contains(os.Args[1:], "-h") {
		pflag.Usage()
		_, _ = fmt.Fprintln(os.Stderr, "\nNote: command arguments will override config file, but won't change config file.")
		os.Exit(0)
		return
	}

	pflag.Parse()

	viper.SetEnvPrefix("STRV")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	lo.Must0(viper.BindPFlags(pflag.CommandLine), "failed to parse combine argument with env")
}

func errExit(msg ...any) {
	_, _ = fmt.Fprintln(os.Stderr, msg...)
	os.Exit(1)
}

func parseLogLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}

	errExit(fmt.Sprintf("unknown log level %q, only trace/debug/info/warn/error is allowed", s))

	return zerolog.NoLevel
}

// setupLogger logs to stderr, so logs never interleave with extracted
// lines on stdout.
func setupLogger() {
	jsonLog := viper.GetBool("log-json")
	logLevel := parseLogLevel(viper.GetString("log-level"))

	if jsonLog {
		log.Logger = log.Output(os.Stderr).Level(logLevel)
		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(logLevel)
}

// mustParseConfig loads the config file, then lets explicitly set
// flags win over it.
func mustParseConfig() config.Config {
	cfg, err := config.LoadFromFile(viper.GetString("config-file"))
	if err != nil {
		errExit("failed to load config", err)
	}

	changed := pflag.CommandLine.Changed

	if changed("delims") {
		cfg.Input.Delims = viper.GetString("delims")
	}
	if changed("nocase") {
		cfg.Input.NoCase = viper.GetBool("nocase")
	}
	if changed("recursive") {
		cfg.Input.Recursive = viper.GetBool("recursive")
	}
	if changed("buffer") {
		cfg.Input.Buffer = config.Size(lo.Must(units.RAMInBytes(viper.GetString("buffer"))))
	}

	if changed("out-delim") {
		cfg.Output.Delim = viper.GetString("out-delim")
	}
	if changed("format") {
		cfg.Output.Format = viper.GetString("format")
	}
	if changed("color") {
		cfg.Output.Color = viper.GetString("color")
	}
	if changed("max-width") {
		cfg.Output.MaxWidth = viper.GetString("max-width")
	}
	if changed("rate-limit") {
		cfg.Output.RateLimit = config.Size(lo.Must(units.RAMInBytes(viper.GetString("rate-limit"))))
	}

	if changed("workers") {
		cfg.Run.Workers = viper.GetInt("workers")
	}
	if changed("dedup") {
		cfg.Run.Dedup = viper.GetInt("dedup")
	}
	if changed("dedup-ttl") {
		cfg.Run.DedupTTL = config.Duration(viper.GetDuration("dedup-ttl"))
	}

	if changed("poll-interval") {
		cfg.Follow.PollInterval = config.Duration(viper.GetDuration("poll-interval"))
	}
	if changed("expire") {
		cfg.Follow.Expire = config.Duration(viper.GetDuration("expire"))
	}
	if changed("web") {
		cfg.Follow.Web = viper.GetString("web")
	}

	return cfg
}

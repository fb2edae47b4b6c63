// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package web

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/trace"

	"github.com/trim21/strv/internal/core"
	"github.com/trim21/strv/internal/pkg/global"
	"github.com/trim21/strv/internal/version"
	"github.com/trim21/strv/internal/web/res"
)

// New builds the status handler served when --web is set.
func New(c *core.Engine, enableDebug bool) http.Handler {
	r := chi.NewMux()
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Server", global.UserAgent)
			next.ServeHTTP(w, r)
		})
	})

	r.Handle("GET /metrics", promhttp.Handler())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		res.Text(w, http.StatusOK, ".")
	})

	r.With(middleware.NoCache).Get("/status", func(w http.ResponseWriter, r *http.Request) {
		res.JSON(w, http.StatusOK, c.Stats())
	})

	if enableDebug || global.Dev {
		info, ok := debug.ReadBuildInfo()
		if ok {
			s := []byte(version.FormatBuildInfo(info))

			r.Get("/debug/version", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("content-type", "text/plain")
				w.WriteHeader(http.StatusOK)
				_, _ = fmt.Fprintln(w, version.Print())
				_, _ = fmt.Fprintln(w)
				_, _ = w.Write(s)
			})
		} else {
			r.Get("/debug/version", func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprintln(w, version.Print())
			})
		}

		r.HandleFunc("/debug/events", trace.Events)

		r.Mount("/debug", middleware.Profiler())
	}

	return r
}

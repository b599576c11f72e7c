// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cosnicolaou/tzshim/internal/harness"
	"github.com/cosnicolaou/tzshim/internal/logging"
	"github.com/cosnicolaou/tzshim/internal/selftest"
)

type SelftestRunFlags struct {
	LogFile    string `subcmd:"log-file,,log file to write JSON records of every check to"`
	Concurrent bool   `subcmd:"concurrent,true,run the suites concurrently"`
	Quiet      bool   `subcmd:"quiet,false,only display failed checks and the final summary"`
}

type SelftestListFlags struct{}

type Selftest struct {
	out io.Writer
}

func newLogfile(logfile string) (*os.File, error) {
	return os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
}

func (s *Selftest) setupLogging(logfile string) (*slog.Logger, func(), error) {
	if len(logfile) == 0 {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})), func() {}, nil
	}
	f, err := newLogfile(logfile)
	if err != nil {
		return nil, func() {}, err
	}
	l := slog.New(slog.NewJSONHandler(f, nil))
	return l, func() { f.Close() }, nil
}

func (s *Selftest) Run(ctx context.Context, flags any, args []string) error {
	fv := flags.(*SelftestRunFlags)
	suites, ok := selftest.Lookup(args...)
	if !ok {
		return fmt.Errorf("unknown suite in: %v, available suites: %v", strings.Join(args, ", "), strings.Join(suiteNames(), ", "))
	}
	logger, cleanup, err := s.setupLogging(fv.LogFile)
	if err != nil {
		return err
	}
	defer cleanup()
	ctx = logging.ContextWithLogger(ctx, logger)

	out := s.out
	if fv.Quiet {
		out = io.Discard
	}
	report, err := harness.Run(ctx, suites,
		harness.WithOutput(out),
		harness.WithConcurrency(fv.Concurrent))
	if err != nil {
		return err
	}
	if fv.Quiet {
		for _, sum := range report.Suites {
			for _, f := range sum.Failures() {
				fmt.Fprintf(s.out, "%v/%v #%v: %v: expected: %v, got: %v\n", sum.Suite, f.Group, f.Index, f.Name, f.Want, f.Got)
			}
			if sum.Err != nil {
				fmt.Fprintf(s.out, "%v: %v\n", sum.Suite, sum.Err)
			}
		}
		fmt.Fprintf(s.out, "Gran total pass: %d/%d\n", report.Passed, report.Total)
	}
	if !report.OK() {
		return fmt.Errorf("selftest failed: %v/%v checks passed", report.Passed, report.Total)
	}
	return nil
}

func suiteNames() []string {
	var names []string
	for _, s := range selftest.Suites() {
		names = append(names, s.Name)
	}
	return names
}

func (s *Selftest) List(_ context.Context, _ any, _ []string) error {
	for _, n := range suiteNames() {
		fmt.Fprintln(s.out, n)
	}
	return nil
}

// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package harness provides a minimal check runner that compares the
// string form of a computed value against an expected value and keeps
// per-suite pass/fail counts.
package harness

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"cloudeng.io/sync/errgroup"
	"github.com/cosnicolaou/tzshim/internal/logging"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Suite is a named set of checks.
type Suite struct {
	Name string
	Run  func(h *H) error
}

// Result is the outcome of a single check.
type Result struct {
	Group string
	Index int
	Name  string
	Got   string
	Want  string
	Pass  bool
}

// H is passed to a Suite's Run function and accumulates the results of
// its checks. An H must not be shared across goroutines.
type H struct {
	suite   string
	id      int64
	group   string
	index   int
	results []Result
	out     io.Writer
	logger  *slog.Logger
}

// Group starts a new group of checks, the index of each check is
// relative to the start of its group.
func (h *H) Group(name string) {
	h.printGroupTotal()
	h.group = name
	h.index = 0
	fmt.Fprintf(h.out, "--- %s ---\n", name)
}

func (h *H) printGroupTotal() {
	if h.index == 0 {
		return
	}
	passed := 0
	for _, r := range h.results {
		if r.Group == h.group && r.Pass {
			passed++
		}
	}
	fmt.Fprintf(h.out, "Total pass: %d/%d\n", passed, h.index)
}

// Check compares the string forms of got and want as rendered by
// fmt.Sprint and reports whether they are identical.
func (h *H) Check(name string, got, want any) bool {
	gs, ws := fmt.Sprint(got), fmt.Sprint(want)
	r := Result{
		Group: h.group,
		Index: h.index,
		Name:  name,
		Got:   gs,
		Want:  ws,
		Pass:  gs == ws,
	}
	h.results = append(h.results, r)
	h.index++
	if r.Pass {
		fmt.Fprintf(h.out, "#%d: %s: %s (pass)\n", r.Index, name, gs)
	} else {
		fmt.Fprintf(h.out, "#%d: %s: fail:\n  expected: %s\n  got: %s\n", r.Index, name, ws, gs)
	}
	logging.WriteCheck(h.logger, h.id, h.suite, h.group, r.Index, name, gs, ws, r.Pass)
	return r.Pass
}

// Checkf is like Check for operations that may fail, a non-nil err is
// recorded as the value obtained.
func (h *H) Checkf(name string, got any, err error, want any) bool {
	if err != nil {
		return h.Check(name, err, want)
	}
	return h.Check(name, got, want)
}

// Print writes the supplied values to the suite's output, it is used for
// the worked examples which display values rather than checking them.
func (h *H) Print(a ...any) {
	fmt.Fprintln(h.out, a...)
}

// Summary is the outcome of running a single Suite.
type Summary struct {
	Suite   string
	Passed  int
	Total   int
	Results []Result
	Elapsed time.Duration
	Err     error
}

// Failures returns the results of the failed checks.
func (s Summary) Failures() []Result {
	var f []Result
	for _, r := range s.Results {
		if !r.Pass {
			f = append(f, r)
		}
	}
	return f
}

// OK returns true if every check passed and the suite ran to completion.
func (s Summary) OK() bool {
	return s.Err == nil && s.Passed == s.Total
}

// Report is the outcome of running a set of suites, in the order in
// which they were supplied.
type Report struct {
	Suites []Summary
	Passed int
	Total  int
}

func (r Report) OK() bool {
	for _, s := range r.Suites {
		if !s.OK() {
			return false
		}
	}
	return true
}

type options struct {
	out        io.Writer
	concurrent bool
}

type Option func(*options)

// WithOutput sets the writer to which the per-check output is written,
// the output of each suite is written as a unit.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithConcurrency runs the suites concurrently.
func WithConcurrency(v bool) Option {
	return func(o *options) {
		o.concurrent = v
	}
}

// Run runs the supplied suites and returns a Report of their outcomes.
// The logger is obtained from ctx. The returned error is non-nil only if
// ctx is canceled, errors returned by individual suites are recorded in
// their Summary.
func Run(ctx context.Context, suites []Suite, opts ...Option) (Report, error) {
	o := options{out: io.Discard}
	for _, fn := range opts {
		fn(&o)
	}
	logger := logging.LoggerFromContext(ctx)
	summaries := make([]Summary, len(suites))
	outputs := make([]bytes.Buffer, len(suites))

	var g errgroup.T
	for i, s := range suites {
		run := func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			summaries[i] = runSuite(logger, &outputs[i], s)
			return nil
		}
		if o.concurrent {
			g.Go(run)
			continue
		}
		if err := run(); err != nil {
			return Report{}, err
		}
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Suites: summaries}
	for i, s := range summaries {
		if _, err := o.out.Write(outputs[i].Bytes()); err != nil {
			return Report{}, err
		}
		report.Passed += s.Passed
		report.Total += s.Total
	}
	fmt.Fprintf(o.out, "Gran total pass: %d/%d\n", report.Passed, report.Total)
	return report, nil
}

func runSuite(logger *slog.Logger, out io.Writer, s Suite) Summary {
	h := &H{
		suite:  s.Name,
		out:    out,
		logger: logger,
	}
	fmt.Fprintf(out, "=== %s ===\n", cases.Title(language.English).String(s.Name))
	started := time.Now()
	h.id = logging.WriteSuiteStart(logger, s.Name)
	err := s.Run(h)
	h.printGroupTotal()
	if err != nil {
		fmt.Fprintf(out, "Something bad happened: %v\n", err)
	}
	sum := Summary{
		Suite:   s.Name,
		Results: h.results,
		Elapsed: time.Since(started),
		Err:     err,
	}
	sum.Total = len(h.results)
	for _, r := range h.results {
		if r.Pass {
			sum.Passed++
		}
	}
	logging.WriteSuiteDone(logger, h.id, s.Name, sum.Passed, sum.Total, started, sum.Elapsed, err)
	return sum
}

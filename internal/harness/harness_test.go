// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package harness_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cosnicolaou/tzshim/internal/harness"
	"github.com/cosnicolaou/tzshim/internal/logging"
	"github.com/cosnicolaou/tzshim/internal/testutil"
)

func suites() []harness.Suite {
	return []harness.Suite{
		{Name: "ok", Run: func(h *harness.H) error {
			h.Group("numbers")
			h.Check("one", 1, "1")
			h.Check("two", 2.0, 2)
			h.Group("strings: example #1")
			h.Check("abc", "abc", "abc")
			return nil
		}},
		{Name: "mixed", Run: func(h *harness.H) error {
			h.Group("mixed")
			h.Check("good", true, true)
			h.Check("bad", 1, 2)
			h.Checkf("err", 0, errors.New("oops"), "oops")
			return nil
		}},
		{Name: "abandoned", Run: func(h *harness.H) error {
			h.Group("abandoned")
			h.Check("first", 1, 1)
			return errors.New("stopped early")
		}},
	}
}

func TestRun(t *testing.T) {
	for _, concurrent := range []bool{false, true} {
		rec := &testutil.Recorder{}
		ctx := logging.ContextWithLogger(context.Background(), rec.Logger())
		var out strings.Builder
		report, err := harness.Run(ctx, suites(),
			harness.WithOutput(&out), harness.WithConcurrency(concurrent))
		if err != nil {
			t.Fatal(err)
		}
		if report.OK() {
			t.Errorf("report should not be OK")
		}
		if got, want := report.Passed, 6; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := report.Total, 7; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		ok, mixed, abandoned := report.Suites[0], report.Suites[1], report.Suites[2]
		if !ok.OK() || mixed.OK() || abandoned.OK() {
			t.Errorf("unexpected suite outcomes: %v %v %v", ok.OK(), mixed.OK(), abandoned.OK())
		}
		failures := mixed.Failures()
		if got, want := len(failures), 1; got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
		if got, want := failures[0].Name, "bad"; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := failures[0].Index, 1; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := abandoned.Err.Error(), "stopped early"; got != want {
			t.Errorf("got %v, want %v", got, want)
		}

		output := out.String()
		for _, line := range []string{
			"=== Ok ===",
			"--- numbers ---",
			"--- strings: example #1 ---",
			"#1: two: 2 (pass)",
			"Total pass: 2/2",
			"#1: bad: fail:\n  expected: 2\n  got: 1",
			"#2: err: oops (pass)",
			"Something bad happened: stopped early",
			"Gran total pass: 6/7",
		} {
			if !strings.Contains(output, line) {
				t.Errorf("output missing %q:\n%s", line, output)
			}
		}
		// Suite output is written in the order the suites were supplied.
		if strings.Index(output, "=== Ok ===") > strings.Index(output, "=== Mixed ===") {
			t.Errorf("suite output is out of order:\n%s", output)
		}

		counts := map[string]int{}
		for _, l := range rec.Lines() {
			le, err := logging.ParseLogLine(l)
			if err != nil {
				t.Fatal(err)
			}
			counts[le.Msg]++
		}
		for msg, want := range map[string]int{
			logging.LogSuite:  3,
			logging.LogPass:   6,
			logging.LogFail:   1,
			logging.LogDone:   2,
			logging.LogFailed: 1,
		} {
			if got := counts[msg]; got != want {
				t.Errorf("%v: got %v, want %v", msg, got, want)
			}
		}
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := harness.Run(ctx, suites()); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want %v", err, context.Canceled)
	}
}

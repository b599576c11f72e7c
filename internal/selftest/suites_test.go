// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package selftest_test

import (
	"context"
	"strings"
	"testing"

	"github.com/cosnicolaou/tzshim/internal/harness"
	"github.com/cosnicolaou/tzshim/internal/selftest"
)

func TestSuites(t *testing.T) {
	ctx := context.Background()
	var out strings.Builder
	report, err := harness.Run(ctx, selftest.Suites(), harness.WithOutput(&out), harness.WithConcurrency(true))
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range report.Suites {
		if s.Err != nil {
			t.Errorf("%v: %v", s.Suite, s.Err)
		}
		for _, f := range s.Failures() {
			t.Errorf("%v/%v #%v %v: got %v, want %v", s.Suite, f.Group, f.Index, f.Name, f.Got, f.Want)
		}
	}
	if got, want := report.Total, 73; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !report.OK() {
		t.Log(out.String())
	}
	if !strings.Contains(out.String(), "max: 999999999d 23:59:59") {
		t.Errorf("missing example output:\n%s", out.String())
	}
}

func TestLookup(t *testing.T) {
	all, ok := selftest.Lookup()
	if !ok || len(all) != 3 {
		t.Errorf("got %v %v", len(all), ok)
	}
	some, ok := selftest.Lookup("datetime", "timedelta")
	if !ok || len(some) != 2 || some[0].Name != "datetime" {
		t.Errorf("got %v %v", some, ok)
	}
	if _, ok := selftest.Lookup("nonesuch"); ok {
		t.Errorf("expected lookup to fail")
	}
}

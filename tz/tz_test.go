// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tz_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/tzshim/duration"
	"github.com/cosnicolaou/tzshim/tz"
)

func wall(year, month, day, hour int) tz.Wall {
	return tz.WallFromTime(time.Date(year, time.Month(month), day, hour, 0, 0, 0, time.UTC))
}

func TestOffset(t *testing.T) {
	for i, tc := range []struct {
		offset duration.Duration
		iso    string
	}{
		{0, "UTC"},
		{-duration.Hour, "UTC-01:00"},
		{duration.New(duration.Components{Hours: 4, Minutes: 30}), "UTC+04:30"},
		{duration.New(duration.Components{Hours: -9, Minutes: -30}), "UTC-09:30"},
		{duration.Seconds(30), "UTC+00:00"},
	} {
		o := tz.NewOffset(tc.offset)
		if got, want := o.ISOFormat(nil), tc.iso; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := o.String(), tc.iso; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := o.UTCOffset(wall(2010, 7, 1, 12)), tc.offset; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := o.DST(wall(2010, 7, 1, 12)), duration.Duration(0); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	named := tz.NewNamedOffset(duration.New(duration.Components{Hours: 5, Minutes: 30}), "IST")
	if got, want := named.String(), "IST"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := named.ISOFormat(nil), "UTC+05:30"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tz.UTC.String(), "UTC"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCET(t *testing.T) {
	cet := tz.CET{}
	if got, want := cet.String(), "CET"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cet.UTCOffset(nil).String(), "01:00:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if cet.IsDST(nil) {
		t.Errorf("nil wall should not be in DST")
	}
	for i, tc := range []struct {
		w      tz.Wall
		offset string
		name   string
		iso    string
	}{
		{wall(2010, 3, 27, 12), "01:00:00", "CET", "UTC+01:00"},
		{wall(2010, 3, 28, 12), "02:00:00", "CEST", "UTC+02:00"},
		{wall(2010, 10, 30, 12), "02:00:00", "CEST", "UTC+02:00"},
		{wall(2010, 10, 31, 12), "01:00:00", "CET", "UTC+01:00"},
		{wall(2011, 1, 1, 0), "01:00:00", "CET", "UTC+01:00"},
		{wall(2011, 8, 1, 0), "02:00:00", "CEST", "UTC+02:00"},
		{wall(2010, 3, 28, 2), "01:00:00", "CET", "UTC+01:00"},
		{wall(2010, 3, 28, 3), "02:00:00", "CEST", "UTC+02:00"},
		{wall(2010, 10, 31, 2), "02:00:00", "CEST", "UTC+02:00"},
		{wall(2010, 10, 31, 3), "01:00:00", "CET", "UTC+01:00"},
		{wall(2010, 4, 1, 0), "02:00:00", "CEST", "UTC+02:00"},
		{wall(2010, 9, 30, 23), "02:00:00", "CEST", "UTC+02:00"},
		{wall(2010, 11, 1, 0), "01:00:00", "CET", "UTC+01:00"},
		{wall(2010, 2, 28, 0), "01:00:00", "CET", "UTC+01:00"},
	} {
		if got, want := cet.UTCOffset(tc.w).String(), tc.offset; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := cet.TZName(tc.w), tc.name; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := cet.ISOFormat(tc.w), tc.iso; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := cet.UTCOffset(tc.w), duration.Hour.Add(cet.DST(tc.w)); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func lastSunday(year int, month time.Month) int {
	d := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, -1)
	}
	return d.Day()
}

func TestLastSunday(t *testing.T) {
	for year := 1901; year < 2100; year++ {
		if got, want := tz.LastSundayMarch(year), lastSunday(year, time.March); got != want {
			t.Errorf("%v: march: got %v, want %v", year, got, want)
		}
		if got, want := tz.LastSundayOctober(year), lastSunday(year, time.October); got != want {
			t.Errorf("%v: october: got %v, want %v", year, got, want)
		}
	}
}

func TestTransitions(t *testing.T) {
	for _, year := range []int{2010, 2024, 2025} {
		tr := tz.Transitions(tz.CET{}, year)
		if got, want := len(tr), 2; got != want {
			t.Fatalf("%v: got %v, want %v", year, got, want)
		}
		spring, fall := tr[0], tr[1]
		if got, want := spring.Date, datetime.NewCalendarDate(year, 3, tz.LastSundayMarch(year)); got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		if got, want := fall.Date, datetime.NewCalendarDate(year, 10, tz.LastSundayOctober(year)); got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		for _, x := range tr {
			if got, want := x.At, datetime.NewTimeOfDay(3, 0, 0); got != want {
				t.Errorf("%v: got %v, want %v", year, got, want)
			}
		}
		if !spring.ToDST() || fall.ToDST() {
			t.Errorf("%v: wrong transition directions: %v, %v", year, spring, fall)
		}
		if spring.BeforeName != "CET" || spring.AfterName != "CEST" {
			t.Errorf("%v: %v", year, spring)
		}
		if got, want := spring.After.Sub(spring.Before), duration.Hour; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
	if got := tz.Transitions(tz.UTC, 2010); len(got) != 0 {
		t.Errorf("unexpected transitions: %v", got)
	}
}

func TestLocation(t *testing.T) {
	loc := tz.Location(tz.CET{}, wall(2010, 7, 1, 12))
	when := time.Date(2010, 7, 1, 12, 0, 0, 0, loc)
	if got, want := when.Format("-07:00 MST"), "+02:00 CEST"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

const zonesConfig = `
zones:
  - name: cet
    type: cet
  - name: India
    offset: "05:30:00"
    label: IST
  - name: azores
    offset: -1h
`

func TestConfig(t *testing.T) {
	ctx := context.Background()
	zones, err := tz.ParseConfig(ctx, []byte(zonesConfig))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := strings.Join(zones.Names(), ","), "azores,cet,india,utc"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i, tc := range []struct {
		name string
		str  string
	}{
		{"india", "IST"},
		{"INDIA", "IST"},
		{"azores", "UTC-01:00"},
		{"cet", "CET"},
		{"utc", "UTC"},
	} {
		zone, ok := zones.Lookup(tc.name)
		if !ok {
			t.Errorf("%v: %v not found", i, tc.name)
			continue
		}
		if got, want := zone.String(), tc.str; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if _, ok := zones.Lookup("nowhere"); ok {
		t.Errorf("unexpected zone")
	}
}

func TestConfigErrors(t *testing.T) {
	ctx := context.Background()
	_, err := tz.ParseConfig(ctx, []byte(`
zones:
  - name: a
  - name: b
    type: lunar
  - name: d
    offset: 25h
  - name: d
    offset: 1h
  - name: d
    offset: 2h
  - name: e
    type: cet
    offset: 1h
`))
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, msg := range []string{
		"fixed zones require an offset",
		"unsupported type: lunar",
		"is not less than one day",
		"duplicate zone name: d",
		"do not accept an offset",
	} {
		if !strings.Contains(err.Error(), msg) {
			t.Errorf("%q does not contain %q", err, msg)
		}
	}
}

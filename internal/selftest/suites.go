// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package selftest contains the worked examples for the duration, tz and
// timestamp packages expressed as harness suites.
package selftest

import (
	"github.com/cosnicolaou/tzshim/duration"
	"github.com/cosnicolaou/tzshim/internal/harness"
	"github.com/cosnicolaou/tzshim/timestamp"
	"github.com/cosnicolaou/tzshim/tz"
)

// Suites returns all of the available suites.
func Suites() []harness.Suite {
	return []harness.Suite{
		{Name: "timedelta", Run: Timedelta},
		{Name: "timezone", Run: Timezone},
		{Name: "datetime", Run: Datetime},
	}
}

// Lookup returns the named suites, or all suites if no names are given.
func Lookup(names ...string) ([]harness.Suite, bool) {
	all := Suites()
	if len(names) == 0 {
		return all, true
	}
	var selected []harness.Suite
	for _, n := range names {
		found := false
		for _, s := range all {
			if s.Name == n {
				selected = append(selected, s)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return selected, true
}

type dc = duration.Components

func Timedelta(h *harness.H) error {
	h.Group("timedelta")

	td1 := duration.New(dc{Hours: 5, Minutes: 4, Seconds: 3, Days: 2, Weeks: 1})
	h.Check("New()", td1, "9d 05:04:03")
	h.Check("TotalSeconds()", td1.TotalSeconds(), 795843)

	td1 = duration.New(dc{Minutes: 1}).Add(duration.New(dc{Seconds: 7}))
	h.Check("Add(Duration)", td1.TotalSeconds(), 67)
	td2 := td1.Add(duration.New(dc{Minutes: 1}))
	h.Check("Add(Duration)", td2.TotalSeconds(), 127)

	td1 = td1.Sub(duration.New(dc{Seconds: 33}))
	h.Check("Sub(Duration)", td1.TotalSeconds(), 34)
	td2 = td1.Sub(duration.New(dc{Seconds: 1}))
	h.Check("Sub(Duration)", td2.TotalSeconds(), 33)

	td1, err := td1.Mul(1.5)
	h.Checkf("Mul(float)", td1.TotalSeconds(), err, 51)
	half, err := td1.Mul(0.5)
	h.Checkf("Mul(float)", half.TotalSeconds(), err, 26)
	td2, err = td1.Mul(2)
	h.Checkf("Mul(int)", td2.TotalSeconds(), err, 102)

	ratio, err := td2.TrueDiv(td1)
	h.Checkf("TrueDiv(Duration)", ratio, err, 2)
	d, err := td1.TrueDivScalar(2)
	h.Checkf("TrueDivScalar(int)", d.TotalSeconds(), err, 26)
	d, err = td2.TrueDivScalar(1.1)
	h.Checkf("TrueDivScalar(float)", d.TotalSeconds(), err, 93)
	d, err = td2.TrueDivScalar(2.4)
	h.Checkf("TrueDivScalar(float)", d.TotalSeconds(), err, 42)

	q, err := td2.FloorDiv(td1)
	h.Checkf("FloorDiv(Duration)", q, err, 2)
	d, err = td1.FloorDivScalar(2)
	h.Checkf("FloorDivScalar(int)", d, err, "00:00:25")

	td1 = td1.Sub(duration.New(dc{Seconds: 10}))
	m, err := td2.Mod(td1)
	h.Checkf("Mod(Duration)", m.TotalSeconds(), err, 20)

	q, r, err := td2.DivMod(td1)
	h.Checkf("DivMod(Duration).q", q, err, 2)
	h.Checkf("DivMod(Duration).r", r.TotalSeconds(), err, 20)

	h.Check("Neg()", td1.Neg().TotalSeconds(), -41)
	h.Check("Abs()", td1.Abs().TotalSeconds(), 41)

	h.Check("Eq()", td2.Eq(td1), false)
	h.Check("Le()", td2.Le(td1), false)
	h.Check("Lt()", td2.Lt(td1), false)
	h.Check("Ge()", td2.Ge(td1), true)
	h.Check("Gt()", td2.Gt(td1), true)
	h.Check("Bool()", td2.Bool(), true)

	_, err = td2.TrueDiv(0)
	h.Check("TrueDiv(0)", err, "duration: truediv: division by zero")

	h.Group("timedelta: example #1")
	// The components of another add up to exactly 365 days.
	year := duration.New(dc{Days: 365})
	another := duration.New(dc{Weeks: 40, Days: 84, Hours: 23, Minutes: 50, Seconds: 600})
	h.Check("Eq()", year.Eq(another), true)
	h.Check("TotalSeconds()", year.TotalSeconds(), 31536000)

	h.Group("timedelta: example #2")
	h.Print("min:", duration.Min)
	h.Print("max:", duration.Max)
	h.Print("res:", duration.Resolution)
	tenYears, err := year.Mul(10)
	h.Checkf("Mul(10)", tenYears, err, "3650d 00:00:00")
	nineYears := tenYears.Sub(year)
	h.Check("Sub()", nineYears, "3285d 00:00:00")
	threeYears, err := nineYears.FloorDivScalar(3)
	h.Checkf("FloorDivScalar(3)", threeYears, err, "1095d 00:00:00")
	return nil
}

func Timezone(h *harness.H) error {
	h.Group("timezone")

	tz1 := tz.NewOffset(duration.New(dc{Hours: -1}))
	h.Check("NewOffset()", tz1, "UTC-01:00")

	cet := tz.CET{}
	h.Check("CET{}", cet, "CET")
	h.Check("UTCOffset(nil)", cet.UTCOffset(nil), "01:00:00")
	for _, tc := range []struct {
		name  string
		month int
		day   int
		want  string
	}{
		{"UTCOffset( 3-27)", 3, 27, "01:00:00"},
		{"UTCOffset( 3-28)", 3, 28, "02:00:00"},
		{"UTCOffset(10-30)", 10, 30, "02:00:00"},
		{"UTCOffset(10-31)", 10, 31, "01:00:00"},
	} {
		ts, err := timestamp.New(2010, tc.month, tc.day, 12, 0, 0, nil)
		if err != nil {
			return err
		}
		h.Check(tc.name, cet.UTCOffset(ts), tc.want)
	}

	h.Group("timezone: example CET")
	winter, err := timestamp.New(2011, 1, 1, 0, 0, 0, nil)
	if err != nil {
		return err
	}
	summer, err := timestamp.New(2011, 8, 1, 0, 0, 0, nil)
	if err != nil {
		return err
	}
	h.Check("ISOFormat(winter)", cet.ISOFormat(winter), "UTC+01:00")
	h.Check("TZName(winter)", cet.TZName(winter), "CET")
	h.Check("ISOFormat(summer)", cet.ISOFormat(summer), "UTC+02:00")
	h.Check("TZName(summer)", cet.TZName(summer), "CEST")
	return nil
}

func Datetime(h *harness.H) error {
	h.Group("datetime")

	tz1 := tz.NewOffset(duration.New(dc{Hours: -1}))
	dt1, err := timestamp.New(1975, 8, 10, 0, 30, 0, tz1)
	if err != nil {
		return err
	}
	h.Check("New()", dt1, "1975-08-10 00:30:00-01:00")
	h.Check("Date()", dt1.Date(), "1975-08-10 00:00:00-01:00")
	h.Check("Time()", dt1.Time().ISOFormat(), "00:30:00")
	utc, err := dt1.AsTimezone(tz.UTC)
	h.Checkf("AsTimezone()", utc, err, "1975-08-10 01:30:00+00:00")

	date, err := timestamp.New(1980, 8, 13, 0, 0, 0, nil)
	if err != nil {
		return err
	}
	combined, err := timestamp.Combine(date, duration.New(dc{Hours: 8, Minutes: 20}), nil)
	h.Checkf("Combine()", combined, err, "1980-08-13 08:20:00")
	h.Check("ToOrdinal()", dt1.ToOrdinal(), 721210)
	fo, err := timestamp.FromOrdinal(1234567)
	h.Checkf("FromOrdinal()", fo, err, "3381-02-16 00:00:00")

	for _, tc := range []struct {
		name string
		in   string
		want string
	}{
		{"FromISOFormat(Y-M-D)", "1975-08-10", "1975-08-10 00:00:00"},
		{"FromISOFormat(Y-M-D h)", "1975-08-10 23", "1975-08-10 23:00:00"},
		{"FromISOFormat(Y-M-D h:m)", "1975-08-10 23:30", "1975-08-10 23:30:00"},
		{"FromISOFormat(Y-M-D h:m:s)", "1975-08-10 23:30:12", "1975-08-10 23:30:12"},
		{"FromISOFormat(Y-M-D h:m:s+h:m)", "1975-08-10 23:30:12+01:00", "1975-08-10 23:30:12+01:00"},
	} {
		ts, err := timestamp.FromISOFormat(tc.in)
		h.Checkf(tc.name, ts, err, tc.want)
	}

	five := duration.New(dc{Minutes: 5})
	later, err := dt1.Add(five)
	h.Checkf("Add()", later, err, "1975-08-10 00:35:00-01:00")
	earlier, err := dt1.Sub(five)
	h.Checkf("Sub()", earlier, err, "1975-08-10 00:25:00-01:00")

	dt2, err := timestamp.New(1975, 8, 10, 0, 30, 0, tz.CET{})
	if err != nil {
		return err
	}
	utc, err = dt2.AsTimezone(tz.UTC)
	h.Checkf("AsTimezone()", utc, err, "1975-08-09 22:30:00+00:00")
	h.Check("DateISOFormat()", dt2.DateISOFormat(), "1975-08-10")
	h.Check("TimeISOFormat()", dt2.TimeISOFormat(), "00:30:00")
	h.Check("Diff()", dt2.Diff(dt1).TotalSeconds(), -3*3600)
	h.Check("Diff()", dt1.Diff(dt2).TotalSeconds(), 3*3600)

	h.Check("Lt()", dt1.Lt(dt2), false)
	h.Check("Le()", dt1.Le(dt2), false)
	h.Check("Eq()", dt1.Eq(dt1), true)
	h.Check("Eq()", dt1.Eq(dt2), false)
	h.Check("Ge()", dt1.Ge(dt2), true)
	h.Check("Gt()", dt1.Gt(dt2), true)

	h.Group("datetime: example #1")
	ts, err := timestamp.New(2005, 7, 14, 12, 30, 0, nil)
	h.Checkf("New()", ts, err, "2005-07-14 12:30:00")
	dt, err := timestamp.FromISOFormat("2006-11-21 16:30+01:00")
	if err != nil {
		return err
	}
	later, err = dt.Add(duration.New(dc{Hours: 23}))
	h.Checkf("Add()", later, err, "2006-11-22 15:30:00+01:00")
	tz2 := tz.NewOffset(duration.New(dc{Hours: 4, Minutes: 30}))
	h.Check("NewOffset()", tz2, "UTC+04:30")
	dt, err = timestamp.New(1900, 11, 21, 3, 30, 0, tz2)
	if err != nil {
		return err
	}
	h.Check("New()", dt, "1900-11-21 03:30:00+04:30")
	utc, err = dt.AsTimezone(tz.UTC)
	h.Checkf("AsTimezone()", utc, err, "1900-11-20 23:00:00+00:00")
	return nil
}

// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package timestamp provides a calendar date and time of day, with an
// optional tz.Zone, whose arithmetic and comparison operations are
// exposed as named methods. Calendar calculations are delegated to the
// time package.
//
// A Timestamp without a zone is naive. Naive timestamps are compared to,
// subtracted from and converted as if they were in UTC.
package timestamp

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/tzshim/duration"
	"github.com/cosnicolaou/tzshim/tz"
)

// Timestamp is an immutable wall-clock date and time with one second
// resolution.
type Timestamp struct {
	wall time.Time // wall-clock fields, always in time.UTC.
	zone tz.Zone
}

// ConstructionError is returned when a Timestamp is created with out of
// range fields.
type ConstructionError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("timestamp: %v %v is out of range, must be in %v..%v", e.Field, e.Value, e.Min, e.Max)
}

const (
	MinYear = 1
	MaxYear = 9999
)

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func checkRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return &ConstructionError{Field: field, Value: value, Min: lo, Max: hi}
	}
	return nil
}

// New returns a Timestamp for the specified fields, zone may be nil
// to create a naive Timestamp.
func New(year, month, day, hour, minute, second int, zone tz.Zone) (Timestamp, error) {
	if err := checkRange("year", year, MinYear, MaxYear); err != nil {
		return Timestamp{}, err
	}
	if err := checkRange("month", month, 1, 12); err != nil {
		return Timestamp{}, err
	}
	for _, f := range []struct {
		name   string
		val    int
		lo, hi int
	}{
		{"day", day, 1, daysIn(year, month)},
		{"hour", hour, 0, 23},
		{"minute", minute, 0, 59},
		{"second", second, 0, 59},
	} {
		if err := checkRange(f.name, f.val, f.lo, f.hi); err != nil {
			return Timestamp{}, err
		}
	}
	return Timestamp{
		wall: time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC),
		zone: zone,
	}, nil
}

// FromTime returns a Timestamp with the wall-clock fields of t, ignoring
// t's location, truncated to the second.
func FromTime(t time.Time, zone tz.Zone) Timestamp {
	return Timestamp{
		wall: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC),
		zone: zone,
	}
}

// Fields implements tz.Wall.
func (t Timestamp) Fields() (year, month, day, hour, minute, second int) {
	return t.wall.Year(), int(t.wall.Month()), t.wall.Day(), t.wall.Hour(), t.wall.Minute(), t.wall.Second()
}

// Tuple returns the fields of t and its zone.
func (t Timestamp) Tuple() (year, month, day, hour, minute, second int, zone tz.Zone) {
	year, month, day, hour, minute, second = t.Fields()
	return year, month, day, hour, minute, second, t.zone
}

func (t Timestamp) Year() int     { return t.wall.Year() }
func (t Timestamp) Month() int    { return int(t.wall.Month()) }
func (t Timestamp) Day() int      { return t.wall.Day() }
func (t Timestamp) Hour() int     { return t.wall.Hour() }
func (t Timestamp) Minute() int   { return t.wall.Minute() }
func (t Timestamp) Second() int   { return t.wall.Second() }
func (t Timestamp) Zone() tz.Zone { return t.zone }
func (t Timestamp) IsNaive() bool { return t.zone == nil }
func (t Timestamp) IsZero() bool  { return t.wall.IsZero() && t.zone == nil }

// UTCOffset returns the offset of t's zone for t, or zero for naive
// timestamps.
func (t Timestamp) UTCOffset() duration.Duration {
	if t.zone == nil {
		return 0
	}
	return t.zone.UTCOffset(t)
}

// DST returns the daylight saving adjustment of t's zone for t.
func (t Timestamp) DST() duration.Duration {
	if t.zone == nil {
		return 0
	}
	return t.zone.DST(t)
}

// TZName returns the name of t's zone for t, or an empty string for naive
// timestamps.
func (t Timestamp) TZName() string {
	if t.zone == nil {
		return ""
	}
	return t.zone.TZName(t)
}

func (t Timestamp) instant() time.Time {
	return t.wall.Add(-t.UTCOffset().Std())
}

// StdTime returns the instant represented by t in a fixed location
// for t's offset.
func (t Timestamp) StdTime() time.Time {
	if t.zone == nil {
		return t.wall
	}
	return t.instant().In(tz.Location(t.zone, t))
}

func (t Timestamp) add(d duration.Duration) (Timestamp, error) {
	days, rem, _ := d.DivMod(duration.Day)
	w := t.wall.AddDate(0, 0, int(days)).Add(time.Duration(rem) * time.Second)
	if err := checkRange("year", w.Year(), MinYear, MaxYear); err != nil {
		return Timestamp{}, err
	}
	return Timestamp{wall: w, zone: t.zone}, nil
}

// Add returns t advanced by d, in wall-clock terms, keeping t's zone.
// A ConstructionError is returned if the result is outside of the
// years MinYear..MaxYear.
func (t Timestamp) Add(d duration.Duration) (Timestamp, error) {
	return t.add(d)
}

// Sub returns t moved back by d, in wall-clock terms, keeping t's zone.
func (t Timestamp) Sub(d duration.Duration) (Timestamp, error) {
	return t.add(d.Neg())
}

// Diff returns the elapsed time from o to t.
func (t Timestamp) Diff(o Timestamp) duration.Duration {
	return duration.Seconds(t.instant().Unix() - o.instant().Unix())
}

// Compare returns -1, 0 or +1 depending on whether t is before, at the
// same instant as, or after o.
func (t Timestamp) Compare(o Timestamp) int {
	return t.instant().Compare(o.instant())
}

func (t Timestamp) Lt(o Timestamp) bool { return t.Compare(o) < 0 }
func (t Timestamp) Le(o Timestamp) bool { return t.Compare(o) <= 0 }
func (t Timestamp) Eq(o Timestamp) bool { return t.Compare(o) == 0 }
func (t Timestamp) Ge(o Timestamp) bool { return t.Compare(o) >= 0 }
func (t Timestamp) Gt(o Timestamp) bool { return t.Compare(o) > 0 }

// Date returns midnight of t's day in t's zone.
func (t Timestamp) Date() Timestamp {
	y, m, d := t.wall.Date()
	return Timestamp{wall: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), zone: t.zone}
}

// Time returns the time of day of t as a Duration since midnight.
func (t Timestamp) Time() duration.Duration {
	return duration.New(duration.Components{
		Hours:   float64(t.wall.Hour()),
		Minutes: float64(t.wall.Minute()),
		Seconds: float64(t.wall.Second()),
	})
}

// CalendarDate returns the date of t.
func (t Timestamp) CalendarDate() datetime.CalendarDate {
	return datetime.CalendarDateFromTime(t.wall)
}

// Combine returns a Timestamp for the date of date and the time of day
// tod in zone. tod must be in the range [0, 1 day).
func Combine(date Timestamp, tod duration.Duration, zone tz.Zone) (Timestamp, error) {
	if tod < 0 || tod >= duration.Day {
		return Timestamp{}, &ConstructionError{Field: "time of day", Value: int(tod), Min: 0, Max: int(duration.Day - 1)}
	}
	d := date.Date()
	d.zone = zone
	return d.add(tod)
}

// AsTimezone returns the wall-clock time in zone for the instant
// represented by t. A nil zone returns a naive Timestamp in UTC.
// A ConstructionError is returned if the converted wall-clock time is
// outside of the years MinYear..MaxYear.
func (t Timestamp) AsTimezone(zone tz.Zone) (Timestamp, error) {
	utc := t.instant()
	if err := checkRange("year", utc.Year(), MinYear, MaxYear); err != nil {
		return Timestamp{}, err
	}
	if zone == nil {
		return Timestamp{wall: utc}, nil
	}
	// The standard offset is determined for the UTC wall-clock time and
	// any daylight saving adjustment for the resulting local time.
	w := Timestamp{wall: utc, zone: zone}
	std := zone.UTCOffset(w).Sub(zone.DST(w))
	local, err := w.add(std)
	if err != nil {
		return Timestamp{}, err
	}
	return local.add(zone.DST(local))
}

// ToOrdinal returns the proleptic Gregorian ordinal of t's date, where
// January 1 of year 1 is day 1.
func (t Timestamp) ToOrdinal() int {
	return int((t.Date().wall.Unix()-ordinalEpoch)/secondsPerDay) + 1
}

const (
	secondsPerDay = 24 * 60 * 60
	ordinalEpoch  = -62135596800 // time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxOrdinal    = 3652059      // December 31, 9999
)

// FromOrdinal returns a naive Timestamp at midnight of the day with the
// specified proleptic Gregorian ordinal.
func FromOrdinal(n int) (Timestamp, error) {
	if err := checkRange("ordinal", n, 1, maxOrdinal); err != nil {
		return Timestamp{}, err
	}
	secs := int64(n-1)*secondsPerDay + ordinalEpoch
	return Timestamp{wall: time.Unix(secs, 0).UTC()}, nil
}

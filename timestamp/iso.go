// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package timestamp

import (
	"fmt"
	"strings"
	"time"

	"github.com/cosnicolaou/tzshim/duration"
	"github.com/cosnicolaou/tzshim/tz"
)

// ParseError is returned when a string does not match any of the
// supported ISO-8601 layouts.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("timestamp: invalid isoformat string: %q", e.Input)
	}
	return fmt.Sprintf("timestamp: invalid isoformat string: %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	dateLayout  = "2006-01-02"
	timeLayouts = []string{"15", "15:04", "15:04:05"}
)

// FromISOFormat parses YYYY-MM-DD optionally followed by a space or T and
// HH, HH:MM or HH:MM:SS, optionally followed by Z or ±HH:MM. A Timestamp
// with a UTC offset has a tz.Offset zone, all others are naive.
func FromISOFormat(s string) (Timestamp, error) {
	if len(s) < len(dateLayout) {
		return Timestamp{}, &ParseError{Input: s}
	}
	if len(s) == len(dateLayout) {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return Timestamp{}, &ParseError{Input: s, Err: err}
		}
		return fromParsed(s, t, false)
	}
	sep := s[len(dateLayout)]
	if sep != ' ' && sep != 'T' {
		return Timestamp{}, &ParseError{Input: s, Err: fmt.Errorf("unsupported date/time separator %q", sep)}
	}
	clock, zone := splitZone(s[len(dateLayout)+1:])
	switch len(clock) {
	case 2, 5, 8:
	default:
		return Timestamp{}, &ParseError{Input: s, Err: fmt.Errorf("invalid time %q, must be HH, HH:MM or HH:MM:SS", clock)}
	}
	layout := dateLayout + string(sep) + timeLayouts[len(clock)/3]
	if len(zone) > 0 {
		layout += "Z07:00"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Timestamp{}, &ParseError{Input: s, Err: err}
	}
	return fromParsed(s, t, len(zone) > 0)
}

// splitZone splits a trailing Z or ±HH:MM from clock.
func splitZone(clock string) (string, string) {
	if strings.HasSuffix(clock, "Z") {
		return clock[:len(clock)-1], "Z"
	}
	if n := len(clock) - 6; n >= 0 {
		if c := clock[n]; c == '+' || c == '-' {
			return clock[:n], clock[n:]
		}
	}
	return clock, ""
}

func fromParsed(s string, t time.Time, zoned bool) (Timestamp, error) {
	if t.Year() < MinYear {
		return Timestamp{}, &ParseError{Input: s, Err: fmt.Errorf("year %v is out of range", t.Year())}
	}
	if !zoned {
		return FromTime(t, nil), nil
	}
	_, offset := t.Zone()
	return FromTime(t, tz.NewOffset(duration.Seconds(int64(offset)))), nil
}

// MustFromISOFormat is like FromISOFormat but panics on error, it is
// intended for literals in tests and examples.
func MustFromISOFormat(s string) Timestamp {
	t, err := FromISOFormat(s)
	if err != nil {
		panic(err)
	}
	return t
}

// DateISOFormat returns YYYY-MM-DD.
func (t Timestamp) DateISOFormat() string {
	return t.wall.Format(dateLayout)
}

// TimeISOFormat returns HH:MM:SS.
func (t Timestamp) TimeISOFormat() string {
	return t.wall.Format("15:04:05")
}

// ISOFormat returns the date and time separated by sep followed by the
// UTC offset as ±HH:MM[:SS] for timestamps with a zone.
func (t Timestamp) ISOFormat(sep string) string {
	s := t.DateISOFormat() + sep + t.TimeISOFormat()
	if t.zone == nil {
		return s
	}
	sign, _, hour, minute, second := t.UTCOffset().Tuple("+")
	s += fmt.Sprintf("%s%02d:%02d", sign, hour, minute)
	if second != 0 {
		s += fmt.Sprintf(":%02d", second)
	}
	return s
}

func (t Timestamp) String() string {
	return t.ISOFormat(" ")
}

// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tz

import (
	"github.com/cosnicolaou/tzshim/duration"
)

// CET is Central European Time, a base offset of one hour with a further
// hour of daylight saving (CEST) between the last Sunday of March and
// the last Sunday of October.
type CET struct{}

var cetBase = NewOffset(duration.Hour)

func (c CET) UTCOffset(w Wall) duration.Duration {
	return cetBase.UTCOffset(w).Add(c.DST(w))
}

func (c CET) DST(w Wall) duration.Duration {
	if c.IsDST(w) {
		return duration.Hour
	}
	return 0
}

func (c CET) TZName(w Wall) string {
	if c.IsDST(w) {
		return "CEST"
	}
	return "CET"
}

func (c CET) ISOFormat(w Wall) string {
	return formatOffset(c.UTCOffset(w))
}

func (c CET) String() string {
	return c.TZName(nil)
}

// LastSundayMarch returns the day of the month of the last Sunday in
// March for the given year.
func LastSundayMarch(year int) int {
	return 31 - floorMod(floorDiv(5*year, 4)+4, 7)
}

// LastSundayOctober returns the day of the month of the last Sunday in
// October for the given year.
func LastSundayOctober(year int) int {
	return 31 - floorMod(floorDiv(5*year, 4)+1, 7)
}

// IsDST reports whether daylight saving is in effect for w. The switch
// happens at 03:00 local time on the last Sunday of March and October.
func (c CET) IsDST(w Wall) bool {
	if w == nil {
		return false
	}
	year, month, day, hour, _, _ := w.Fields()
	if 3 < month && month < 10 {
		return true
	}
	switch month {
	case 3:
		beg := LastSundayMarch(year)
		if day < beg {
			return false
		}
		if day > beg {
			return true
		}
		return hour >= 3
	case 10:
		end := LastSundayOctober(year)
		if day < end {
			return true
		}
		if day > end {
			return false
		}
		return hour < 3
	}
	return false
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

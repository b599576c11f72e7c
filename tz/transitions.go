// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tz

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/tzshim/duration"
)

type wallTime time.Time

func (w wallTime) Fields() (year, month, day, hour, minute, second int) {
	t := time.Time(w)
	return t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()
}

// WallFromTime returns a Wall for the wall-clock fields of t, the
// location of t is ignored.
func WallFromTime(t time.Time) Wall {
	return wallTime(t)
}

// WallFromDate returns a Wall for the specified date and time of day.
func WallFromDate(date datetime.CalendarDate, tod datetime.TimeOfDay) Wall {
	return wallTime(date.Time(tod, time.UTC))
}

// Transition represents a change in the daylight saving adjustment of
// a zone. At is the first wall-clock hour, in the zone's local time
// prior to the change, at which the new adjustment applies.
type Transition struct {
	Date       datetime.CalendarDate
	At         datetime.TimeOfDay
	Before     duration.Duration
	After      duration.Duration
	BeforeName string
	AfterName  string
}

// ToDST returns true if the transition is into daylight saving time.
func (t Transition) ToDST() bool {
	return t.After > t.Before
}

func (t Transition) String() string {
	return fmt.Sprintf("%v %v: %v (%v) -> %v (%v)", t.Date, t.At, t.BeforeName, t.Before, t.AfterName, t.After)
}

// Transitions returns the changes in daylight saving adjustment for
// zone during the specified year in the order in which they occur. The
// zone is sampled at every hour of the year and hence transitions that
// occur at other than an hour boundary are reported at the following hour.
func Transitions(zone Zone, year int) []Transition {
	var transitions []Transition
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	prev := wallTime(start)
	prevDST := zone.DST(prev)
	for t := start.Add(time.Hour); t.Before(end); t = t.Add(time.Hour) {
		w := wallTime(t)
		dst := zone.DST(w)
		if dst == prevDST {
			prev = w
			continue
		}
		transitions = append(transitions, Transition{
			Date:       datetime.CalendarDateFromTime(t),
			At:         datetime.NewTimeOfDay(t.Hour(), t.Minute(), t.Second()),
			Before:     zone.UTCOffset(prev),
			After:      zone.UTCOffset(w),
			BeforeName: zone.TZName(prev),
			AfterName:  zone.TZName(w),
		})
		prev, prevDST = w, dst
	}
	return transitions
}

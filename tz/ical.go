// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tz

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const calendarProductID = "-//tzshim//Transitions//EN"

// Instant returns the UTC time at which the transition occurs.
func (t Transition) Instant() time.Time {
	return t.Date.Time(t.At, time.UTC).Add(-t.Before.Std())
}

func (t Transition) uid(zone string) string {
	key := fmt.Sprintf("%v/%v", zone, t.Instant().Format(time.RFC3339))
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

// NewCalendar returns an iCalendar containing an event for each of the
// supplied transitions. Event UIDs are derived from the zone name and
// the time of the transition and hence are stable across invocations.
func NewCalendar(zone string, transitions []Transition, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, calendarProductID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	for _, t := range transitions {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, t.uid(zone))
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		event.Props.SetDateTime(ical.PropDateTimeStart, t.Instant())
		event.Props.SetText(ical.PropSummary, fmt.Sprintf("%v: %v -> %v", zone, t.BeforeName, t.AfterName))
		event.Props.SetText(ical.PropDescription, fmt.Sprintf("UTC offset changes from %v to %v", t.Before, t.After))
		cal.Children = append(cal.Children, event.Component)
	}
	return cal
}

// WriteCalendar encodes cal to w.
func WriteCalendar(w io.Writer, cal *ical.Calendar) error {
	return ical.NewEncoder(w).Encode(cal)
}

// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package tz provides fixed-offset and rule based timezones expressed
// in terms of duration.Duration.
package tz

import (
	"fmt"
	"time"

	"github.com/cosnicolaou/tzshim/duration"
)

// Wall provides access to the wall-clock fields of a timestamp, the
// zone implementations use these to determine which offset is in effect.
// A nil Wall represents the absence of a timestamp.
type Wall interface {
	Fields() (year, month, day, hour, minute, second int)
}

// Zone represents a timezone as an offset from UTC that may vary with
// the wall-clock time it is applied to.
type Zone interface {
	// UTCOffset returns the total offset from UTC, including any
	// daylight saving adjustment, for the supplied wall-clock time.
	UTCOffset(w Wall) duration.Duration
	// DST returns the daylight saving adjustment in effect for w.
	DST(w Wall) duration.Duration
	// TZName returns the name of the zone for w.
	TZName(w Wall) string
	// ISOFormat returns UTC or UTC±HH:MM for the offset in effect for w.
	ISOFormat(w Wall) string
	String() string
}

// Offset is a timezone with a fixed offset from UTC.
type Offset struct {
	offset duration.Duration
	name   string
}

// UTC is the zero offset.
var UTC = NewOffset(0)

// NewOffset returns an Offset whose name is derived from its ISO format.
func NewOffset(offset duration.Duration) Offset {
	return Offset{offset: offset}
}

// NewNamedOffset returns an Offset with the specified name.
func NewNamedOffset(offset duration.Duration, name string) Offset {
	return Offset{offset: offset, name: name}
}

func (o Offset) UTCOffset(Wall) duration.Duration {
	return o.offset
}

func (o Offset) DST(Wall) duration.Duration {
	return 0
}

func (o Offset) TZName(w Wall) string {
	if len(o.name) > 0 {
		return o.name
	}
	return o.ISOFormat(w)
}

func (o Offset) ISOFormat(Wall) string {
	return formatOffset(o.offset)
}

func (o Offset) String() string {
	return o.TZName(nil)
}

func formatOffset(offset duration.Duration) string {
	if offset == 0 {
		return "UTC"
	}
	sign, _, hour, minute, _ := offset.Tuple("+")
	return fmt.Sprintf("UTC%s%02d:%02d", sign, hour, minute)
}

// Location returns a fixed time.Location for the offset in effect
// for w in zone.
func Location(zone Zone, w Wall) *time.Location {
	return time.FixedZone(zone.TZName(w), int(zone.UTCOffset(w).TotalSeconds()))
}

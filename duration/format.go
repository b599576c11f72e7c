// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuple decomposes the magnitude of d into days, hours, minutes and
// seconds. The returned sign is "-" for negative durations and
// positiveSign otherwise.
func (d Duration) Tuple(positiveSign string) (sign string, days, hours, minutes, seconds int64) {
	sign = positiveSign
	mag := uint64(d)
	if d < 0 {
		sign = "-"
		mag = -mag
	}
	s := mag % 60
	m := mag / 60 % 60
	h := mag / 3600 % 24
	return sign, int64(mag / 86400), int64(h), int64(m), int64(s)
}

// ISOFormat returns HH:MM:SS for durations in the range [0, 1 day) and
// {sign}{days}d HH:MM:SS for all others.
func (d Duration) ISOFormat() string {
	sign, days, h, m, s := d.Tuple("")
	if d >= 0 && d < Day {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%s%dd %02d:%02d:%02d", sign, days, h, m, s)
}

func (d Duration) String() string {
	return d.ISOFormat()
}

// ParseError is returned when a duration cannot be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("duration: invalid duration %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses the output of ISOFormat, ie. HH:MM:SS or
// [-]Nd HH:MM:SS, as well as strings accepted by time.ParseDuration.
func Parse(val string) (Duration, error) {
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return 0, &ParseError{Input: val, Err: fmt.Errorf("empty string")}
	}
	if !strings.Contains(val, ":") {
		std, err := time.ParseDuration(val)
		if err != nil {
			return 0, &ParseError{Input: val, Err: err}
		}
		return FromStd(std), nil
	}
	neg := false
	var days int64
	clock := val
	if idx := strings.Index(val, "d "); idx >= 0 {
		dv := val[:idx]
		if strings.HasPrefix(dv, "-") {
			neg = true
			dv = dv[1:]
		}
		n, err := strconv.ParseInt(dv, 10, 64)
		if err != nil || n < 0 {
			return 0, &ParseError{Input: val, Err: fmt.Errorf("invalid day count %q", val[:idx])}
		}
		if n > maxDays {
			return 0, &ParseError{Input: val, Err: fmt.Errorf("day count %v exceeds %v", n, maxDays)}
		}
		days = n
		clock = strings.TrimSpace(val[idx+2:])
	}
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return 0, &ParseError{Input: val, Err: fmt.Errorf("expected HH:MM:SS")}
	}
	var hms [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || len(p) != 2 || n < 0 {
			return 0, &ParseError{Input: val, Err: fmt.Errorf("invalid field %q", p)}
		}
		hms[i] = n
	}
	if hms[0] > 23 || hms[1] > 59 || hms[2] > 59 {
		return 0, &ParseError{Input: val, Err: fmt.Errorf("field out of range")}
	}
	d := Duration(days)*Day + Duration(hms[0])*Hour + Duration(hms[1])*Minute + Duration(hms[2])
	if neg {
		d = -d
	}
	if d < Min || d > Max {
		return 0, &ParseError{Input: val, Err: ErrOverflow}
	}
	return d, nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.ISOFormat()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

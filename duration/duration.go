// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package duration provides a signed span of time with one second
// resolution whose arithmetic and comparison operations are exposed as
// named methods rather than operators. All values are immutable; every
// operation returns a new Duration or a plain number.
//
// Fractional results, for example those produced by multiplying by or
// dividing by a float, are first rounded to the nearest microsecond and
// then to the nearest second, in both cases with ties rounding to even.
// Results of Mul and TrueDivScalar that are not a number or fall outside
// of Min..Max are reported as an OverflowError.
package duration

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Duration is a signed number of whole seconds.
type Duration int64

const (
	Second Duration = 1
	Minute          = 60 * Second
	Hour            = 60 * Minute
	Day             = 24 * Hour
	Week            = 7 * Day

	// Resolution is the smallest non-zero difference between two Durations.
	Resolution = Second

	maxDays = 999999999

	// Min and Max are the most negative and most positive representable
	// Durations, they follow the limits of a day count that fits in
	// nine decimal digits.
	Min Duration = -maxDays * Day
	Max Duration = maxDays*Day + Day - Second
)

// ErrDivision is returned, wrapped in a DivisionError, when a Duration
// is divided by a zero Duration or a zero scalar.
var ErrDivision = errors.New("division by zero")

// DivisionError records the operation that attempted to divide by zero.
type DivisionError struct {
	Op string
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("duration: %v: %v", e.Op, ErrDivision)
}

func (e *DivisionError) Unwrap() error {
	return ErrDivision
}

// ErrOverflow is returned, wrapped in an OverflowError, when the result
// of an operation is not representable as a Duration.
var ErrOverflow = errors.New("result out of range")

// OverflowError records the operation whose result was out of range.
type OverflowError struct {
	Op    string
	Value float64 // the result in seconds, prior to rounding
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("duration: %v: %v: %v", e.Op, ErrOverflow, e.Value)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}

// Components are the constituent parts of a Duration, any of which may
// be fractional or negative.
type Components struct {
	Weeks   float64
	Days    float64
	Hours   float64
	Minutes float64
	Seconds float64
}

// New returns the Duration represented by the sum of the supplied
// components, rounded to the nearest second. Sums outside of Min..Max
// saturate at the nearest limit and a sum that is not a number yields
// zero.
func New(c Components) Duration {
	secs := c.Weeks*float64(Week) +
		c.Days*float64(Day) +
		c.Hours*float64(Hour) +
		c.Minutes*float64(Minute) +
		c.Seconds
	d, ok := fromFloatSeconds(secs)
	switch {
	case ok:
		return d
	case math.IsNaN(secs):
		return 0
	case secs < 0:
		return Min
	}
	return Max
}

// Seconds returns a Duration of n seconds.
func Seconds(n int64) Duration {
	return Duration(n)
}

// FromStd converts a time.Duration, rounding to the nearest second.
func FromStd(d time.Duration) Duration {
	r, _ := fromFloatSeconds(d.Seconds())
	return r
}

// Std returns the equivalent time.Duration, saturating at the limits of
// time.Duration for spans of more than roughly 292 years.
func (d Duration) Std() time.Duration {
	const limit = int64(math.MaxInt64 / int64(time.Second))
	switch {
	case int64(d) > limit:
		return time.Duration(math.MaxInt64)
	case int64(d) < -limit:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(d) * time.Second
}

func fromFloatSeconds(secs float64) (Duration, bool) {
	return fromMicroseconds(secs * 1e6)
}

func fromMicroseconds(usecs float64) (Duration, bool) {
	usecs = math.RoundToEven(usecs)
	r := math.RoundToEven(usecs / 1e6)
	if math.IsNaN(r) || r < float64(Min) || r > float64(Max) {
		return 0, false
	}
	return Duration(r), true
}

// TotalSeconds returns the number of whole seconds in d.
func (d Duration) TotalSeconds() int64 {
	return int64(d)
}

func (d Duration) Add(o Duration) Duration {
	return d + o
}

func (d Duration) Sub(o Duration) Duration {
	return d - o
}

// Mul scales d by f, rounding the result to the nearest second.
func (d Duration) Mul(f float64) (Duration, error) {
	secs := float64(d) * f
	r, ok := fromFloatSeconds(secs)
	if !ok {
		return 0, &OverflowError{Op: "mul", Value: secs}
	}
	return r, nil
}

// TrueDiv returns the dimensionless ratio d/o.
func (d Duration) TrueDiv(o Duration) (float64, error) {
	if o == 0 {
		return 0, &DivisionError{Op: "truediv"}
	}
	return float64(d) / float64(o), nil
}

// TrueDivScalar returns d scaled down by f, rounded to the nearest second.
func (d Duration) TrueDivScalar(f float64) (Duration, error) {
	if f == 0 {
		return 0, &DivisionError{Op: "truediv"}
	}
	usecs := float64(d) * 1e6 / f
	r, ok := fromMicroseconds(usecs)
	if !ok {
		return 0, &OverflowError{Op: "truediv", Value: usecs / 1e6}
	}
	return r, nil
}

// FloorDiv returns the number of whole multiples of o in d, rounding
// towards negative infinity.
func (d Duration) FloorDiv(o Duration) (int64, error) {
	if o == 0 {
		return 0, &DivisionError{Op: "floordiv"}
	}
	return floorDiv(int64(d), int64(o)), nil
}

// FloorDivScalar returns d divided by n, rounding towards negative
// infinity.
func (d Duration) FloorDivScalar(n int64) (Duration, error) {
	if n == 0 {
		return 0, &DivisionError{Op: "floordiv"}
	}
	return Duration(floorDiv(int64(d), n)), nil
}

// Mod returns the remainder of the floor division of d by o. The result
// has the same sign as o.
func (d Duration) Mod(o Duration) (Duration, error) {
	if o == 0 {
		return 0, &DivisionError{Op: "mod"}
	}
	q := floorDiv(int64(d), int64(o))
	return d - Duration(q)*o, nil
}

// DivMod returns the results of FloorDiv and Mod.
func (d Duration) DivMod(o Duration) (int64, Duration, error) {
	if o == 0 {
		return 0, 0, &DivisionError{Op: "divmod"}
	}
	q := floorDiv(int64(d), int64(o))
	return q, d - Duration(q)*o, nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (d Duration) Neg() Duration {
	return -d
}

func (d Duration) Abs() Duration {
	if d < 0 {
		return -d
	}
	return d
}

// Bool returns true if d is non-zero.
func (d Duration) Bool() bool {
	return d != 0
}

// Compare returns -1, 0 or +1 depending on whether d is less than, equal
// to or greater than o.
func (d Duration) Compare(o Duration) int {
	switch {
	case d < o:
		return -1
	case d > o:
		return 1
	}
	return 0
}

func (d Duration) Lt(o Duration) bool { return d < o }
func (d Duration) Le(o Duration) bool { return d <= o }
func (d Duration) Eq(o Duration) bool { return d == o }
func (d Duration) Ge(o Duration) bool { return d >= o }
func (d Duration) Gt(o Duration) bool { return d > o }

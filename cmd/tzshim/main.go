// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: tzshim
summary: tzshim is a command line tool for exercising the duration, timezone and timestamp packages
commands:
  - name: selftest
    summary: run the built in suites of worked examples
    commands:
      - name: run
        summary: run the requested suites, or all suites if none are specified
        arguments:
          - <suite>...
      - name: list
        summary: list the available suites
  - name: zone
    summary: query/inspect timezones
    commands:
      - name: list
        summary: list the builtin zones and those in the zones file
      - name: offsets
        summary: display the offset from UTC at noon for each day in a date range
        arguments:
          - <zone> - name of the zone
          - <date-range> - range of dates, eg. 01/01/2025:12/31/2025
      - name: transitions
        summary: display the daylight saving transitions for the specified years
        arguments:
          - <zone> - name of the zone
          - <year>...
  - name: duration
    summary: parse and display durations
    commands:
      - name: format
        arguments:
          - <duration>...
  - name: logs
    summary: query/inspect the log files
    commands:
      - name: status
        arguments:
          - <log-file>
`

func cli() *subcmd.CommandSetYAML {
	cmd := subcmd.MustFromYAML(cmdSpec)

	selftest := &Selftest{out: os.Stdout}
	cmd.Set("selftest", "run").MustRunner(selftest.Run, &SelftestRunFlags{})
	cmd.Set("selftest", "list").MustRunner(selftest.List, &SelftestListFlags{})

	zone := &Zone{out: os.Stdout}
	cmd.Set("zone", "list").MustRunner(zone.List, &ZoneFlags{})
	cmd.Set("zone", "offsets").MustRunner(zone.Offsets, &ZoneOffsetsFlags{})
	cmd.Set("zone", "transitions").MustRunner(zone.Transitions, &ZoneTransitionsFlags{})

	dur := &Duration{out: os.Stdout}
	cmd.Set("duration", "format").MustRunner(dur.Format, &DurationFlags{})

	log := &Log{out: os.Stdout}
	cmd.Set("logs", "status").MustRunner(log.Status, &LogStatusFlags{})
	return cmd
}

var errInterrupt = errors.New("interrupt")

func main() {
	ctx := context.Background()
	ctx, cancel := context.WithCancelCause(ctx)
	cmdutil.HandleSignals(func() { cancel(errInterrupt) }, os.Interrupt)
	err := cli().Dispatch(ctx)
	if context.Cause(ctx) == errInterrupt {
		cmdutil.Exit("%v", errInterrupt)
	}
	if err != nil {
		cmdutil.Exit("%v", err)
	}
}

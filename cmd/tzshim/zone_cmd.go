// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/sync/errgroup"
	"github.com/cosnicolaou/tzshim/timestamp"
	"github.com/cosnicolaou/tzshim/tz"
)

type ZoneFlags struct {
	ZonesFile string `subcmd:"zones,,path to a YAML file containing additional zone definitions"`
	TSV       bool   `subcmd:"tsv,false,print tables as tab separated values"`
}

type ZoneOffsetsFlags struct {
	ZoneFlags
}

type ZoneTransitionsFlags struct {
	ZoneFlags
	ICSFile string `subcmd:"ics,,write the transitions to the specified file in iCalendar format"`
}

type Zone struct {
	out io.Writer
}

func loadZones(ctx context.Context, fv *ZoneFlags) (tz.Zones, error) {
	if len(fv.ZonesFile) == 0 {
		return tz.ParseConfig(ctx, nil)
	}
	zones, err := tz.ParseConfigFile(ctx, fv.ZonesFile)
	if err != nil {
		return tz.Zones{}, fmt.Errorf("failed to parse zones file: %q: %w", fv.ZonesFile, err)
	}
	return zones, nil
}

func lookupZone(ctx context.Context, fv *ZoneFlags, name string) (tz.Zone, error) {
	zones, err := loadZones(ctx, fv)
	if err != nil {
		return nil, err
	}
	zone, ok := zones.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown zone: %v", name)
	}
	return zone, nil
}

func (z *Zone) List(ctx context.Context, flags any, _ []string) error {
	fv := flags.(*ZoneFlags)
	zones, err := loadZones(ctx, fv)
	if err != nil {
		return err
	}
	tm := tableManager{tsv: fv.TSV}
	fmt.Fprintln(z.out, tm.render(tm.Zones(zones)))
	return nil
}

func (z *Zone) Offsets(ctx context.Context, flags any, args []string) error {
	fv := flags.(*ZoneOffsetsFlags)
	zone, err := lookupZone(ctx, &fv.ZoneFlags, args[0])
	if err != nil {
		return err
	}
	var period datetime.CalendarDateRange
	if err := period.Parse(args[1]); err != nil {
		return err
	}
	tm := tableManager{tsv: fv.TSV}
	fmt.Fprintln(z.out, tm.render(tm.Offsets(zone, period)))
	return nil
}

func parseYears(args []string) ([]int, error) {
	years := make([]int, 0, len(args))
	for _, a := range args {
		y, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid year: %q: %w", a, err)
		}
		if y < timestamp.MinYear || y > timestamp.MaxYear {
			return nil, fmt.Errorf("year %v is not in the range %v..%v", y, timestamp.MinYear, timestamp.MaxYear)
		}
		years = append(years, y)
	}
	return years, nil
}

func (z *Zone) Transitions(ctx context.Context, flags any, args []string) error {
	fv := flags.(*ZoneTransitionsFlags)
	zone, err := lookupZone(ctx, &fv.ZoneFlags, args[0])
	if err != nil {
		return err
	}
	years, err := parseYears(args[1:])
	if err != nil {
		return err
	}
	if len(years) == 0 {
		return fmt.Errorf("at least one year must be specified")
	}
	transitions := make([][]tz.Transition, len(years))
	var g errgroup.T
	for i, year := range years {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			transitions[i] = tz.Transitions(zone, year)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	tm := tableManager{tsv: fv.TSV}
	fmt.Fprintln(z.out, tm.render(tm.Transitions(zone, years, transitions)))
	if len(fv.ICSFile) == 0 {
		return nil
	}
	return writeICS(fv.ICSFile, args[0], slices.Concat(transitions...))
}

func writeICS(filename, zone string, transitions []tz.Transition) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	cal := tz.NewCalendar(zone, transitions, time.Now())
	if err := tz.WriteCalendar(f, cal); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %q: %w", filename, err)
	}
	return f.Close()
}

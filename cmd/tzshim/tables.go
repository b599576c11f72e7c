// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/tzshim/duration"
	"github.com/cosnicolaou/tzshim/internal/logging"
	"github.com/cosnicolaou/tzshim/tz"
	"github.com/jedib0t/go-pretty/v6/table"
)

type tableManager struct {
	tsv bool
}

func (tm tableManager) render(tw table.Writer) string {
	if tm.tsv {
		return tw.RenderTSV()
	}
	return tw.Render()
}

func (tm tableManager) Zones(zones tz.Zones) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Zones")
	tw.AppendHeader(table.Row{"Name", "Zone", "Source"})
	configured := map[string]bool{}
	for _, zc := range zones.Config.Zones {
		configured[strings.ToLower(zc.Name)] = true
	}
	for _, name := range zones.Names() {
		zone, _ := zones.Lookup(name)
		src := "builtin"
		if configured[name] {
			src = "config"
		}
		tw.AppendRow(table.Row{name, zone, src})
	}
	return tw
}

var noon = datetime.NewTimeOfDay(12, 0, 0)

func (tm tableManager) Offsets(zone tz.Zone, dr datetime.CalendarDateRange) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle(zone.String())
	tw.AppendHeader(table.Row{"Date", "Name", "UTC Offset", "DST", "ISO"})
	for day := range dr.Dates() {
		w := tz.WallFromDate(day, noon)
		tw.AppendRow(table.Row{
			day,
			zone.TZName(w),
			zone.UTCOffset(w),
			zone.DST(w),
			zone.ISOFormat(w),
		})
	}
	return tw
}

func (tm tableManager) Transitions(zone tz.Zone, years []int, transitions [][]tz.Transition) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle(zone.String())
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	tw.AppendHeader(table.Row{"Year", "Date", "Time", "From", "To", "Offset Before", "Offset After"})
	for i, year := range years {
		if len(transitions[i]) == 0 {
			tw.AppendRow(table.Row{year, "", "", "", "", "", ""})
		}
		for _, t := range transitions[i] {
			tw.AppendRow(table.Row{year, t.Date, t.At, t.BeforeName, t.AfterName, t.Before, t.After})
		}
		tw.AppendSeparator()
	}
	return tw
}

func (tm tableManager) Durations(inputs []string, durations []duration.Duration) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Input", "Duration", "Seconds", "Sign", "Days", "Hours", "Minutes", "Secs"})
	for i, d := range durations {
		sign, days, hours, minutes, seconds := d.Tuple("+")
		tw.AppendRow(table.Row{inputs[i], d, d.TotalSeconds(), sign, days, hours, minutes, seconds})
	}
	return tw
}

func (tm tableManager) Status(sr *logging.StatusRecorder) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"ID", "Suite", "Status", "Passed", "Total", "Started", "Elapsed", "Failures", "Error"})
	for rec := range sr.Completed() {
		tw.AppendRow(table.Row{
			rec.ID,
			rec.Suite,
			rec.Status(),
			rec.Passed,
			rec.Total,
			rec.Started.Format("2006-01-02 15:04:05"),
			rec.Completed.Sub(rec.Started),
			strings.Join(rec.Failures, "\n"),
			rec.ErrorMessage(),
		})
	}
	for rec := range sr.Running() {
		tw.AppendRow(table.Row{
			rec.ID,
			rec.Suite,
			rec.Status(),
			rec.Passed,
			rec.Total,
			rec.Started.Format("2006-01-02 15:04:05"),
			"",
			strings.Join(rec.Failures, "\n"),
			"",
		})
	}
	return tw
}

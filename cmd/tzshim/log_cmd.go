// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cosnicolaou/tzshim/internal/logging"
)

type LogFlags struct {
	Suite string `subcmd:"suite,,display log info for the specific suite"`
}

type LogStatusFlags struct {
	LogFlags
	StreamingSummary bool `subcmd:"streaming-summary,false,print a summary of each suite as it is completed"`
	FinalSummary     bool `subcmd:"final-summary,true,print a single summary of the entire log"`
	Failures         bool `subcmd:"failures,false,print every failed check as it is encountered"`
	TSV              bool `subcmd:"tsv,false,print the status in tab separated values"`
}

type Log struct {
	out io.Writer
}

type logEntryHandler func(logging.Entry) error

func (l *Log) processLog(rd io.Reader, fv *LogStatusFlags, lh logEntryHandler) error {
	sc := logging.NewScanner(rd)
	for le := range sc.Entries(true) {
		if len(fv.Suite) > 0 && le.Suite != fv.Suite {
			continue
		}
		if err := lh(le); err != nil {
			return err
		}
	}
	return sc.Err()
}

func (l *Log) Status(_ context.Context, flags any, args []string) error {
	fv := flags.(*LogStatusFlags)
	srh := statusRecorder{
		StatusRecorder: logging.NewStatusRecorder(),
		running:        make(map[int64]*logging.StatusRecord),
		flags:          fv,
		out:            l.out,
	}
	rd := os.Stdin
	if len(args) == 1 && args[0] != "-" {
		fi, err := os.OpenFile(args[0], os.O_RDONLY, 0)
		if err != nil {
			return err
		}
		defer fi.Close()
		rd = fi
	}
	err := l.processLog(rd, fv, srh.process)
	if fv.FinalSummary {
		srh.print(l.out)
	}
	return err
}

type statusRecorder struct {
	*logging.StatusRecorder
	running map[int64]*logging.StatusRecord
	flags   *LogStatusFlags
	out     io.Writer
}

func (sr *statusRecorder) print(out io.Writer) {
	tm := tableManager{tsv: sr.flags.TSV}
	fmt.Fprintln(out, tm.render(tm.Status(sr.StatusRecorder)))
}

func (sr *statusRecorder) process(le logging.Entry) error {
	switch le.Msg {
	case logging.LogSuite:
		rec := le.StatusRecord()
		sr.running[le.ID] = sr.NewRunning(rec)
	case logging.LogPass, logging.LogFail:
		rec, ok := sr.running[le.ID]
		if !ok {
			return nil
		}
		sr.Check(rec, le.Name(), le.Msg == logging.LogPass)
		if le.Msg == logging.LogFail && sr.flags.Failures {
			fmt.Fprintf(sr.out, "%v: expected: %v, got: %v\n", le.Name(), le.Want, le.Got)
		}
	case logging.LogDone, logging.LogFailed:
		rec, ok := sr.running[le.ID]
		if !ok {
			return nil
		}
		delete(sr.running, le.ID)
		if !le.Started.IsZero() {
			rec.Started = le.Started
		}
		sr.Done(rec, rec.Started.Add(le.Elapsed), le.Passed, le.Total, le.Err)
		if sr.flags.StreamingSummary {
			sr.print(sr.out)
			sr.ResetCompleted()
		}
	default: // ignore all other messages.
	}
	return nil
}

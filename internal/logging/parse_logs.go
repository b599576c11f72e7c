// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"
)

type logEntry struct {
	Msg     string    `json:"msg"`
	Mod     string    `json:"mod"`
	ID      int64     `json:"id"`
	Suite   string    `json:"suite"`
	Group   string    `json:"group"`
	Index   int       `json:"index"`
	Check   string    `json:"check"`
	Got     string    `json:"got"`
	Want    string    `json:"want"`
	Passed  int       `json:"passed"`
	Total   int       `json:"total"`
	Started time.Time `json:"started"`
	Elapsed int64     `json:"elapsed"`
	Err     string    `json:"err"`
}

type Entry struct {
	logEntry

	Elapsed  time.Duration
	Err      error
	LogEntry string // Original log line
}

func ParseLogLine(line string) (Entry, error) {
	var le Entry
	le.LogEntry = line
	if err := json.Unmarshal([]byte(line), &le.logEntry); err != nil {
		return le, err
	}
	le.Elapsed = time.Duration(le.logEntry.Elapsed)
	if e := le.logEntry.Err; e != "" {
		le.Err = errors.New(e)
	}
	return le, nil
}

// Harness returns true if the entry was written by the test harness.
func (le Entry) Harness() bool {
	return le.Mod == Mod
}

func (le Entry) Name() string {
	if len(le.Group) == 0 {
		return le.Suite
	}
	return fmt.Sprintf("%v/%v #%v: %v", le.Suite, le.Group, le.Index, le.Check)
}

func (le Entry) StatusRecord() *StatusRecord {
	return &StatusRecord{
		ID:    le.ID,
		Suite: le.Suite,
	}
}

type Scanner struct {
	sc  *bufio.Scanner
	err error
}

func NewScanner(rd io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(rd)}
}

// Entries returns an iterator for over the Scanner's Entry's. Note
// that the iterator will stop if an error is encountered and that the
// Scanner's Err method should be checked after the iterator has completed.
// If harnessOnly is true, entries not written by the harness are skipped.
func (ls *Scanner) Entries(harnessOnly bool) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for {
			if !ls.sc.Scan() {
				ls.err = ls.sc.Err()
				return
			}
			line := ls.sc.Text()
			le, err := ParseLogLine(line)
			if err != nil {
				ls.err = err
				return
			}
			if harnessOnly && !le.Harness() {
				continue
			}
			if !yield(le) {
				return
			}
		}
	}
}

func (ls *Scanner) Err() error {
	return ls.err
}

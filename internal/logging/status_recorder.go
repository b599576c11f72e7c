// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package logging

import (
	"iter"
	"sync"
	"time"

	"cloudeng.io/algo/container/list"
)

// StatusRecorder tracks the suites that are running and those that
// have completed.
type StatusRecorder struct {
	mu      sync.Mutex
	done    []*StatusRecord
	running *list.Double[*StatusRecord]
}

func NewStatusRecorder() *StatusRecorder {
	return &StatusRecorder{
		done:    make([]*StatusRecord, 0, 16),
		running: list.NewDouble[*StatusRecord](),
	}
}

type StatusRecord struct {
	ID    int64 // Unique identifier for this invocation
	Suite string

	// The following fields are filled in by the status recorder.
	Started   time.Time // Set by NewRunning if not already set
	Completed time.Time // Set by Done
	Passed    int
	Total     int
	Failures  []string
	Error     error

	listID list.DoubleID[*StatusRecord]
}

func (sr *StatusRecord) Status() string {
	switch {
	case sr.Completed.IsZero():
		return "running"
	case sr.Error != nil:
		return "failed"
	case sr.Passed != sr.Total:
		return "fail"
	}
	return "pass"
}

func (sr *StatusRecord) ErrorMessage() string {
	if sr.Error == nil {
		return ""
	}
	return sr.Error.Error()
}

// NewRunning records the start of a suite.
func (s *StatusRecorder) NewRunning(sr *StatusRecord) *StatusRecord {
	if sr == nil {
		return sr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sr.listID = s.running.Append(sr)
	if sr.Started.IsZero() {
		sr.Started = time.Now()
	}
	return sr
}

// Check records the outcome of a single check for a running suite.
func (s *StatusRecorder) Check(sr *StatusRecord, name string, pass bool) {
	if sr == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sr.Total++
	if pass {
		sr.Passed++
		return
	}
	sr.Failures = append(sr.Failures, name)
}

// Done records the completion of a suite, passed and total override the
// counts accumulated by Check.
func (s *StatusRecorder) Done(sr *StatusRecord, completed time.Time, passed, total int, err error) {
	if sr == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sr.Completed = completed
	sr.Passed = passed
	sr.Total = total
	sr.Error = err
	s.done = append(s.done, sr)
	s.running.RemoveItem(sr.listID)
}

func (s *StatusRecorder) Completed() iter.Seq[*StatusRecord] {
	return func(yield func(*StatusRecord) bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, sr := range s.done {
			if !yield(sr) {
				return
			}
		}
	}
}

func (s *StatusRecorder) Running() iter.Seq[*StatusRecord] {
	return func(yield func(*StatusRecord) bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for sr := range s.running.Forward() {
			if !yield(sr) {
				return
			}
		}
	}
}

func (s *StatusRecorder) ResetCompleted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = s.done[:0]
}

// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package logging

import (
	"log/slog"
	"sync/atomic"
	"time"
)

const (
	LogSuite  = "suite"
	LogPass   = "pass"
	LogFail   = "fail"
	LogDone   = "done"
	LogFailed = "failed"
)

// Mod is the value of the "mod" attribute used for all harness log
// records.
const Mod = "harness"

var invocationID int64

// WriteSuiteStart logs the start of a suite and must be called before any
// checks are logged for it. It returns a unique identifier for the suite
// that must be passed to WriteCheck and WriteSuiteDone.
func WriteSuiteStart(l *slog.Logger, suite string) int64 {
	id := atomic.AddInt64(&invocationID, 1)
	l.Info(LogSuite,
		"mod", Mod,
		"id", id,
		"suite", suite)
	return id
}

// WriteCheck logs the outcome of a single check.
func WriteCheck(l *slog.Logger, id int64, suite, group string, index int, name, got, want string, pass bool) {
	msg := LogPass
	if !pass {
		msg = LogFail
	}
	l.Info(msg,
		"mod", Mod,
		"id", id,
		"suite", suite,
		"group", group,
		"index", index,
		"check", name,
		"got", got,
		"want", want)
}

// WriteSuiteDone logs the completion of a suite. A non-nil err indicates
// that the suite was abandoned before all of its checks were run.
func WriteSuiteDone(l *slog.Logger, id int64, suite string, passed, total int, started time.Time, elapsed time.Duration, err error) {
	msg := LogDone
	if err != nil {
		msg = LogFailed
	}
	l.Info(msg,
		"mod", Mod,
		"id", id,
		"suite", suite,
		"passed", passed,
		"total", total,
		"started", started,
		"elapsed", elapsed,
		"err", err)
}

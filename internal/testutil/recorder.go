// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package testutil

import (
	"bytes"
	"log/slog"
	"sync"
)

// Recorder is an io.Writer that is safe for concurrent use and is
// intended for capturing log output in tests.
type Recorder struct {
	sync.Mutex
	out bytes.Buffer
}

func (r *Recorder) Write(p []byte) (n int, err error) {
	r.Lock()
	defer r.Unlock()
	return r.out.Write(p)
}

// Logger returns a JSON logger that writes to r.
func (r *Recorder) Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(r, nil))
}

// String returns everything written so far.
func (r *Recorder) String() string {
	r.Lock()
	defer r.Unlock()
	return r.out.String()
}

// Lines returns the non-empty lines written so far.
func (r *Recorder) Lines() []string {
	r.Lock()
	defer r.Unlock()
	lines := []string{}
	for _, l := range bytes.Split(r.out.Bytes(), []byte("\n")) {
		if len(l) == 0 {
			continue
		}
		lines = append(lines, string(l))
	}
	return lines
}

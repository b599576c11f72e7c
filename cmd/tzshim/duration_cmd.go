// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/errors"
	"github.com/cosnicolaou/tzshim/duration"
)

type DurationFlags struct {
	TSV bool `subcmd:"tsv,false,print tables as tab separated values"`
}

type Duration struct {
	out io.Writer
}

func (d *Duration) Format(_ context.Context, flags any, args []string) error {
	fv := flags.(*DurationFlags)
	durations := make([]duration.Duration, 0, len(args))
	inputs := make([]string, 0, len(args))
	var errs errors.M
	for _, a := range args {
		v, err := duration.Parse(a)
		if err != nil {
			errs.Append(err)
			continue
		}
		durations = append(durations, v)
		inputs = append(inputs, a)
	}
	tm := tableManager{tsv: fv.TSV}
	fmt.Fprintln(d.out, tm.render(tm.Durations(inputs, durations)))
	return errs.Err()
}

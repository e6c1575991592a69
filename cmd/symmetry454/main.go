// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command symmetry454 converts dates between the proleptic Gregorian
// calendar and the Symmetry454 (or Symmetry010) calendar.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: symmetry454
summary: convert dates between the Gregorian and Symmetry454 calendars
commands:
  - name: now
    summary: display today's date in the Symmetry calendar
  - name: convert
    summary: convert a Gregorian date to a Symmetry date
    arguments:
      - <year>
      - <month>
      - <day>
  - name: create
    summary: validate and display a Symmetry date
    arguments:
      - <year>
      - <month>
      - <day>
  - name: fixed
    summary: display the Symmetry dates for the specified fixed dates
    arguments:
      - <fixed-date>
      - ...
  - name: leap
    summary: display the leap year status and new year day of Symmetry years
    arguments:
      - <year>
      - ...
  - name: year
    summary: display the months of a Symmetry year
    arguments:
      - <year>
  - name: verify
    summary: verify that every day in a range of Gregorian years converts to a Symmetry date and back
`

var (
	cmdSet = subcmd.MustFromYAML(cmdSpec)
	app    = &cli{out: os.Stdout}
)

func init() {
	cmdSet.Set("now").MustRunnerAndFlags(app.now,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("convert").MustRunnerAndFlags(app.convert,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("create").MustRunnerAndFlags(app.create,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("fixed").MustRunnerAndFlags(app.fixed,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("leap").MustRunnerAndFlags(app.leap,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("year").MustRunnerAndFlags(app.year,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("verify").MustRunnerAndFlags(app.verify,
		subcmd.MustRegisterFlagStruct(&verifyFlags{}, nil, nil))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

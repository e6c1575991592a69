// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/symmetry454"
)

// CalendarFlags represents the flags used to configure the calendar.
type CalendarFlags struct {
	AltCalendar bool   `subcmd:"alt-calendar,false,'use flat 30-31-30 day months (Symmetry010) rather than 4-5-4 week months'"`
	AltCycle    bool   `subcmd:"alt-cycle,false,use the 389 year solstice cycle rather than the 293 year equinox cycle"`
	AltEpoch    bool   `subcmd:"alt-epoch,false,anchor fixed dates at 2001-01-01 rather than the CCUE rata die"`
	ConfigFile  string `subcmd:"config,,'yaml file containing the calendar configuration, the alt-* flags are applied in addition to it'"`
}

// OutputFlags represents the flags that control output formatting.
type OutputFlags struct {
	Format string `subcmd:"format,text,'output format: text, yaml or json'"`
}

type CommonFlags struct {
	CalendarFlags
	OutputFlags
	cmdutil.LoggingFlags
}

type verifyFlags struct {
	CommonFlags
	FromYear    int `subcmd:"from-year,1800,first Gregorian year to verify"`
	ToYear      int `subcmd:"to-year,2500,'Gregorian year, not included, at which verification stops'"`
	Concurrency int `subcmd:"concurrency,0,'number of goroutines to use, zero for one per CPU'"`
}

// Config returns the calendar configuration specified by the
// configuration file, if any, and the flags.
func (cf CalendarFlags) Config() (symmetry454.Config, error) {
	var cfg symmetry454.Config
	if len(cf.ConfigFile) > 0 {
		if err := cmdutil.ParseYAMLConfigFile(cf.ConfigFile, &cfg); err != nil {
			return cfg, err
		}
	}
	cfg.AltCalendar = cfg.AltCalendar || cf.AltCalendar
	cfg.AltCycle = cfg.AltCycle || cf.AltCycle
	cfg.AltEpoch = cfg.AltEpoch || cf.AltEpoch
	return cfg, nil
}

// setup validates the flags, creates the calendar and installs the
// logger in the returned context. The returned function must be
// called to close any log file.
func (cf *CommonFlags) setup(ctx context.Context) (context.Context, *symmetry454.Calendar, func(), error) {
	if err := flags.OneOf(cf.Format).Validate("text", "yaml", "json"); err != nil {
		return ctx, nil, nil, err
	}
	cfg, err := cf.Config()
	if err != nil {
		return ctx, nil, nil, err
	}
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, nil, err
	}
	cal := cfg.NewCalendar()
	logger.Debug("calendar", "config", cal.String())
	ctx = ctxlog.Context(ctx, logger.Logger)
	return ctx, cal, func() { logger.Close() }, nil
}

// parseInts parses each argument as an integer, reporting all of
// the arguments that are not.
func parseInts(names []string, args []string) ([]int, error) {
	vals := make([]int, len(args))
	errs := &errors.M{}
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			name := "argument"
			if i < len(names) {
				name = names[i]
			}
			errs.Append(fmt.Errorf("%w: %s %q is not an integer", symmetry454.ErrInvalidArgument, name, arg))
			continue
		}
		vals[i] = v
	}
	return vals, errs.Err()
}

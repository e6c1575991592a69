// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"strconv"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/symmetry454"
)

type cli struct {
	out io.Writer
}

var ymdArgs = []string{"year", "month", "day"}

func (c *cli) now(ctx context.Context, values any, _ []string) error {
	cf := values.(*CommonFlags)
	_, cal, done, err := cf.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	d, err := cal.Now()
	if err != nil {
		return err
	}
	return printer{out: c.out, format: cf.Format}.dates(d)
}

func (c *cli) convert(ctx context.Context, values any, args []string) error {
	return c.ymd(ctx, values.(*CommonFlags), args, (*symmetry454.Calendar).Convert)
}

func (c *cli) create(ctx context.Context, values any, args []string) error {
	return c.ymd(ctx, values.(*CommonFlags), args, (*symmetry454.Calendar).Create)
}

func (c *cli) ymd(ctx context.Context, cf *CommonFlags, args []string, fn func(*symmetry454.Calendar, int, int, int) (symmetry454.Date, error)) error {
	vals, err := parseInts(ymdArgs, args)
	if err != nil {
		return err
	}
	ctx, cal, done, err := cf.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	d, err := fn(cal, vals[0], vals[1], vals[2])
	if err != nil {
		ctxlog.Logger(ctx).Error("invalid date", "year", vals[0], "month", vals[1], "day", vals[2], "error", err)
		return err
	}
	return printer{out: c.out, format: cf.Format}.dates(d)
}

func (c *cli) fixed(ctx context.Context, values any, args []string) error {
	cf := values.(*CommonFlags)
	_, cal, done, err := cf.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	dates := make([]symmetry454.Date, 0, len(args))
	errs := &errors.M{}
	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			errs.Append(err)
			continue
		}
		d, err := cal.FixedToSym(symmetry454.FixedDate(v))
		if err != nil {
			errs.Append(err)
			continue
		}
		dates = append(dates, d)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	return printer{out: c.out, format: cf.Format}.dates(dates...)
}

func (c *cli) leap(ctx context.Context, values any, args []string) error {
	cf := values.(*CommonFlags)
	years, err := parseInts(nil, args)
	if err != nil {
		return err
	}
	_, cal, done, err := cf.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	out := make([]leapYear, len(years))
	for i, y := range years {
		d, err := cal.Create(y, 1, 1)
		if err != nil {
			return err
		}
		out[i] = leapYear{
			Year:       y,
			Leap:       d.IsLeapYear(),
			NewYearDay: d.StartOfYear,
			Days:       d.DaysInYear,
		}
	}
	return printer{out: c.out, format: cf.Format}.leapYears(out...)
}

func (c *cli) year(ctx context.Context, values any, args []string) error {
	cf := values.(*CommonFlags)
	vals, err := parseInts([]string{"year"}, args)
	if err != nil {
		return err
	}
	_, cal, done, err := cf.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	months := make([]month, 12)
	for m := 1; m <= 12; m++ {
		d, err := cal.Create(vals[0], m, 1)
		if err != nil {
			return err
		}
		months[m-1] = month{
			Month: m,
			Name:  d.MonthName(),
			Start: d.Fixed,
			Days:  d.DaysInMonth,
			Weeks: d.WeeksInMonth,
		}
	}
	return printer{out: c.out, format: cf.Format}.months(months...)
}

func (c *cli) verify(ctx context.Context, values any, _ []string) error {
	vf := values.(*verifyFlags)
	ctx, cal, done, err := vf.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	var opts []symmetry454.VerifyOption
	if vf.Concurrency > 0 {
		opts = append(opts, symmetry454.WithConcurrency(vf.Concurrency))
	}
	if err := cal.VerifyGregorianYears(ctx, vf.FromYear, vf.ToYear, opts...); err != nil {
		return err
	}
	from, _ := cal.GregorianToFixed(vf.FromYear, 1, 1)
	to, _ := cal.GregorianToFixed(vf.ToYear, 1, 1)
	return printer{out: c.out, format: vf.Format}.verified(verification{
		Calendar: cal.String(),
		FromYear: vf.FromYear,
		ToYear:   vf.ToYear,
		Days:     int64(to - from),
	})
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry454

import (
	"fmt"

	"cloudeng.io/datetime"
	"cloudeng.io/errors"
)

var (
	// ErrInvalidArgument is returned for a month outside of 1..12 or
	// a day outside of the month as resolved for its year.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned for years outside of MinYear..MaxYear
	// and for fixed dates outside of the days spanned by those years.
	ErrOutOfRange = errors.New("out of range")
)

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: year %d is not in the range %d..%d", ErrOutOfRange, year, MinYear, MaxYear)
	}
	return nil
}

func checkMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d is not in the range 1..12", ErrInvalidArgument, month)
	}
	return nil
}

// validate checks all of year, month and day and returns every
// problem found. The day is only checked when the year and month are
// valid since its range depends on both.
func validate(year, month, day int, daysInMonth func(year, month int) int) error {
	errs := &errors.M{}
	yerr, merr := checkYear(year), checkMonth(month)
	errs.Append(yerr, merr)
	if yerr == nil && merr == nil {
		if n := daysInMonth(year, month); day < 1 || day > n {
			errs.Append(fmt.Errorf("%w: day %d is not in the range 1..%d for %04d-%02d", ErrInvalidArgument, day, n, year, month))
		}
	} else if day < 1 {
		errs.Append(fmt.Errorf("%w: day %d is less than 1", ErrInvalidArgument, day))
	}
	return errs.Err()
}

func validateGregorian(year, month, day int) error {
	return validate(year, month, day, func(year, month int) int {
		return datetime.DaysInMonth(year, datetime.Month(month))
	})
}

func (cal *Calendar) validate(year, month, day int) error {
	return validate(year, month, day, cal.daysInMonth)
}

func (cal *Calendar) checkFixed(fd FixedDate) error {
	if lo, hi := cal.minFixed(), cal.maxFixed(); fd < lo || fd > hi {
		return fmt.Errorf("%w: fixed date %d is not in the range %d..%d", ErrOutOfRange, fd, lo, hi)
	}
	return nil
}

func (cal *Calendar) minFixed() FixedDate {
	return cal.newYearDay(MinYear)
}

func (cal *Calendar) maxFixed() FixedDate {
	return cal.newYearDay(MaxYear+1) - 1
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry454

import "iter"

// FixedToSym returns the Symmetry date for fd. It returns an error
// wrapping ErrOutOfRange if fd does not fall within a supported year.
func (cal *Calendar) FixedToSym(fd FixedDate) (Date, error) {
	if err := cal.checkFixed(fd); err != nil {
		return Date{}, err
	}
	return cal.fixedToSym(fd), nil
}

func (cal *Calendar) fixedToSym(fd FixedDate) Date {
	year, start := cal.yearOf(fd)
	d := Date{
		Fixed:       fd,
		Year:        year,
		Weekday:     cal.WeekdayOf(fd),
		StartOfYear: start,
		DaysInYear:  364,
		WeeksInYear: 52,
	}
	if cal.IsLeapYear(year) {
		d.DaysInYear, d.WeeksInYear = 371, 53
	}
	d.DayOfYear = int(fd-start) + 1
	d.WeekOfYear = int(ceilDiv(int64(d.DayOfYear), 7))
	// Quarters hold 13 weeks, the 53rd week falls into the fourth.
	d.Quarter = int(ceilDiv(4*int64(d.WeekOfYear), 53))
	d.DayOfQuarter = d.DayOfYear - 91*(d.Quarter-1)
	d.WeekOfQuarter = int(ceilDiv(int64(d.DayOfQuarter), 7))
	if cal.flat {
		d.MonthOfQuarter = int(ceilDiv(2*int64(d.DayOfQuarter), 61))
	} else {
		d.MonthOfQuarter = int(ceilDiv(2*int64(d.WeekOfQuarter), 9))
	}
	// The leap week extends the last month of the quarter.
	d.MonthOfQuarter = min(d.MonthOfQuarter, 3)
	d.Month = 3*(d.Quarter-1) + d.MonthOfQuarter
	d.DaysInMonth = cal.daysInMonth(year, d.Month)
	d.Day = d.DayOfYear - cal.daysBeforeMonth(d.Month)
	if !cal.flat {
		d.WeeksInMonth = cal.weeksInMonth(d.Month)
		d.WeekOfMonth = int(ceilDiv(int64(d.Day), 7))
	}
	return d
}

// Now returns the Symmetry date for the current local Gregorian date
// as reported by the calendar's clock.
func (cal *Calendar) Now() (Date, error) {
	now := cal.clock()
	return cal.Convert(now.Year(), int(now.Month()), now.Day())
}

// Convert returns the Symmetry date for the proleptic Gregorian
// year, month and day.
func (cal *Calendar) Convert(year, month, day int) (Date, error) {
	fd, err := cal.GregorianToFixed(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return cal.FixedToSym(fd)
}

// Create returns the fully populated Symmetry date for year, month
// and day, which are validated.
func (cal *Calendar) Create(year, month, day int) (Date, error) {
	fd, err := cal.SymToFixed(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return cal.FixedToSym(fd)
}

// StartOfMonth returns the first day of the month containing d.
func (cal *Calendar) StartOfMonth(d Date) Date {
	return cal.fixedToSym(d.Fixed - FixedDate(d.Day-1))
}

// Dates returns an iterator over the dates from, to inclusive. Nothing
// is yielded if from is not supported and iteration stops at the last
// supported date.
func (cal *Calendar) Dates(from, to FixedDate) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if cal.checkFixed(from) != nil {
			return
		}
		last := min(to, cal.maxFixed())
		for fd := from; fd <= last; fd++ {
			if !yield(cal.fixedToSym(fd)) {
				return
			}
		}
	}
}

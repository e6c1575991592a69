// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry454

import "cloudeng.io/errors"

// IsLeapYear returns true if the Symmetry year contains a leap week.
// It is defined for every int.
func (cal *Calendar) IsLeapYear(year int) bool {
	// Reduce year first so that the product cannot overflow.
	return floorMod(cal.l*floorMod(int64(year), cal.c)+cal.k, cal.c) < cal.l
}

// NewYearDay returns the fixed date of the first day of the Symmetry year.
// It returns an error wrapping ErrOutOfRange for years outside of
// MinYear..MaxYear.
func (cal *Calendar) NewYearDay(year int) (FixedDate, error) {
	if err := checkYear(year); err != nil {
		return 0, err
	}
	return cal.newYearDay(year), nil
}

func (cal *Calendar) newYearDay(year int) FixedDate {
	e := int64(year) - 1
	return cal.epoch + FixedDate(364*e+7*floorDiv(cal.l*e+cal.k, cal.c))
}

// Range returns the first and last fixed dates supported by the calendar,
// ie. the first day of MinYear and the last day of MaxYear.
func (cal *Calendar) Range() (first, last FixedDate) {
	return cal.minFixed(), cal.maxFixed()
}

// MeanYear returns the mean length of a year in days over the cycle.
func (cal *Calendar) MeanYear() float64 {
	return float64(364*cal.c+7*cal.l) / float64(cal.c)
}

// YearOf returns the Symmetry year containing fd and the fixed date of
// that year's New Year Day. It returns an error wrapping ErrOutOfRange
// if fd is outside of Range.
func (cal *Calendar) YearOf(fd FixedDate) (year int, start FixedDate, err error) {
	if err := cal.checkFixed(fd); err != nil {
		return 0, 0, err
	}
	year, start = cal.yearOf(fd)
	return year, start, nil
}

func (cal *Calendar) yearOf(fd FixedDate) (year int, start FixedDate) {
	// The mean year is (364c + 7l)/c, dividing by it is a multiplication by c.
	y := ceilDiv(int64(fd-cal.epoch)*cal.c, 364*cal.c+7*cal.l)
	year = int(y)
	start = cal.newYearDay(year)
	switch {
	case start > fd:
		year--
		start = cal.newYearDay(year)
	case fd-start >= 364:
		if next := cal.newYearDay(year + 1); fd >= next {
			year++
			start = next
		}
	}
	return
}

// DaysBeforeMonth returns the number of days in a year that precede
// the first day of month. Every third month is a long month.
func (cal *Calendar) DaysBeforeMonth(month int) (int, error) {
	if err := checkMonth(month); err != nil {
		return 0, err
	}
	return cal.daysBeforeMonth(month), nil
}

func (cal *Calendar) daysBeforeMonth(month int) int {
	if cal.flat {
		return 30*(month-1) + month/3
	}
	return 28*(month-1) + 7*(month/3)
}

// DayOfYear returns the 1-based day of the year for the Symmetry date.
func (cal *Calendar) DayOfYear(year, month, day int) (int, error) {
	if err := cal.validate(year, month, day); err != nil {
		return 0, err
	}
	return cal.dayOfYear(month, day), nil
}

func (cal *Calendar) dayOfYear(month, day int) int {
	return cal.daysBeforeMonth(month) + day
}

func checkYearMonth(year, month int) error {
	return errors.NewM(checkYear(year), checkMonth(month))
}

// DaysInMonth returns the number of days in month of year. The leap
// week, when present, is appended to month 12.
func (cal *Calendar) DaysInMonth(year, month int) (int, error) {
	if err := checkYearMonth(year, month); err != nil {
		return 0, err
	}
	return cal.daysInMonth(year, month), nil
}

func (cal *Calendar) daysInMonth(year, month int) int {
	long := (month % 3) / 2
	var days int
	if cal.flat {
		days = 30 + long
	} else {
		days = 28 + 7*long
	}
	if month == 12 && cal.IsLeapYear(year) {
		days += 7
	}
	return days
}

// WeeksInMonth returns the nominal number of weeks in month for 4-5-4
// calendars, 4 or 5, and zero for calendars with flat months. The leap
// week does not change the nominal count for December.
func (cal *Calendar) WeeksInMonth(year, month int) (int, error) {
	if err := checkYearMonth(year, month); err != nil {
		return 0, err
	}
	return cal.weeksInMonth(month), nil
}

func (cal *Calendar) weeksInMonth(month int) int {
	if cal.flat {
		return 0
	}
	return 4 + (month%3)/2
}

// WeekdayOf returns the day of the week of fd. It is defined for
// every FixedDate.
func (cal *Calendar) WeekdayOf(fd FixedDate) Weekday {
	return Weekday(floorMod(floorMod(int64(fd), 7)-cal.weekdayAdjust, 7))
}

// SymToFixed returns the fixed date for the Symmetry year, month and day.
// It returns an error wrapping ErrInvalidArgument or ErrOutOfRange if
// the date is not valid.
func (cal *Calendar) SymToFixed(year, month, day int) (FixedDate, error) {
	if err := cal.validate(year, month, day); err != nil {
		return 0, err
	}
	return cal.symToFixed(year, month, day), nil
}

func (cal *Calendar) symToFixed(year, month, day int) FixedDate {
	return cal.newYearDay(year) + FixedDate(cal.dayOfYear(month, day)-1)
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry454

import "cloudeng.io/datetime"

// IsGregorianLeapYear returns true if year is a leap year in the
// proleptic Gregorian calendar.
func IsGregorianLeapYear(year int) bool {
	return datetime.IsLeap(year)
}

// GregorianOrdinalDay returns the 1-based day of the Gregorian year
// for month and day. It returns an error wrapping ErrInvalidArgument or
// ErrOutOfRange if the date is not valid.
func GregorianOrdinalDay(year, month, day int) (int, error) {
	if err := validateGregorian(year, month, day); err != nil {
		return 0, err
	}
	return gregorianOrdinalDay(year, month, day), nil
}

func gregorianOrdinalDay(year, month, day int) int {
	od := int(floorDiv(367*int64(month)-362, 12)) + day
	if month > 2 {
		if IsGregorianLeapYear(year) {
			od--
		} else {
			od -= 2
		}
	}
	return od
}

// gregorianElapsed returns the number of days in the Gregorian years
// preceding year.
func gregorianElapsed(year int) int64 {
	p := int64(year) - 1
	return 365*p + floorDiv(p, 4) - floorDiv(p, 100) + floorDiv(p, 400)
}

// PriorElapsedDays returns the fixed date of the last day of the
// Gregorian year preceding year. The Gregorian calendar shares the
// epoch of the Symmetry calendar. It returns an error wrapping
// ErrOutOfRange for years outside of MinYear..MaxYear.
func (cal *Calendar) PriorElapsedDays(year int) (FixedDate, error) {
	if err := checkYear(year); err != nil {
		return 0, err
	}
	return cal.priorElapsedDays(year), nil
}

func (cal *Calendar) priorElapsedDays(year int) FixedDate {
	return cal.epoch + FixedDate(gregorianElapsed(year)) - 1
}

// GregorianToFixed returns the fixed date for the proleptic Gregorian
// year, month and day. It returns an error wrapping ErrInvalidArgument
// or ErrOutOfRange if the date is not valid.
func (cal *Calendar) GregorianToFixed(year, month, day int) (FixedDate, error) {
	if err := validateGregorian(year, month, day); err != nil {
		return 0, err
	}
	return cal.gregorianToFixed(year, month, day), nil
}

func (cal *Calendar) gregorianToFixed(year, month, day int) FixedDate {
	return cal.priorElapsedDays(year) + FixedDate(gregorianOrdinalDay(year, month, day))
}

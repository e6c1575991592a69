// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package symmetry454 provides conversions between the proleptic
// Gregorian calendar and the Symmetry454 perpetual calendar, including
// its Symmetry010 variant with flat 30-31-30 day months.
//
// All conversions pass through a FixedDate, a rata die style day count
// shared by both calendars. A Symmetry year has 52 weeks, 364 days, with
// a leap week appended to December in leap years. Leap years are spread
// evenly over a multi-century cycle, either 52 leap years in 293 (the
// default, tracking the northward equinox) or 69 in 389 (tracking the
// north solstice).
//
//	cal := symmetry454.New()
//	d, err := cal.Convert(2009, 4, 5) // Gregorian 2009-04-05
//	fd, err := cal.SymToFixed(d.Year, d.Month, d.Day)
//
// A Calendar is immutable once created and is safe for concurrent use.
// Invalid dates are reported with errors that wrap ErrInvalidArgument or
// ErrOutOfRange, all problems with a date are reported together via
// cloudeng.io/errors.M.
package symmetry454

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry454

import "time"

// FixedDate is a day count, rata die style, where day 1 is the epoch of
// the Calendar that produced it. It is the common axis through which
// all conversions pass.
type FixedDate int64

// Weekday is the day of the week of a FixedDate, 0 is Sunday.
type Weekday int

// String returns the English name of the day.
func (d Weekday) String() string {
	return time.Weekday(d).String()
}

const (
	// MinYear and MaxYear bound the years, Symmetry and Gregorian,
	// that are supported. All arithmetic within these bounds fits
	// comfortably in an int64.
	MinYear = -1_000_000
	MaxYear = 1_000_000
)

// floorDiv returns floor(a/b) for b > 0.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// floorMod returns a mod b in the range [0, b) for b > 0.
func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ceilDiv returns ceil(a/b) for b > 0.
func ceilDiv(a, b int64) int64 {
	return -floorDiv(-a, b)
}

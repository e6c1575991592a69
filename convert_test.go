// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry454_test

import (
	"fmt"
	"testing"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/symmetry454"
)

func gregorianSpan(t *testing.T, cal *symmetry454.Calendar, fromYear, toYear int) (from, to symmetry454.FixedDate) {
	t.Helper()
	from, err := cal.GregorianToFixed(fromYear, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	to, err = cal.GregorianToFixed(toYear, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	return from, to
}

func TestRoundTrip(t *testing.T) {
	for _, cal := range allConfigurations {
		from, to := gregorianSpan(t, cal, 1800, 2500)
		for fd := from; fd < to; fd++ {
			d, err := cal.FixedToSym(fd)
			if err != nil {
				t.Fatalf("%v: %v: %v", cal, fd, err)
			}
			got, err := cal.SymToFixed(d.Year, d.Month, d.Day)
			if err != nil {
				t.Fatalf("%v: %v: %v: %v", cal, fd, d, err)
			}
			if got != fd {
				t.Fatalf("%v: %v: got %v, want %v", cal, d, got, fd)
			}
		}
	}
}

func TestRoundTripExtremes(t *testing.T) {
	for _, cal := range allConfigurations {
		for _, year := range []int{symmetry454.MinYear, -100_000, -1, 0, 1, 100_000, symmetry454.MaxYear} {
			start := newYearDay(t, cal, year)
			for fd := start - 7; fd < start+7; fd++ {
				d, err := cal.FixedToSym(fd)
				if year == symmetry454.MinYear && fd < start {
					if !errors.Is(err, symmetry454.ErrOutOfRange) {
						t.Errorf("%v: %v: expected out of range: %v", cal, fd, err)
					}
					continue
				}
				if err != nil {
					t.Errorf("%v: %v: %v", cal, fd, err)
					continue
				}
				if fd >= start && d.Year != year {
					t.Errorf("%v: %v: got %v, want %v", cal, fd, d.Year, year)
				}
				got, err := cal.SymToFixed(d.Year, d.Month, d.Day)
				if err != nil {
					t.Errorf("%v: %v: %v", cal, fd, err)
					continue
				}
				if got != fd {
					t.Errorf("%v: %v: got %v, want %v", cal, d, got, fd)
				}
			}
		}
		_, last := cal.Range()
		if _, err := cal.FixedToSym(last + 1); !errors.Is(err, symmetry454.ErrOutOfRange) {
			t.Errorf("%v: expected out of range: %v", cal, err)
		}
	}
}

func TestYearBoundaries(t *testing.T) {
	for _, cal := range allConfigurations {
		for year := 1990; year < 2030; year++ {
			start := newYearDay(t, cal, year)
			first, err := cal.FixedToSym(start)
			if err != nil {
				t.Fatal(err)
			}
			if first.Year != year || first.Month != 1 || first.Day != 1 || first.DayOfYear != 1 || first.WeekOfYear != 1 || first.Quarter != 1 {
				t.Errorf("%v: %v: unexpected first day: %+v", cal, year, first)
			}
			if got, want := first.StartOfYear, start; got != want {
				t.Errorf("%v: %v: got %v, want %v", cal, year, got, want)
			}
			last, err := cal.FixedToSym(start - 1)
			if err != nil {
				t.Fatal(err)
			}
			if got, want := last.Year, year-1; got != want {
				t.Errorf("%v: %v: got %v, want %v", cal, year, got, want)
			}
			if got, want := last.DayOfYear, last.DaysInYear; got != want {
				t.Errorf("%v: %v: got %v, want %v", cal, year, got, want)
			}
			if got, want := last.Month, 12; got != want {
				t.Errorf("%v: %v: got %v, want %v", cal, year, got, want)
			}
			if got, want := last.Day, last.DaysInMonth; got != want {
				t.Errorf("%v: %v: got %v, want %v", cal, year, got, want)
			}
			if got, want := last.WeekOfYear, last.WeeksInYear; got != want {
				t.Errorf("%v: %v: got %v, want %v", cal, year, got, want)
			}
		}
	}
}

func TestLeapDecember(t *testing.T) {
	d, err := defaultCal.FixedToSym(newYearDay(t, defaultCal, 2010) - 1)
	if err != nil {
		t.Fatal(err)
	}
	want := symmetry454.Date{
		Fixed:          733775,
		Year:           2009,
		Month:          12,
		Day:            35,
		Weekday:        0,
		StartOfYear:    733405,
		DaysInYear:     371,
		WeeksInYear:    53,
		DayOfYear:      371,
		WeekOfYear:     53,
		Quarter:        4,
		MonthOfQuarter: 3,
		WeekOfQuarter:  14,
		DayOfQuarter:   98,
		WeekOfMonth:    5,
		WeeksInMonth:   4,
		DaysInMonth:    35,
	}
	if got := d; got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	d, err = altCalendarCal.FixedToSym(newYearDay(t, altCalendarCal, 2010) - 1)
	if err != nil {
		t.Fatal(err)
	}
	want.Day, want.DaysInMonth, want.WeekOfMonth, want.WeeksInMonth = 37, 37, 0, 0
	if got := d; got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFieldConsistency(t *testing.T) {
	for _, cal := range allConfigurations {
		flat := cal.Config().AltCalendar
		from, to := gregorianSpan(t, cal, 2000, 2040)
		prev, err := cal.FixedToSym(from - 1)
		if err != nil {
			t.Fatal(err)
		}
		for d := range cal.Dates(from, to) {
			if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > d.DaysInMonth {
				t.Fatalf("%v: invalid month/day: %+v", cal, d)
			}
			if n, err := cal.DaysInMonth(d.Year, d.Month); err != nil || d.DaysInMonth != n {
				t.Fatalf("%v: %v: got %v, want %v: %v", cal, d, d.DaysInMonth, n, err)
			}
			if got, want := d.Month, 3*(d.Quarter-1)+d.MonthOfQuarter; got != want {
				t.Fatalf("%v: %v: got %v, want %v", cal, d, got, want)
			}
			if d.Quarter < 1 || d.Quarter > 4 || d.MonthOfQuarter < 1 || d.MonthOfQuarter > 3 {
				t.Fatalf("%v: invalid quarter: %+v", cal, d)
			}
			if got, want := d.DayOfYear, 91*(d.Quarter-1)+d.DayOfQuarter; got != want {
				t.Fatalf("%v: %v: got %v, want %v", cal, d, got, want)
			}
			if got, want := d.Weekday, cal.WeekdayOf(d.Fixed); got != want || got < 0 || got > 6 {
				t.Fatalf("%v: %v: got %v, want %v", cal, d, got, want)
			}
			if flat {
				if d.WeekOfMonth != 0 || d.WeeksInMonth != 0 {
					t.Fatalf("%v: weeks set for flat months: %+v", cal, d)
				}
			} else {
				if got, want := d.WeeksInMonth, 4+(d.Month%3)/2; got != want {
					t.Fatalf("%v: %v: got %v, want %v", cal, d, got, want)
				}
				// The leap week is the fifth week of a four week December.
				maxWeek := d.WeeksInMonth
				if d.Month == 12 && d.DaysInYear == 371 {
					maxWeek++
				}
				if d.WeekOfMonth < 1 || d.WeekOfMonth > maxWeek || maxWeek*7 != d.DaysInMonth {
					t.Fatalf("%v: invalid week of month: %+v", cal, d)
				}
				// Every month starts on a Monday.
				if d.Day == 1 && d.Weekday.String() != "Monday" {
					t.Fatalf("%v: month does not start on a Monday: %+v", cal, d)
				}
			}
			if got, want := d.Weekday, (prev.Weekday+1)%7; got != want {
				t.Fatalf("%v: %v: got %v, want %v", cal, d, got, want)
			}
			if d.Year == prev.Year && d.DayOfYear != prev.DayOfYear+1 {
				t.Fatalf("%v: %v follows %v", cal, d, prev)
			}
			prev = d
		}
		if got, want := prev.Fixed, to; got != want {
			t.Errorf("%v: got %v, want %v", cal, got, want)
		}
	}
}

func TestConvert(t *testing.T) {
	for _, tc := range []struct {
		cal     *symmetry454.Calendar
		y, m, d int
		want    string
		weekday string
	}{
		{defaultCal, 2009, 1, 1, "2009-01-04", "Thursday"},
		{defaultCal, 2008, 12, 29, "2009-01-01", "Monday"},
		{defaultCal, 2010, 1, 3, "2009-12-35", "Sunday"},
		{defaultCal, 2010, 1, 4, "2010-01-01", "Monday"},
		{altCalendarCal, 2009, 1, 1, "2009-01-04", "Thursday"},
		{altCalendarCal, 2010, 1, 3, "2009-12-37", "Sunday"},
		{altEpochCal, 2009, 1, 1, "2009-01-04", "Thursday"},
	} {
		d, err := tc.cal.Convert(tc.y, tc.m, tc.d)
		if err != nil {
			t.Errorf("%v: %04d-%02d-%02d: %v", tc.cal, tc.y, tc.m, tc.d, err)
			continue
		}
		if got, want := d.ISO(), tc.want; got != want {
			t.Errorf("%v: %04d-%02d-%02d: got %v, want %v", tc.cal, tc.y, tc.m, tc.d, got, want)
		}
		if got, want := d.Weekday.String(), tc.weekday; got != want {
			t.Errorf("%v: %04d-%02d-%02d: got %v, want %v", tc.cal, tc.y, tc.m, tc.d, got, want)
		}
	}
}

func TestCreate(t *testing.T) {
	d, err := defaultCal.Create(2009, 4, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Fixed, symmetry454.FixedDate(733500); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.ISO(), "2009-04-05"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.MonthName(), "April"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Quarter, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.WeekOfMonth, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !d.IsLeapYear() {
		t.Errorf("2009 should be a leap year")
	}

	som := defaultCal.StartOfMonth(d)
	if got, want := som.ISO(), "2009-04-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := som.Fixed, d.Fixed-4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNow(t *testing.T) {
	clock := func() time.Time {
		return time.Date(2009, 1, 1, 23, 59, 0, 0, time.UTC)
	}
	cal := symmetry454.New(symmetry454.WithClock(clock))
	d, err := cal.Now()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Fixed, symmetry454.FixedDate(733408); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := defaultCal.Now(); err != nil {
		t.Fatal(err)
	}
}

func TestValidation(t *testing.T) {
	nerrs := func(err error) int {
		var m *errors.M
		if errors.As(err, &m) {
			return len(m.Unwrap())
		}
		return 1
	}
	for _, tc := range []struct {
		y, m, d int
		target  error
		n       int
	}{
		{2010, 12, 29, symmetry454.ErrInvalidArgument, 1},
		{2009, 12, 36, symmetry454.ErrInvalidArgument, 1},
		{2009, 13, 1, symmetry454.ErrInvalidArgument, 1},
		{2009, 0, 0, symmetry454.ErrInvalidArgument, 2},
		{2009, 2, 36, symmetry454.ErrInvalidArgument, 1},
		{symmetry454.MaxYear + 1, 1, 1, symmetry454.ErrOutOfRange, 1},
		{symmetry454.MinYear - 1, 13, -1, symmetry454.ErrOutOfRange, 3},
	} {
		_, err := defaultCal.SymToFixed(tc.y, tc.m, tc.d)
		if !errors.Is(err, tc.target) {
			t.Errorf("%04d-%02d-%02d: expected %v: got %v", tc.y, tc.m, tc.d, tc.target, err)
			continue
		}
		if got, want := nerrs(err), tc.n; got != want {
			t.Errorf("%04d-%02d-%02d: got %v, want %v: %v", tc.y, tc.m, tc.d, got, want, err)
		}
		if _, err := defaultCal.Create(tc.y, tc.m, tc.d); !errors.Is(err, tc.target) {
			t.Errorf("%04d-%02d-%02d: expected %v: got %v", tc.y, tc.m, tc.d, tc.target, err)
		}
	}

	if _, err := altCalendarCal.SymToFixed(2010, 2, 31); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := altCalendarCal.SymToFixed(2010, 1, 31); !errors.Is(err, symmetry454.ErrInvalidArgument) {
		t.Errorf("expected an error: %v", err)
	}

	for _, tc := range []struct {
		y, m, d int
		target  error
	}{
		{2009, 2, 29, symmetry454.ErrInvalidArgument},
		{2009, 4, 31, symmetry454.ErrInvalidArgument},
		{2009, 0, 1, symmetry454.ErrInvalidArgument},
		{2009, 1, 0, symmetry454.ErrInvalidArgument},
		{symmetry454.MaxYear + 1, 1, 1, symmetry454.ErrOutOfRange},
	} {
		if _, err := defaultCal.GregorianToFixed(tc.y, tc.m, tc.d); !errors.Is(err, tc.target) {
			t.Errorf("%04d-%02d-%02d: expected %v: got %v", tc.y, tc.m, tc.d, tc.target, err)
		}
		if _, err := defaultCal.Convert(tc.y, tc.m, tc.d); !errors.Is(err, tc.target) {
			t.Errorf("%04d-%02d-%02d: expected %v: got %v", tc.y, tc.m, tc.d, tc.target, err)
		}
	}
	if _, err := defaultCal.GregorianToFixed(2008, 2, 29); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDates(t *testing.T) {
	start := newYearDay(t, defaultCal, 2009)
	n := 0
	for d := range defaultCal.Dates(start, newYearDay(t, defaultCal, 2010)-1) {
		if got, want := d.Fixed, start+symmetry454.FixedDate(n); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		n++
	}
	if got, want := n, 371; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	n = 0
	for range defaultCal.Dates(start, start+100) {
		n++
		if n == 10 {
			break
		}
	}
	if got, want := n, 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	first, last := defaultCal.Range()
	tail := defaultCal.Dates(last-2, last+5)
	for range 2 {
		n = 0
		for d := range tail {
			if d.Year != symmetry454.MaxYear {
				t.Errorf("unexpected date: %v", d)
			}
			n++
		}
		if got, want := n, 3; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	n = 0
	for range defaultCal.Dates(first-2, first+5) {
		n++
	}
	if got, want := n, 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	n = 0
	for range defaultCal.Dates(first, first+5) {
		n++
	}
	if got, want := n, 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateFormatting(t *testing.T) {
	for _, tc := range []struct {
		d    symmetry454.Date
		iso  string
		name string
	}{
		{symmetry454.Date{Year: 2009, Month: 4, Day: 5}, "2009-04-05", "April"},
		{symmetry454.Date{Year: 12, Month: 12, Day: 35}, "0012-12-35", "December"},
		{symmetry454.Date{Year: -44, Month: 3, Day: 15}, "-0044-03-15", "March"},
		{symmetry454.Date{Year: 12345, Month: 1, Day: 1}, "12345-01-01", "January"},
		{symmetry454.Date{}, "0000-00-00", ""},
	} {
		if got, want := tc.d.ISO(), tc.iso; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := tc.d.String(), tc.iso; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := tc.d.MonthName(), tc.name; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func ExampleCalendar_Convert() {
	cal := symmetry454.New()
	d, err := cal.Convert(2009, 1, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.ISO(), d.Weekday, d.MonthName(), d.WeekOfYear)
	// Output:
	// 2009-01-04 Thursday January 1
}

func ExampleCalendar_Create() {
	cal := symmetry454.New(symmetry454.WithAltCalendar(true))
	d, err := cal.Create(2009, 12, 37)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.Fixed, d.DayOfYear, d.DaysInYear)
	// Output:
	// 733775 371 371
}

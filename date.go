// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry454

import "fmt"

// MonthNames contains the English names of the months, MonthNames[0]
// is January.
var MonthNames = []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}

// Date represents a fixed date decomposed into the fields of a Symmetry
// calendar. WeekOfMonth and WeeksInMonth are zero for calendars with
// flat 30-31-30 day months.
type Date struct {
	Fixed          FixedDate `yaml:"fixed" json:"fixed"`
	Year           int       `yaml:"year" json:"year"`
	Month          int       `yaml:"month" json:"month"`
	Day            int       `yaml:"day" json:"day"`
	Weekday        Weekday   `yaml:"weekday" json:"weekday"`
	StartOfYear    FixedDate `yaml:"start_of_year" json:"start_of_year"`
	DaysInYear     int       `yaml:"days_in_year" json:"days_in_year"`
	WeeksInYear    int       `yaml:"weeks_in_year" json:"weeks_in_year"`
	DayOfYear      int       `yaml:"day_of_year" json:"day_of_year"`
	WeekOfYear     int       `yaml:"week_of_year" json:"week_of_year"`
	Quarter        int       `yaml:"quarter" json:"quarter"`
	MonthOfQuarter int       `yaml:"month_of_quarter" json:"month_of_quarter"`
	WeekOfQuarter  int       `yaml:"week_of_quarter" json:"week_of_quarter"`
	DayOfQuarter   int       `yaml:"day_of_quarter" json:"day_of_quarter"`
	WeekOfMonth    int       `yaml:"week_of_month,omitempty" json:"week_of_month,omitempty"`
	WeeksInMonth   int       `yaml:"weeks_in_month,omitempty" json:"weeks_in_month,omitempty"`
	DaysInMonth    int       `yaml:"days_in_month" json:"days_in_month"`
}

// ISO returns the date in YYYY-MM-DD form.
func (d Date) ISO() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) String() string {
	return d.ISO()
}

// MonthName returns the English name of the date's month.
func (d Date) MonthName() string {
	if d.Month < 1 || d.Month > 12 {
		return ""
	}
	return MonthNames[d.Month-1]
}

// IsLeapYear returns true if the date's year contains a leap week.
func (d Date) IsLeapYear() bool {
	return d.DaysInYear == 371
}

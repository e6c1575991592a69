// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"cloudeng.io/symmetry454"
	"gopkg.in/yaml.v3"
)

type leapYear struct {
	Year       int                   `yaml:"year" json:"year"`
	Leap       bool                  `yaml:"leap" json:"leap"`
	NewYearDay symmetry454.FixedDate `yaml:"new_year_day" json:"new_year_day"`
	Days       int                   `yaml:"days" json:"days"`
}

type month struct {
	Month int                   `yaml:"month" json:"month"`
	Name  string                `yaml:"name" json:"name"`
	Start symmetry454.FixedDate `yaml:"start" json:"start"`
	Days  int                   `yaml:"days" json:"days"`
	Weeks int                   `yaml:"weeks,omitempty" json:"weeks,omitempty"`
}

type verification struct {
	Calendar string `yaml:"calendar" json:"calendar"`
	FromYear int    `yaml:"from_year" json:"from_year"`
	ToYear   int    `yaml:"to_year" json:"to_year"`
	Days     int64  `yaml:"days" json:"days"`
}

type printer struct {
	out    io.Writer
	format string
}

func (p printer) encode(v any) error {
	switch p.format {
	case "yaml":
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unsupported format: %q", p.format)
}

func (p printer) dates(dates ...symmetry454.Date) error {
	if p.format != "text" && p.format != "" {
		return p.encode(dates)
	}
	for _, d := range dates {
		fmt.Fprintf(p.out, "%s %-9s %s fixed=%d day-of-year=%d/%d week=%d/%d quarter=%d",
			d.ISO(), d.Weekday, d.MonthName(), d.Fixed,
			d.DayOfYear, d.DaysInYear, d.WeekOfYear, d.WeeksInYear, d.Quarter)
		if d.WeeksInMonth > 0 {
			fmt.Fprintf(p.out, " week-of-month=%d/%d", d.WeekOfMonth, d.WeeksInMonth)
		}
		fmt.Fprintf(p.out, " days-in-month=%d\n", d.DaysInMonth)
	}
	return nil
}

func (p printer) leapYears(years ...leapYear) error {
	if p.format != "text" && p.format != "" {
		return p.encode(years)
	}
	for _, y := range years {
		fmt.Fprintf(p.out, "%d leap=%v new-year-day=%d days=%d\n", y.Year, y.Leap, y.NewYearDay, y.Days)
	}
	return nil
}

func (p printer) months(months ...month) error {
	if p.format != "text" && p.format != "" {
		return p.encode(months)
	}
	for _, m := range months {
		fmt.Fprintf(p.out, "%2d %-9s start=%d days=%d", m.Month, m.Name, m.Start, m.Days)
		if m.Weeks > 0 {
			fmt.Fprintf(p.out, " weeks=%d", m.Weeks)
		}
		fmt.Fprintln(p.out)
	}
	return nil
}

func (p printer) verified(v verification) error {
	if p.format != "text" && p.format != "" {
		return p.encode(v)
	}
	_, err := fmt.Fprintf(p.out, "verified %d days from %d to %d: %s\n", v.Days, v.FromYear, v.ToYear, v.Calendar)
	return err
}

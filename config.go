// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry454

import (
	"fmt"
	"time"
)

// Cycle represents the leap year cycle of a Symmetry calendar. A cycle of
// Years years contains exactly LeapYears leap years, distributed such
// that year y is a leap year iff (LeapYears*y + Offset) mod Years < LeapYears.
type Cycle struct {
	Years     int // c
	LeapYears int // l
	Offset    int // k
}

var (
	// EquinoxCycle approximates the mean northward equinox year and is
	// the default. Its Offset of (Years-1)/2 arranges the leap years
	// symmetrically within the cycle.
	EquinoxCycle = Cycle{Years: 293, LeapYears: 52, Offset: 146}

	// SolsticeCycle approximates the mean north solstice year.
	SolsticeCycle = Cycle{Years: 389, LeapYears: 69, Offset: 194}
)

func (c Cycle) String() string {
	return fmt.Sprintf("%d leap years in %d (offset %d)", c.LeapYears, c.Years, c.Offset)
}

const (
	// DefaultEpoch is the fixed date of Symmetry year 1, month 1, day 1
	// aligned with the proleptic Gregorian 1 BCE/1 CE boundary.
	DefaultEpoch FixedDate = 1

	// AltEpoch anchors the fixed date axis such that Gregorian
	// 2001-01-01 is fixed date 1.
	AltEpoch FixedDate = -730484
)

// Config represents the configuration of a Calendar. It can be read from
// a YAML file using cloudeng.io/cmdutil.ParseYAMLConfigFile.
type Config struct {
	AltCalendar bool `yaml:"alt_calendar" cmd:"use flat 30-31-30 day months (Symmetry010) rather than 4-5-4 week months"`
	AltCycle    bool `yaml:"alt_cycle" cmd:"use the 389 year solstice cycle rather than the 293 year equinox cycle"`
	AltEpoch    bool `yaml:"alt_epoch" cmd:"anchor fixed dates at 2001-01-01 rather than the CCUE rata die"`
}

// NewCalendar returns a new Calendar for the configuration. Any options
// supplied are applied after the configuration.
func (c Config) NewCalendar(opts ...Option) *Calendar {
	all := make([]Option, 0, len(opts)+3)
	all = append(all,
		WithAltCalendar(c.AltCalendar),
		WithAltCycle(c.AltCycle),
		WithAltEpoch(c.AltEpoch))
	return New(append(all, opts...)...)
}

// Option represents an option to New.
type Option func(o *options)

type options struct {
	Config
	clock func() time.Time
}

// WithAltCalendar selects flat 30/31 day months in place of
// 4-5-4 week months.
func WithAltCalendar(v bool) Option {
	return func(o *options) {
		o.AltCalendar = v
	}
}

// WithAltCycle selects SolsticeCycle in place of EquinoxCycle.
func WithAltCycle(v bool) Option {
	return func(o *options) {
		o.AltCycle = v
	}
}

// WithAltEpoch selects AltEpoch in place of DefaultEpoch.
func WithAltEpoch(v bool) Option {
	return func(o *options) {
		o.AltEpoch = v
	}
}

// WithClock sets the function used by Now to obtain the current time.
// The default is time.Now.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// Calendar performs conversions between fixed dates, the proleptic
// Gregorian calendar and a Symmetry calendar. A Calendar is immutable
// and may be used concurrently.
type Calendar struct {
	cfg           Config
	flat          bool
	c, l, k       int64
	epoch         FixedDate
	weekdayAdjust int64
	clock         func() time.Time
}

// New returns a new Calendar. With no options it uses 4-5-4 months,
// the equinox cycle and the default epoch.
func New(opts ...Option) *Calendar {
	o := options{clock: time.Now}
	for _, fn := range opts {
		fn(&o)
	}
	cycle := EquinoxCycle
	if o.AltCycle {
		cycle = SolsticeCycle
	}
	epoch := DefaultEpoch
	if o.AltEpoch {
		epoch = AltEpoch
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	return &Calendar{
		cfg:           o.Config,
		flat:          o.AltCalendar,
		c:             int64(cycle.Years),
		l:             int64(cycle.LeapYears),
		k:             int64(cycle.Offset),
		epoch:         epoch,
		weekdayAdjust: floorMod(int64(epoch)-1, 7),
		clock:         o.clock,
	}
}

// Config returns the configuration used to create the calendar.
func (cal *Calendar) Config() Config {
	return cal.cfg
}

// Cycle returns the leap year cycle used by the calendar.
func (cal *Calendar) Cycle() Cycle {
	return Cycle{Years: int(cal.c), LeapYears: int(cal.l), Offset: int(cal.k)}
}

// Epoch returns the fixed date of year 1, month 1, day 1.
func (cal *Calendar) Epoch() FixedDate {
	return cal.epoch
}

func (cal *Calendar) String() string {
	months := "4-5-4 weeks"
	if cal.flat {
		months = "30-31-30 days"
	}
	return fmt.Sprintf("symmetry calendar: months %s, cycle %v, epoch %d", months, cal.Cycle(), cal.epoch)
}

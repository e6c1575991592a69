// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry454

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

// ErrRoundTrip is wrapped by the errors returned by VerifyRoundTrip for
// fixed dates that do not survive conversion to a Symmetry date and back.
var ErrRoundTrip = errors.New("round trip mismatch")

// VerifyOption represents an option to VerifyRoundTrip.
type VerifyOption func(o *verifyOptions)

type verifyOptions struct {
	concurrency int
}

// WithConcurrency sets the number of goroutines used to verify a range,
// the default is runtime.GOMAXPROCS(0).
func WithConcurrency(n int) VerifyOption {
	return func(o *verifyOptions) {
		o.concurrency = n
	}
}

// VerifyRoundTrip checks that every fixed date in from, to inclusive
// converts to a Symmetry date that converts back to the same fixed date.
// All mismatches are returned as an errors.M whose entries wrap ErrRoundTrip.
// The range is split across goroutines that share the calendar. Progress
// is logged at debug level, and a summary at info level, to the logger
// in ctx (see cloudeng.io/logging/ctxlog).
func (cal *Calendar) VerifyRoundTrip(ctx context.Context, from, to FixedDate, opts ...VerifyOption) error {
	o := verifyOptions{concurrency: runtime.GOMAXPROCS(0)}
	for _, fn := range opts {
		fn(&o)
	}
	if from > to {
		from, to = to, from
	}
	if err := errors.NewM(cal.checkFixed(from), cal.checkFixed(to)); err != nil {
		return err
	}
	total := int64(to-from) + 1
	workers := int64(max(o.concurrency, 1))
	chunk := max(ceilDiv(total, workers), 1)

	logger := ctxlog.Logger(ctx)
	start := time.Now()
	mismatches := &errors.M{}
	g, ctx := errgroup.WithContext(ctx)
	for lo := from; lo <= to; lo += FixedDate(chunk) {
		hi := min(lo+FixedDate(chunk)-1, to)
		g.Go(func() error {
			n, err := cal.verifyChunk(ctx, lo, hi, mismatches)
			logger.Debug("round trip chunk", "from", lo, "to", hi, "mismatches", n)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	err := mismatches.Err()
	logger.Info("round trip verified", "calendar", cal.String(), "from", from, "to", to, "days", total, "failed", err != nil, "duration", time.Since(start))
	return err
}

func (cal *Calendar) verifyChunk(ctx context.Context, from, to FixedDate, mismatches *errors.M) (int, error) {
	n := 0
	for fd := from; fd <= to; fd++ {
		if (fd-from)%4096 == 0 {
			select {
			case <-ctx.Done():
				return n, ctx.Err()
			default:
			}
		}
		d := cal.fixedToSym(fd)
		if got := cal.symToFixed(d.Year, d.Month, d.Day); got != fd {
			mismatches.Append(fmt.Errorf("%w: %d -> %v -> %d", ErrRoundTrip, fd, d, got))
			n++
		}
	}
	return n, nil
}

// VerifyGregorianYears calls VerifyRoundTrip for the fixed dates from
// the first day of Gregorian year fromYear up to, but excluding, the
// first day of Gregorian year toYear.
func (cal *Calendar) VerifyGregorianYears(ctx context.Context, fromYear, toYear int, opts ...VerifyOption) error {
	from, err := cal.GregorianToFixed(fromYear, 1, 1)
	if err != nil {
		return err
	}
	to, err := cal.GregorianToFixed(toYear, 1, 1)
	if err != nil {
		return err
	}
	if to <= from {
		return fmt.Errorf("%w: year %d is not after %d", ErrInvalidArgument, toYear, fromYear)
	}
	return cal.VerifyRoundTrip(ctx, from, to-1, opts...)
}

// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package retry provides a function for retrying an operation.
package retry

import (
	"context"
	"errors"
	"math"
	"time"

	"zombiezen.com/go/log"
)

// A BackoffStrategy can be called repeatedly to obtain (presumably) increasing
// durations to wait between retries.
type BackoffStrategy interface {
	Duration() time.Duration
}

// Do calls a function repeatedly with backoff until it returns a nil error.
// Do returns an error if the passed-in function does not return nil before the
// Context is Done or if the function returns an error wrapped with Permanent.
// In the latter case, Do returns the error passed to Permanent. The function is
// guaranteed to be called at least once.
//
// The operation should be a verb phrase like "talking to Alice" for logging.
func Do(ctx context.Context, operation string, strategy BackoffStrategy, f func() error) error {
	var t *time.Timer
	for {
		err := f()
		if err == nil {
			return nil
		}
		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		d := strategy.Duration()
		if d > 0 {
			log.Warnf(ctx, "Error %s (will retry in %v): %v", operation, d, err)
			if t == nil {
				t = time.NewTimer(d)
				defer t.Stop()
			} else {
				t.Reset(d)
			}
			select {
			case <-t.C:
			case <-ctx.Done():
				return err
			}
		} else {
			log.Warnf(ctx, "Error %s (will retry): %v", operation, err)
			select {
			case <-ctx.Done():
				return err
			default:
			}
		}
	}
}

// Permanent wraps an error to signal to Do that the operation must not be
// retried. Permanent(nil) returns nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Exponential is a BackoffStrategy that multiplies the wait time by Factor
// after every call, starting at Initial and never exceeding Max. A zero Max
// means no upper bound. A Factor less than 1 is treated as 2.
//
// Exponential keeps state, so each retry loop should use its own value.
type Exponential struct {
	Initial time.Duration
	Max     time.Duration
	Factor  float64

	next time.Duration
}

// Duration returns the next duration to wait.
func (e *Exponential) Duration() time.Duration {
	if e.next == 0 {
		e.next = e.Initial
	}
	d := e.next
	factor := e.Factor
	if factor < 1 {
		factor = 2
	}
	// Saturate instead of overflowing into a negative wait.
	if next := float64(e.next) * factor; next >= float64(math.MaxInt64) {
		e.next = math.MaxInt64
	} else {
		e.next = time.Duration(next)
	}
	if e.Max > 0 && e.next > e.Max {
		e.next = e.Max
	}
	if e.Max > 0 && d > e.Max {
		d = e.Max
	}
	return d
}

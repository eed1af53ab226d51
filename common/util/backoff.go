package util

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
)

// BackoffOption bounds a retry loop for transient transmission faults. The
// delay doubles after every failed attempt.
type BackoffOption struct {
	Attempts  uint
	BaseDelay time.Duration
}

var defaultBackoff = BackoffOption{
	Attempts:  3,
	BaseDelay: 5 * time.Second,
}

// Retry runs fn up to opt.Attempts times, sleeping BaseDelay, 2*BaseDelay,
// ... between attempts. It returns nil on the first success and the last
// error once attempts are exhausted. The clock is injectable so retry
// schedules can run against simulated time in tests.
func Retry(ctx context.Context, clk clock.Clock, opt *BackoffOption, fn func() error) error {
	if opt == nil {
		opt = &defaultBackoff
	}
	attempts := opt.Attempts
	if attempts == 0 {
		attempts = defaultBackoff.Attempts
	}
	delay := opt.BaseDelay
	if delay <= 0 {
		delay = defaultBackoff.BaseDelay
	}

	var lastErr error
	for attempt := uint(1); attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		timer := clk.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C():
		}
		delay *= 2
	}
	return errors.Wrapf(lastErr, "%d attempts exhausted", attempts)
}

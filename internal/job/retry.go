// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package job

import (
	"time"

	"github.com/buildkite/roko"
)

// Backoff is the strategy used to space out log stream attempts
type Backoff string

const (
	// BackoffConstant waits the same interval between every attempt
	BackoffConstant Backoff = "constant"
	// BackoffExponential waits interval^attempt seconds between attempts
	BackoffExponential Backoff = "exponential"
)

const (
	// DefaultRetryInterval is the wait between attempts to open the log stream
	DefaultRetryInterval = 500 * time.Millisecond
	// MinExponentialInterval is the smallest base accepted by the exponential backoff.
	// The exponential base is counted in whole seconds.
	MinExponentialInterval = time.Second
)

// RetryPolicy controls how the log stream is reopened while the pod is not ready.
// A zero MaxAttempts retries until the stream opens.
type RetryPolicy struct {
	Interval    time.Duration
	MaxAttempts int
	Backoff     Backoff
}

// DefaultRetryPolicy returns a policy retrying every 500ms with no attempt limit
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Interval: DefaultRetryInterval,
		Backoff:  BackoffConstant,
	}
}

func (p RetryPolicy) normalize() RetryPolicy {
	if p.Interval <= 0 {
		p.Interval = DefaultRetryInterval
	}
	if p.Backoff == "" {
		p.Backoff = BackoffConstant
	}
	if p.Backoff == BackoffExponential {
		p.Interval = p.Interval.Truncate(time.Second)
		if p.Interval < MinExponentialInterval {
			p.Interval = MinExponentialInterval
		}
	}
	if p.MaxAttempts < 0 {
		p.MaxAttempts = 0
	}
	return p
}

func (p RetryPolicy) newRetrier(sleep func(time.Duration)) *roko.Retrier {
	p = p.normalize()

	attempts := roko.TryForever()
	if p.MaxAttempts > 0 {
		attempts = roko.WithMaxAttempts(p.MaxAttempts)
	}

	strategy := roko.WithStrategy(roko.Constant(p.Interval))
	if p.Backoff == BackoffExponential {
		strategy = roko.WithStrategy(roko.Exponential(p.Interval, 0))
	}

	if sleep == nil {
		return roko.NewRetrier(attempts, strategy)
	}
	return roko.NewRetrier(attempts, strategy, roko.WithSleepFunc(sleep))
}

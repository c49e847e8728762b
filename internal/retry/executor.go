// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package retry

import (
	"context"
	"time"

	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	goretry "github.com/sethvargo/go-retry"
)

const (
	// DefaultBaseDelay is the wait after the first failed attempt.
	DefaultBaseDelay = time.Second

	// DefaultMaxDelay caps every wait between attempts.
	DefaultMaxDelay = 30 * time.Second
)

// Policy is the backoff schedule. The wait after attempt n (0-indexed) is
// min(BaseDelay*2^n, MaxDelay).
type Policy struct {
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

// DefaultPolicy is the schedule used against the real scan API.
func DefaultPolicy() Policy {
	return Policy{BaseDelay: DefaultBaseDelay, MaxDelay: DefaultMaxDelay}
}

// Executor performs calls with retries according to a [Policy] and a
// [Classifier]. It holds no per-call state and is safe for concurrent use.
type Executor struct {
	policy     Policy
	classifier Classifier
	logger     *logger.Logger
}

// NewExecutor builds an Executor. Zero policy fields fall back to the
// defaults and a nil classifier falls back to [TransportClassifier].
func NewExecutor(policy Policy, classifier Classifier, log *logger.Logger) *Executor {
	if policy.BaseDelay <= 0 {
		policy.BaseDelay = DefaultBaseDelay
	}
	if policy.MaxDelay <= 0 {
		policy.MaxDelay = DefaultMaxDelay
	}
	if classifier == nil {
		classifier = NewTransportClassifier()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Executor{policy: policy, classifier: classifier, logger: log}
}

// Backoff returns the delay schedule for a call allowed maxRetries retries
// after its first attempt. A negative maxRetries is treated as zero.
func (e *Executor) Backoff(maxRetries int) goretry.Backoff {
	if maxRetries < 0 {
		maxRetries = 0
	}

	b := goretry.NewExponential(e.policy.BaseDelay)
	b = goretry.WithCappedDuration(e.policy.MaxDelay, b)
	return goretry.WithMaxRetries(uint64(maxRetries), b)
}

// Call describes one outbound request for [Do].
type Call struct {
	// Op names the request in logs.
	Op string

	// MaxRetries is the number of attempts after the first one.
	MaxRetries int

	// Timeout bounds each attempt separately. Zero means no extra bound.
	Timeout time.Duration
}

// Do runs fn until it succeeds, fails with a non-retryable error, or the
// retry budget of call is spent. Exactly one fn invocation is made per
// attempt, and the last error is returned on exhaustion.
func Do[T any](ctx context.Context, e *Executor, call Call, fn func(ctx context.Context) (T, error)) (T, error) {
	var (
		result  T
		attempt int
	)

	backoff := e.logDelays(call, e.Backoff(call.MaxRetries), &attempt)

	err := goretry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx, cancel := withAttemptTimeout(ctx, call.Timeout)
		defer cancel()

		out, err := fn(attemptCtx)
		if err == nil {
			result = out
			return nil
		}

		if e.classifier.Classify(err) == NonRetryable {
			e.logger.Debug().
				Err(err).
				Str("op", call.Op).
				Int("attempt", attempt).
				Msg("non-retryable failure")
			return err
		}

		return goretry.RetryableError(err)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

// logDelays wraps next so every scheduled wait is logged and the attempt
// counter advances.
func (e *Executor) logDelays(call Call, next goretry.Backoff, attempt *int) goretry.Backoff {
	return goretry.BackoffFunc(func() (time.Duration, bool) {
		delay, stop := next.Next()
		if stop {
			e.logger.Warn().
				Str("op", call.Op).
				Int("attempts", *attempt+1).
				Msg("retries exhausted")
			return 0, true
		}

		e.logger.Warn().
			Str("op", call.Op).
			Int("attempt", *attempt).
			Dur("delay", delay).
			Msg("retryable failure, backing off")
		*attempt++
		return delay, false
	})
}

func withAttemptTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

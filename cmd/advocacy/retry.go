package main

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/natserract/advocacy/pkg/advocacy"
	"go.uber.org/zap"
)

// retrier re-runs calls that failed at the transport level. The client
// itself never retries; this is the caller-side policy.
type retrier struct {
	retries         int
	maxElapsed      time.Duration
	initialInterval time.Duration
	logger          *zap.Logger
}

func retry[T any](ctx context.Context, r retrier, name string, op func() (T, error)) (T, error) {
	if r.retries <= 0 {
		return op()
	}

	expBackoff := backoff.NewExponentialBackOff()
	if r.initialInterval > 0 {
		expBackoff.InitialInterval = r.initialInterval
	}
	expBackoff.Reset()

	attempt := 0
	operation := func() (T, error) {
		attempt++
		v, err := op()
		if err == nil {
			return v, nil
		}
		var transportErr *advocacy.TransportError
		if !errors.As(err, &transportErr) {
			return v, backoff.Permanent(err)
		}
		r.logger.Warn("Request failed, will retry",
			zap.String("operation", name),
			zap.Int("attempt", attempt),
			zap.Error(err))
		return v, err
	}

	opts := []backoff.RetryOption{
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(uint(r.retries + 1)),
	}
	if r.maxElapsed > 0 {
		opts = append(opts, backoff.WithMaxElapsedTime(r.maxElapsed))
	}
	return backoff.Retry(ctx, operation, opts...)
}

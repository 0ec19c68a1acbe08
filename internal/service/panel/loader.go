// Package panel provides the shared data-loading path behind every
// dashboard panel: one fetch with bounded retries, and an explicit,
// logged fallback so callers can always tell substituted data from a
// genuinely empty result.
package panel

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pmajay/portal/internal/pkg/logger"
)

type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Result tags panel data with where it came from. When Source is
// SourceFallback, Err holds the fetch failure that forced the substitution.
type Result[T any] struct {
	Data   T      `json:"data"`
	Source Source `json:"source"`
	Err    error  `json:"-"`
}

func (r Result[T]) Live() bool {
	return r.Source == SourceLive
}

type FetchFunc[T any] func(ctx context.Context) (T, error)

const (
	tryTimeout    = 5 * time.Second
	retryInterval = 200 * time.Millisecond
	maxRetries    = 2
)

// Load runs fetch with a per-try timeout and constant-interval retries.
// On exhaustion it substitutes fallback and logs the decision; the failure
// never propagates to the panel as a blocking error.
func Load[T any](ctx context.Context, name string, fetch FetchFunc[T], fallback T) Result[T] {
	var data T

	err := backoff.Retry(
		func() error {
			tryCtx, cancel := context.WithTimeout(ctx, tryTimeout)
			defer cancel()

			var fetchErr error
			data, fetchErr = fetch(tryCtx)
			return fetchErr
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), maxRetries),
			ctx,
		),
	)
	if err != nil {
		logger.Warnf(ctx, "panel %s: fetch failed, serving fallback dataset: %s", name, err.Error())
		return Result[T]{Data: fallback, Source: SourceFallback, Err: err}
	}

	return Result[T]{Data: data, Source: SourceLive}
}

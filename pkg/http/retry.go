package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
)

const (
	defaultRetryInitialInterval = 100 * time.Millisecond
	defaultRetryMaxElapsedTime  = 2 * time.Second
)

type RetryPolicy struct {
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
	MaxRetries      uint64
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		InitialInterval: defaultRetryInitialInterval,
		MaxElapsedTime:  defaultRetryMaxElapsedTime,
		MaxRetries:      3,
	}
}

var errRetryableResponse = errors.New("retryable response")

// DoIdempotent executes the request built by newRequest, retrying transport errors and 5xx responses with exponential backoff.
// Only idempotent requests may be sent through it.
func DoIdempotent(
	ctx context.Context,
	policy RetryPolicy,
	newRequest func(context.Context) *resty.Request,
	method, url string,
) (*resty.Response, error) {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = policy.InitialInterval
	expBackoff.MaxElapsedTime = policy.MaxElapsedTime

	var strategy backoff.BackOff = expBackoff
	if policy.MaxRetries > 0 {
		strategy = backoff.WithMaxRetries(strategy, policy.MaxRetries)
	}

	var resp *resty.Response
	err := backoff.Retry(func() error {
		var err error
		resp, err = newRequest(ctx).Execute(method, url)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return errRetryableResponse
		}
		return nil
	}, backoff.WithContext(strategy, ctx))
	if errors.Is(err, errRetryableResponse) {
		return resp, nil
	}

	return resp, err
}

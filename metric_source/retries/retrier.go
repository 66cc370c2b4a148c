package retries

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// NewBackOff creates exponential backoff policy from config.
// Config without any limit gives a policy that never retries.
func NewBackOff(config Config) backoff.BackOff {
	if config.MaxElapsedTime == 0 && config.MaxRetriesCount == 0 {
		return &backoff.StopBackOff{}
	}

	policy := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(config.InitialInterval),
		backoff.WithRandomizationFactor(config.RandomizationFactor),
		backoff.WithMultiplier(config.Multiplier),
		backoff.WithMaxInterval(config.MaxInterval),
		backoff.WithMaxElapsedTime(config.MaxElapsedTime))

	if config.MaxRetriesCount > 0 {
		return backoff.WithMaxRetries(policy, config.MaxRetriesCount)
	}
	return policy
}

// Retry performs op until it succeeds, returns an error wrapped with backoff.Permanent,
// the policy gives up or ctx is done. Errors of failed attempts are passed to notify.
func Retry[T any](ctx context.Context, config Config, op func() (T, error), notify func(err error, attempt int)) (T, error) {
	attempt := 0
	return backoff.RetryNotifyWithData[T](
		func() (T, error) {
			attempt++
			return op()
		},
		backoff.WithContext(NewBackOff(config), ctx),
		func(err error, _ time.Duration) {
			if notify != nil {
				notify(err, attempt)
			}
		},
	)
}

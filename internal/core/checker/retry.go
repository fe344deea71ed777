package checker

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryPolicy bounds how often a failed probe is reattempted.
type RetryPolicy struct {
	// MaxRetries is the number of additional attempts after the first.
	// Zero means the default budget; use NoRetries to disable retries.
	MaxRetries int
	// BaseDelay is the initial backoff interval; it grows exponentially.
	BaseDelay time.Duration
}

// NoRetries disables reattempts entirely: one probe, win or lose.
const NoRetries = -1

func (p RetryPolicy) withDefaults() RetryPolicy {
	switch {
	case p.MaxRetries < 0:
		p.MaxRetries = 0
	case p.MaxRetries == 0:
		p.MaxRetries = 3
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = 100 * time.Millisecond
	}
	return p
}

// WithRetry runs attempt under the policy's exponential backoff schedule,
// returning the first successful verdict or the last error once the retry
// budget is exhausted.
func WithRetry(ctx context.Context, policy RetryPolicy, attempt func() (bool, error)) (bool, error) {
	policy = policy.withDefaults()

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = policy.BaseDelay

	return backoff.Retry(ctx, attempt,
		backoff.WithBackOff(expo),
		backoff.WithMaxTries(uint(policy.MaxRetries)+1),
	)
}

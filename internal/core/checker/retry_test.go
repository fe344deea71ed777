package checker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fastPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, BaseDelay: time.Millisecond}
}

func TestWithRetrySucceedsAfterFailures(t *testing.T) {
	attempts := 0
	taken, err := WithRetry(context.Background(), fastPolicy(), func() (bool, error) {
		attempts++
		if attempts < 3 {
			return false, errors.New("transient")
		}
		return true, nil
	})

	require.NoError(t, err)
	require.True(t, taken)
	require.Equal(t, 3, attempts)
}

func TestWithRetryExhaustsBudget(t *testing.T) {
	attempts := 0
	_, err := WithRetry(context.Background(), fastPolicy(), func() (bool, error) {
		attempts++
		return false, errors.New("still down")
	})

	require.Error(t, err)
	require.Equal(t, 4, attempts)
}

func TestWithRetryFirstTryShortCircuits(t *testing.T) {
	attempts := 0
	taken, err := WithRetry(context.Background(), RetryPolicy{}, func() (bool, error) {
		attempts++
		return false, nil
	})

	require.NoError(t, err)
	require.False(t, taken)
	require.Equal(t, 1, attempts)
}

func TestWithRetryDisabled(t *testing.T) {
	attempts := 0
	_, err := WithRetry(context.Background(), RetryPolicy{MaxRetries: NoRetries}, func() (bool, error) {
		attempts++
		return false, errors.New("down")
	})

	require.Error(t, err)
	require.Equal(t, 1, attempts)
}

func TestCheckErrorMessage(t *testing.T) {
	err := &CheckError{Provider: "tiktok", Reason: "timeout"}
	require.Equal(t, "tiktok check failed: timeout", err.Error())
}

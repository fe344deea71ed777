package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/namewastaken/namewastaken/internal/core/checker"
)

type stubChecker struct {
	failures int
	taken    bool
	calls    int
}

func (s *stubChecker) Check(ctx context.Context, handle string) (bool, error) {
	s.calls++
	if s.calls <= s.failures {
		return false, errors.New("transient")
	}
	return s.taken, nil
}

func TestProviderCheckRetriesTransientFailures(t *testing.T) {
	stub := &stubChecker{failures: 2, taken: true}
	p := &Provider{
		Name:    "stub",
		Checker: stub,
		Retry:   checker.RetryPolicy{MaxRetries: 3, BaseDelay: time.Millisecond},
	}

	taken, err := p.Check(context.Background(), "example")
	require.NoError(t, err)
	require.True(t, taken)
	require.Equal(t, 3, stub.calls)
}

func TestProviderCheckWrapsExhaustedRetries(t *testing.T) {
	stub := &stubChecker{failures: 10}
	p := &Provider{
		Name:    "stub",
		Checker: stub,
		Retry:   checker.RetryPolicy{MaxRetries: 2, BaseDelay: time.Millisecond},
	}

	_, err := p.Check(context.Background(), "example")
	require.Error(t, err)

	var checkErr *checker.CheckError
	require.ErrorAs(t, err, &checkErr)
	require.Equal(t, "stub", checkErr.Provider)
	require.Equal(t, 3, stub.calls)
}

package checker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYouTubeCheckerTaken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	checker := &YouTubeChecker{Client: server.Client(), BaseURL: server.URL}

	taken, err := checker.Check(context.Background(), "example")
	require.NoError(t, err)
	require.True(t, taken)
}

func TestYouTubeCheckerAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	checker := &YouTubeChecker{Client: server.Client(), BaseURL: server.URL}

	taken, err := checker.Check(context.Background(), "example")
	require.NoError(t, err)
	require.False(t, taken)
}

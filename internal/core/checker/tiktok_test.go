package checker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTikTokCheckerTaken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<script>{"user":{"desc":"@example profile"}}</script>`))
	}))
	defer server.Close()

	checker := &TikTokChecker{Client: server.Client(), BaseURL: server.URL}

	taken, err := checker.Check(context.Background(), "example")
	require.NoError(t, err)
	require.True(t, taken)
}

func TestTikTokCheckerAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>Couldn't find this account</html>`))
	}))
	defer server.Close()

	checker := &TikTokChecker{Client: server.Client(), BaseURL: server.URL}

	taken, err := checker.Check(context.Background(), "example")
	require.NoError(t, err)
	require.False(t, taken)
}

package checker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstagramCheckerTaken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<script>{"user":{"username":"example"}}</script>`))
	}))
	defer server.Close()

	checker := &InstagramChecker{Client: server.Client(), BaseURL: server.URL}

	taken, err := checker.Check(context.Background(), "example")
	require.NoError(t, err)
	require.True(t, taken)
}

func TestInstagramCheckerAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>Sorry, this page isn't available.</html>`))
	}))
	defer server.Close()

	checker := &InstagramChecker{Client: server.Client(), BaseURL: server.URL}

	taken, err := checker.Check(context.Background(), "example")
	require.NoError(t, err)
	require.False(t, taken)
}

func TestInstagramCheckerOtherUsernameMention(t *testing.T) {
	// A different handle appearing in the page must not count as taken.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<script>{"username":"other"}</script>`))
	}))
	defer server.Close()

	checker := &InstagramChecker{Client: server.Client(), BaseURL: server.URL}

	taken, err := checker.Check(context.Background(), "example")
	require.NoError(t, err)
	require.False(t, taken)
}

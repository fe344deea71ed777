package checker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXCheckerAvailableCurlyApostrophe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>This account doesn’t exist</html>"))
	}))
	defer server.Close()

	checker := &XChecker{Client: server.Client(), BaseURL: server.URL}

	taken, err := checker.Check(context.Background(), "example")
	require.NoError(t, err)
	require.False(t, taken)
}

func TestXCheckerAvailableStraightApostrophe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>This account doesn't exist</html>"))
	}))
	defer server.Close()

	checker := &XChecker{Client: server.Client(), BaseURL: server.URL}

	taken, err := checker.Check(context.Background(), "example")
	require.NoError(t, err)
	require.False(t, taken)
}

func TestXCheckerTaken(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html>Example's profile</html>"))
	}))
	defer server.Close()

	checker := &XChecker{Client: server.Client(), BaseURL: server.URL}

	taken, err := checker.Check(context.Background(), "example")
	require.NoError(t, err)
	require.True(t, taken)
	require.Contains(t, gotUA, "Mozilla/5.0")
}

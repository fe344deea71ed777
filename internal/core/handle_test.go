package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeHandle(t *testing.T) {
	require.Equal(t, "somehandle", NormalizeHandle("  @SomeHandle "))
	require.Equal(t, "somehandle", NormalizeHandle("@@somehandle"))
	require.Equal(t, "a.b_c", NormalizeHandle("A.B_C"))
}

func TestParseHandleValid(t *testing.T) {
	handle, err := ParseHandle("@Some.Handle_1")
	require.NoError(t, err)
	require.Equal(t, "some.handle_1", handle)
}

func TestParseHandleEmpty(t *testing.T) {
	_, err := ParseHandle("   ")
	require.ErrorIs(t, err, ErrHandleEmpty)

	_, err = ParseHandle("@")
	require.ErrorIs(t, err, ErrHandleEmpty)
}

func TestParseHandleTooLong(t *testing.T) {
	_, err := ParseHandle(strings.Repeat("a", MaxHandleLength+1))
	require.ErrorIs(t, err, ErrHandleTooLong)

	_, err = ParseHandle(strings.Repeat("a", MaxHandleLength))
	require.NoError(t, err)
}

func TestParseHandleBadChars(t *testing.T) {
	for _, raw := range []string{"some handle", "some/handle", "héllo", "some-handle"} {
		_, err := ParseHandle(raw)
		require.ErrorIs(t, err, ErrHandleBadChars, "input %q", raw)
	}
}

func TestSummarize(t *testing.T) {
	result := &CheckAllResult{
		Username: "somehandle",
		Results: []*CheckResult{
			{Provider: "x", Taken: true},
			{Provider: "github", Available: true},
			{Provider: "tiktok", Err: "tiktok check failed: boom"},
		},
	}
	result.Summarize()

	require.Equal(t, 1, result.Summary.Available)
	require.Equal(t, 1, result.Summary.Taken)
	require.Equal(t, 1, result.Summary.Errors)
	require.False(t, result.FullyAvailable())
	require.True(t, result.AnyTaken())
}

func TestFullyAvailable(t *testing.T) {
	result := &CheckAllResult{
		Results: []*CheckResult{
			{Provider: "x", Available: true},
			{Provider: "github", Available: true},
		},
	}
	result.Summarize()

	require.True(t, result.FullyAvailable())
	require.False(t, result.AnyTaken())
}

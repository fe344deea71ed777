package sdk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlatforms(t *testing.T) {
	names := Platforms()
	require.Equal(t, []string{"x", "tiktok", "threads", "youtube", "instagram", "facebook", "telegram", "github"}, names)
}

func TestCheckRejectsInvalidHandle(t *testing.T) {
	client := New(WithoutCache())
	defer client.Close()

	_, err := client.Check(context.Background(), "")
	require.Error(t, err)

	_, err = client.Check(context.Background(), "has spaces")
	require.Error(t, err)
}

func TestCheckManyRejectsInvalidHandle(t *testing.T) {
	client := New(WithoutCache())
	defer client.Close()

	_, err := client.CheckMany(context.Background(), "fine", "not fine")
	require.Error(t, err)
}

func TestCheckPlatformRejectsUnknownPlatform(t *testing.T) {
	client := New(WithoutCache())
	defer client.Close()

	_, err := client.CheckPlatform(context.Background(), "example", "myspace")
	require.Error(t, err)
	require.Contains(t, err.Error(), "myspace")
}

func TestCheckPlatformsRejectsUnknownPlatform(t *testing.T) {
	client := New(WithoutCache())
	defer client.Close()

	_, err := client.CheckPlatforms(context.Background(), "example", "github", "friendster")
	require.Error(t, err)
	require.Contains(t, err.Error(), "friendster")
}

func TestCheckURLRejectsUnrecognizedURL(t *testing.T) {
	client := New(WithoutCache())
	defer client.Close()

	_, err := client.CheckURL(context.Background(), "https://example.com/someone")
	require.Error(t, err)
}

func TestCloseWithoutCacheIsNil(t *testing.T) {
	client := New(WithoutCache())
	require.NoError(t, client.Close())
}

package core

import (
	"errors"
	"regexp"
	"strings"
)

// MaxHandleLength is the longest handle accepted at any input boundary.
const MaxHandleLength = 30

var handlePattern = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)

// Validation errors surfaced to users, one per failure kind.
var (
	ErrHandleEmpty    = errors.New("handle is required")
	ErrHandleTooLong  = errors.New("handle must be 30 characters or fewer")
	ErrHandleBadChars = errors.New("handle may only contain letters, numbers, dots and underscores")
)

// NormalizeHandle trims whitespace, strips any leading @ signs and
// lowercases the handle. It does not validate.
func NormalizeHandle(raw string) string {
	value := strings.TrimSpace(raw)
	value = strings.TrimLeft(value, "@")
	return strings.ToLower(value)
}

// ParseHandle normalizes and validates a raw handle. Components past the
// input boundary assume handles have gone through this exactly once.
func ParseHandle(raw string) (string, error) {
	value := NormalizeHandle(raw)

	switch {
	case value == "":
		return "", ErrHandleEmpty
	case len(value) > MaxHandleLength:
		return "", ErrHandleTooLong
	case !handlePattern.MatchString(value):
		return "", ErrHandleBadChars
	}

	return value, nil
}

// Package output renders check results for the CLI in table, JSON and
// markdown forms.
package output

import (
	"fmt"
	"strings"

	"github.com/namewastaken/namewastaken/internal/core"
)

// Format represents an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formatter renders check results.
type Formatter interface {
	FormatCheck(result *core.CheckAllResult) (string, error)
	FormatBulk(result *core.BulkCheckResult) (string, error)
}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatMarkdown):
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}

func statusLabel(r *core.CheckResult) string {
	switch {
	case r.Err != "":
		return "error"
	case r.Taken:
		return "taken"
	default:
		return "available"
	}
}

func notes(r *core.CheckResult) string {
	parts := make([]string, 0, 2)
	if r.Err != "" {
		parts = append(parts, r.Err)
	}
	if r.FromCache {
		parts = append(parts, "cached")
	}
	return strings.Join(parts, "; ")
}

func summaryLine(result *core.CheckAllResult) string {
	line := fmt.Sprintf("%d/%d available", result.Summary.Available, len(result.Results))
	if result.Summary.Errors > 0 {
		line += fmt.Sprintf(", %d failed", result.Summary.Errors)
	}
	return line
}

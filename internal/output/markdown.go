package output

import (
	"fmt"
	"strings"

	"github.com/namewastaken/namewastaken/internal/core"
)

// MarkdownFormatter renders results as a markdown table.
type MarkdownFormatter struct{}

// FormatCheck renders one handle's results as markdown.
func (f *MarkdownFormatter) FormatCheck(result *core.CheckAllResult) (string, error) {
	if result == nil {
		return "", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## @%s\n\n", result.Username)
	b.WriteString("| Platform | Status | URL | Notes |\n")
	b.WriteString("| --- | --- | --- | --- |\n")

	for _, r := range result.Results {
		if r == nil {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escapePipes(r.DisplayName),
			statusLabel(r),
			r.URL,
			escapePipes(notes(r)),
		)
	}

	fmt.Fprintf(&b, "\n**%s**\n", summaryLine(result))
	return b.String(), nil
}

// FormatBulk renders every handle's results as stacked markdown sections.
func (f *MarkdownFormatter) FormatBulk(result *core.BulkCheckResult) (string, error) {
	if result == nil {
		return "", nil
	}

	rendered := make([]string, 0, len(result.Results))
	for _, r := range result.Results {
		value, err := f.FormatCheck(r)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(value) == "" {
			continue
		}
		rendered = append(rendered, strings.TrimRight(value, "\n"))
	}

	return strings.Join(rendered, "\n\n") + "\n", nil
}

func escapePipes(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}

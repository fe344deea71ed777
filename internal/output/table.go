package output

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/namewastaken/namewastaken/internal/core"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// FormatCheck renders one handle's results as a table.
func (f *TableFormatter) FormatCheck(result *core.CheckAllResult) (string, error) {
	if result == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle("@" + result.Username)
	t.AppendHeader(table.Row{"Platform", "Status", "URL", "Notes"})

	for _, r := range result.Results {
		if r == nil {
			continue
		}
		t.AppendRow(table.Row{
			r.DisplayName,
			statusLabel(r),
			r.URL,
			notes(r),
		})
	}

	t.AppendFooter(table.Row{"", summaryLine(result), "", ""})

	return t.Render(), nil
}

// FormatBulk renders every handle's results, one table per handle.
func (f *TableFormatter) FormatBulk(result *core.BulkCheckResult) (string, error) {
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
		rendered = append(rendered, value)
	}

	return strings.Join(rendered, "\n\n"), nil
}

package output

import (
	"encoding/json"

	"github.com/namewastaken/namewastaken/internal/core"
)

// JSONFormatter renders results as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatCheck renders one handle's results as JSON.
func (f *JSONFormatter) FormatCheck(result *core.CheckAllResult) (string, error) {
	return f.marshal(result)
}

// FormatBulk renders bulk results as JSON.
func (f *JSONFormatter) FormatBulk(result *core.BulkCheckResult) (string, error) {
	return f.marshal(result)
}

func (f *JSONFormatter) marshal(value any) (string, error) {
	var (
		data []byte
		err  error
	)
	if f.Indent {
		data, err = json.MarshalIndent(value, "", "  ")
	} else {
		data, err = json.Marshal(value)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

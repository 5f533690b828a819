package output

import (
	"encoding/json"

	"github.com/ppiankov/headcount/internal/model"
)

// JSONFormatter renders a report as JSON.
type JSONFormatter struct {
	Indent bool
}

// Format renders a report as JSON.
func (f *JSONFormatter) Format(report *model.Report) (string, error) {
	if report == nil {
		return "", nil
	}

	var (
		data []byte
		err  error
	)

	if f.Indent {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}

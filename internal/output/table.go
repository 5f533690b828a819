package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ppiankov/headcount/internal/model"
)

// TableFormatter renders a report as an ASCII table.
type TableFormatter struct{}

// Format renders a report as a table.
func (f *TableFormatter) Format(report *model.Report) (string, error) {
	if report == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	if report.Subject != "" {
		t.SetTitle(report.Subject)
	}
	t.AppendHeader(table.Row{"Field", "Tokens", "Values", "Verdict"})

	for _, fr := range report.Fields {
		t.AppendRow(table.Row{
			fr.Label,
			tokenList(fr.Tokens),
			fr.DisplayValues(),
			verdictLabel(fr.Verdict),
		})
	}

	t.AppendFooter(table.Row{
		"",
		"",
		fmt.Sprintf("actual: %d", report.ActualCount),
		"",
	})

	rendered := t.Render()
	rendered += "\n" + renderSections(report, false)
	return rendered, nil
}

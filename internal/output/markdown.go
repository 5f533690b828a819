package output

import (
	"fmt"
	"strings"

	"github.com/ppiankov/headcount/internal/model"
)

// MarkdownFormatter renders a report as a markdown table.
type MarkdownFormatter struct{}

// Format renders a report as Markdown.
func (f *MarkdownFormatter) Format(report *model.Report) (string, error) {
	if report == nil {
		return "", nil
	}

	title := "人数整合性チェック"
	if report.Subject != "" {
		title = report.Subject
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", escapeMarkdownCell(title)))
	sb.WriteString("| Field | Tokens | Values | Verdict |\n")
	sb.WriteString("|-------|--------|--------|---------|\n")

	for _, fr := range report.Fields {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			escapeMarkdownCell(fr.Label),
			escapeMarkdownCell(tokenList(fr.Tokens)),
			escapeMarkdownCell(fr.DisplayValues()),
			escapeMarkdownCell(verdictLabel(fr.Verdict)),
		))
	}

	sb.WriteString(fmt.Sprintf("\n**Actual count**: %d\n", report.ActualCount))
	sb.WriteString(renderSections(report, true))
	return sb.String(), nil
}

func escapeMarkdownCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}

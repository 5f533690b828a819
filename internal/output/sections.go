package output

import (
	"fmt"
	"strings"

	"github.com/ppiankov/headcount/internal/model"
)

// renderSections prints the name list and per-field verdict messages below
// the main table
func renderSections(report *model.Report, markdown bool) string {
	var sb strings.Builder

	heading := func(title string) {
		if markdown {
			sb.WriteString(fmt.Sprintf("\n### %s\n\n", title))
		} else {
			sb.WriteString(fmt.Sprintf("\n%s\n", title))
		}
	}

	heading("登場人物リスト")
	if len(report.Names) == 0 {
		writeItem(&sb, markdown, "(なし)")
	}
	for _, name := range report.Names {
		if markdown {
			name = escapeMarkdownCell(name)
		}
		writeItem(&sb, markdown, name)
	}
	sb.WriteString(fmt.Sprintf("\n→ 実際の人数: %d\n", report.ActualCount))

	heading("整合性チェック")
	for _, fr := range report.Fields {
		mark := "✓"
		if !fr.Verdict.Passed() {
			mark = "✗"
		}
		writeItem(&sb, markdown, mark+" "+fr.Message)
	}

	return sb.String()
}

func writeItem(sb *strings.Builder, markdown bool, text string) {
	if markdown {
		sb.WriteString("- " + text + "\n")
		return
	}
	sb.WriteString("  " + text + "\n")
}

package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/headcount/internal/compare"
	"github.com/ppiankov/headcount/internal/model"
)

func sampleReport() *model.Report {
	report := compare.WithNames("3人が旅に出た", "五人の仲間", "楽しい物語です", []string{"Alice", "Bob", "Carol"})
	return &report
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("table")
	require.NoError(t, err)
	require.Equal(t, FormatTable, format)

	format, err = ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, format)

	format, err = ParseFormat("md")
	require.NoError(t, err)
	require.Equal(t, FormatMarkdown, format)

	format, err = ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatTable, format)

	_, err = ParseFormat("csv")
	require.Error(t, err)
}

func TestTableFormatter(t *testing.T) {
	rendered, err := (&TableFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	assert.Contains(t, rendered, "タイトル")
	assert.Contains(t, rendered, "紹介文")
	assert.Contains(t, rendered, "本文")
	assert.Contains(t, rendered, model.NoDataMarker)
	assert.Contains(t, rendered, "[5]")
	assert.Contains(t, rendered, "✗ mismatch")
	assert.Contains(t, rendered, "→ 実際の人数: 3")
	assert.Contains(t, rendered, "紹介文 に記載された人数（5）と人名数（3）が一致しません！")
	assert.Contains(t, rendered, "Alice")
}

func TestJSONFormatter(t *testing.T) {
	rendered, err := (&JSONFormatter{Indent: true}).Format(sampleReport())
	require.NoError(t, err)

	var decoded struct {
		ActualCount int `json:"actual_count"`
		Fields      []struct {
			Field   string   `json:"field"`
			Tokens  []string `json:"tokens"`
			Values  []int    `json:"values"`
			Stated  *int     `json:"stated"`
			Verdict string   `json:"verdict"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))

	require.Equal(t, 3, decoded.ActualCount)
	require.Len(t, decoded.Fields, 3)
	require.Equal(t, "title", decoded.Fields[0].Field)
	require.Equal(t, "match", decoded.Fields[0].Verdict)
	require.Equal(t, "mismatch", decoded.Fields[1].Verdict)
	require.Equal(t, "no-data", decoded.Fields[2].Verdict)
	require.NotNil(t, decoded.Fields[2].Tokens, "empty token list should encode as []")
	require.Nil(t, decoded.Fields[2].Stated)
}

func TestMarkdownFormatter(t *testing.T) {
	report := sampleReport()
	report.Subject = "a|b"
	report.Names = append(report.Names, "x|y")

	rendered, err := (&MarkdownFormatter{}).Format(report)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rendered, "## a\\|b\n"))
	assert.Contains(t, rendered, "| タイトル | 3 | [3] | ✓ match |")
	assert.Contains(t, rendered, "- x\\|y")
	assert.Contains(t, rendered, "### 整合性チェック")
}

func TestFormatReports(t *testing.T) {
	reports := []*model.Report{sampleReport(), nil, sampleReport()}

	rendered, err := FormatReports(FormatJSON, reports)
	require.NoError(t, err)
	var decoded []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))
	require.Len(t, decoded, 3)

	rendered, err = FormatReports(FormatMarkdown, reports)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(rendered, "## 人数整合性チェック"))
}

func TestRenderer_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "out", "report.json")
	mdPath := filepath.Join(dir, "report.md")

	r := NewRenderer()
	require.NoError(t, r.RenderJSON(sampleReport(), jsonPath))
	require.NoError(t, r.RenderMarkdown(sampleReport(), mdPath))

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	require.True(t, json.Valid(data))

	md, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	require.Contains(t, string(md), "人数整合性チェック")
}

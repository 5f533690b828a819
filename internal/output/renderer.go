package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/headcount/internal/model"
)

// Renderer writes reports to files
type Renderer struct {
	json     Formatter
	markdown Formatter
}

// NewRenderer creates a file renderer
func NewRenderer() *Renderer {
	return &Renderer{
		json:     &JSONFormatter{Indent: true},
		markdown: &MarkdownFormatter{},
	}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	return r.write(r.json, report, path)
}

// RenderMarkdown writes the report as Markdown
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	return r.write(r.markdown, report, path)
}

func (r *Renderer) write(f Formatter, report *model.Report, path string) error {
	content, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

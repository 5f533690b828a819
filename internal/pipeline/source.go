package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/headcount/internal/model"
)

// Source says where a field's text comes from. Path wins over Inline.
type Source struct {
	Inline string
	Path   string // "-" reads standard input
}

// TextReader reads field texts with a size limit
type TextReader struct {
	maxBytes int64
	stdin    io.Reader
}

// NewTextReader creates a reader. maxBytes <= 0 disables the limit.
func NewTextReader(maxBytes int64) *TextReader {
	return &TextReader{
		maxBytes: maxBytes,
		stdin:    os.Stdin,
	}
}

// ReadTexts resolves the three field sources. At most one may read standard input.
func (r *TextReader) ReadTexts(title, intro, body Source) (model.Texts, error) {
	stdinUsers := 0
	for _, s := range []Source{title, intro, body} {
		if s.Path == "-" {
			stdinUsers++
		}
	}
	if stdinUsers > 1 {
		return model.Texts{}, fmt.Errorf("only one field can be read from standard input")
	}

	var texts model.Texts
	var err error

	if texts.Title, err = r.read(title); err != nil {
		return model.Texts{}, fmt.Errorf("title: %w", err)
	}
	if texts.Intro, err = r.read(intro); err != nil {
		return model.Texts{}, fmt.Errorf("intro: %w", err)
	}
	if texts.Body, err = r.read(body); err != nil {
		return model.Texts{}, fmt.Errorf("body: %w", err)
	}

	return texts, nil
}

func (r *TextReader) read(s Source) (string, error) {
	path := strings.TrimSpace(s.Path)
	if path == "" {
		return s.Inline, nil
	}

	var reader io.Reader
	if path == "-" {
		reader = r.stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open: %w", err)
		}
		defer func() { _ = file.Close() }()
		reader = file
	}

	if r.maxBytes > 0 {
		reader = io.LimitReader(reader, r.maxBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	if r.maxBytes > 0 && int64(len(data)) > r.maxBytes {
		return "", fmt.Errorf("%s exceeds %d bytes", path, r.maxBytes)
	}

	return string(data), nil
}

// SubjectFromPath derives a human-readable subject from a file path
func SubjectFromPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		return ""
	}

	last := filepath.Base(path)

	// Remove file extensions
	if idx := strings.LastIndex(last, "."); idx > 0 {
		last = last[:idx]
	}

	// De-slugify: replace underscores and hyphens with spaces
	last = strings.ReplaceAll(last, "_", " ")
	last = strings.ReplaceAll(last, "-", " ")

	return last
}

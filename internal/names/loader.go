// Package names loads the list of character names a text is checked against.
package names

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMissingInput is returned when no name list was supplied
var ErrMissingInput = errors.New("name list not provided")

// DecodeError reports a name list that cannot be read as UTF-8 text
type DecodeError struct {
	Offset int   // Byte offset of the first invalid sequence, -1 if not applicable
	Limit  int64 // Size limit that was exceeded, 0 if not applicable
}

func (e *DecodeError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("name list exceeds %d bytes", e.Limit)
	}
	return fmt.Sprintf("name list is not valid UTF-8 (byte %d)", e.Offset)
}

// Loader reads name lists, one name per line
type Loader struct {
	maxBytes      int64
	commentPrefix string
}

// NewLoader creates a loader. maxBytes <= 0 disables the size limit;
// an empty commentPrefix keeps every non-blank line.
func NewLoader(maxBytes int64, commentPrefix string) *Loader {
	return &Loader{
		maxBytes:      maxBytes,
		commentPrefix: commentPrefix,
	}
}

// LoadFile reads a name list from path. "-" reads standard input.
func (l *Loader) LoadFile(path string) ([]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrMissingInput
	}

	if path == "-" {
		return l.Read(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open name list: %w", err)
	}
	defer func() { _ = file.Close() }()

	return l.Read(file)
}

// Read consumes r in one bounded read and parses it
func (l *Loader) Read(r io.Reader) ([]string, error) {
	if l.maxBytes > 0 {
		r = io.LimitReader(r, l.maxBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read name list: %w", err)
	}

	if l.maxBytes > 0 && int64(len(data)) > l.maxBytes {
		return nil, &DecodeError{Offset: -1, Limit: l.maxBytes}
	}

	return l.Parse(data)
}

// Parse decodes data and returns its trimmed, non-blank lines in order.
// Duplicates are kept.
func (l *Loader) Parse(data []byte) ([]string, error) {
	if off := invalidOffset(data); off >= 0 {
		return nil, &DecodeError{Offset: off}
	}

	decoded, _, err := transform.Bytes(textunicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode name list: %w", err)
	}

	names := make([]string, 0)
	for _, line := range strings.FieldsFunc(string(decoded), isLineBreak) {
		name := strings.TrimFunc(line, isBlank)
		if name == "" {
			continue
		}
		if l.commentPrefix != "" && strings.HasPrefix(name, l.commentPrefix) {
			continue
		}
		names = append(names, name)
	}

	return names, nil
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// isBlank matches whitespace plus the information separators 0x1c-0x1f
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// isLineBreak matches every character Unicode treats as a line boundary
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

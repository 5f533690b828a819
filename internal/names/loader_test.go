package names

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Parse(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{
			name: "drops blank and whitespace lines",
			data: "Alice\n\n  \nBob\n",
			want: []string{"Alice", "Bob"},
		},
		{
			name: "trims surrounding whitespace",
			data: "  Alice \t\n\tBob",
			want: []string{"Alice", "Bob"},
		},
		{
			name: "keeps duplicates and order",
			data: "Bob\nAlice\nBob\n",
			want: []string{"Bob", "Alice", "Bob"},
		},
		{
			name: "crlf line endings",
			data: "太郎\r\n花子\r\n",
			want: []string{"太郎", "花子"},
		},
		{
			name: "strips utf-8 bom",
			data: "\ufeff太郎\n花子",
			want: []string{"太郎", "花子"},
		},
		{
			name: "unit separator line is blank",
			data: "Alice\n\x1f\nBob\n",
			want: []string{"Alice", "Bob"},
		},
		{
			name: "unit separator trimmed from name",
			data: "\x1fAlice\x1f\n",
			want: []string{"Alice"},
		},
		{
			name: "only blank lines",
			data: "\n  \n\t\n",
			want: []string{},
		},
		{
			name: "empty input",
			data: "",
			want: []string{},
		},
		{
			name: "comment lines kept by default",
			data: "# cast\nAlice",
			want: []string{"# cast", "Alice"},
		},
	}

	loader := NewLoader(0, "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loader.Parse([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoader_CommentPrefix(t *testing.T) {
	loader := NewLoader(0, "#")

	got, err := loader.Parse([]byte("# cast\nAlice\n  # extra\nBob"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, got)
}

func TestLoader_InvalidUTF8(t *testing.T) {
	loader := NewLoader(0, "")

	_, err := loader.Parse([]byte("Alice\n\xff\xfeBob"))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 6, decodeErr.Offset)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestLoader_SizeLimit(t *testing.T) {
	loader := NewLoader(8, "")

	_, err := loader.Read(strings.NewReader("Alice\nBob\nCarol\n"))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, int64(8), decodeErr.Limit)

	got, err := loader.Read(strings.NewReader("Alice\nBo"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bo"}, got)
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alice\nBob\nAlice\n"), 0644))

	got, err := NewLoader(1<<20, "").LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Alice"}, got)
}

func TestLoader_LoadFileMissing(t *testing.T) {
	loader := NewLoader(0, "")

	_, err := loader.LoadFile("")
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = loader.LoadFile("   ")
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = loader.LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

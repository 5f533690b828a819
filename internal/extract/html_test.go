package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "inline markup joins",
			html: "<span>五</span>人の仲間",
			want: "五人の仲間",
		},
		{
			name: "scripts and styles skipped",
			html: "<style>p{}</style><p>本文</p><script>var n = '3人';</script>",
			want: "本文",
		},
		{
			name: "blocks separated",
			html: "<p>3</p><p>人</p>",
			want: "3\n\n人",
		},
		{
			name: "entities decoded",
			html: "<p>2&#20154;</p>",
			want: "2人",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VisibleText(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVisibleText_BlocksDoNotFormRuns(t *testing.T) {
	got, err := VisibleText("<p>3</p><p>人</p>")
	require.NoError(t, err)
	assert.Nil(t, PeopleCount(got))
}

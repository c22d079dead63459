package formatter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdir/internal/mdast"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: "Markdown", want: FormatMarkdown},
		{in: "md", want: FormatMarkdown},
		{in: " html ", want: FormatHTML},
		{in: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrUnknownFormat)

			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestRender(t *testing.T) {
	nodes := []mdast.Node{mdast.NewHeadingText(2, "Tutor")}

	data, err := Render(FormatJSON, nodes)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "heading", decoded[0]["type"])

	data, err = Render(FormatMarkdown, nodes)
	require.NoError(t, err)
	assert.Equal(t, "## Tutor\n", string(data))

	data, err = Render(FormatHTML, nodes)
	require.NoError(t, err)
	assert.Equal(t, "<h2>Tutor</h2>\n", string(data))

	_, err = Render(Format("pdf"), nodes)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormat_Signable(t *testing.T) {
	assert.True(t, FormatMarkdown.Signable())
	assert.True(t, FormatHTML.Signable())
	assert.False(t, FormatJSON.Signable())
}

package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdir/internal/mdast"
)

func TestValidateNodes_AllKinds(t *testing.T) {
	nodes := []mdast.Node{
		mdast.NewHeadingText(2, "Instructors"),
		mdast.NewDiv("staff-person-card",
			mdast.NewDiv("staff-person-photo", mdast.NewImage("a.jpg", "Photo of A")),
			mdast.NewDiv("staff-person-info",
				mdast.NewHeading(3, mdast.NewLink("A", "https://a.example")),
				mdast.NewParagraph(mdast.NewStrong("Office Hours:"), mdast.NewEmphasis("maybe")),
				mdast.NewList(false, mdast.NewListItem(mdast.NewParagraph(mdast.NewText("Mon")))),
				mdast.NewList(true),
			),
		),
		mdast.NewContainer(map[string]string{"display": "flex"}),
	}

	require.NoError(t, ValidateNodes(nodes))
}

func TestValidateNodes_Empty(t *testing.T) {
	require.NoError(t, ValidateNodes(nil))
}

func TestValidateNodes_HeadingDepthOutOfRange(t *testing.T) {
	err := ValidateNodes([]mdast.Node{mdast.NewHeadingText(7, "too deep")})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %v", err)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "node schema validation failed")
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "text", input: `[{"type":"text","value":"x"}]`},
		{name: "unknown type", input: `[{"type":"table","children":[]}]`, wantErr: true},
		{name: "text with children", input: `[{"type":"text","value":"x","children":[]}]`, wantErr: true},
		{name: "missing children", input: `[{"type":"paragraph"}]`, wantErr: true},
		{name: "nested invalid", input: `[{"type":"div","class":"c","children":[{"type":"image","url":"u"}]}]`, wantErr: true},
		{name: "list item type enforced", input: `[{"type":"list","ordered":false,"children":[{"type":"paragraph","children":[]}]}]`, wantErr: true},
		{name: "not an array", input: `{"type":"text","value":"x"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSource(t *testing.T) {
	assert.Contains(t, Source(), `"definitions"`)
}

package formatter

import (
	"errors"
	"fmt"
	"strings"

	"staffdir/internal/mdast"
)

// Format names an output representation.
type Format string

// Supported output formats.
const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat normalizes a format name. "md" is accepted for markdown.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Signable reports whether the format can carry a metadata comment block.
func (f Format) Signable() bool {
	return f == FormatMarkdown || f == FormatHTML
}

// Render serializes nodes in the given format.
func Render(format Format, nodes []mdast.Node) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := mdast.MarshalIndent(nodes, "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal nodes: %w", err)
		}

		return append(data, '\n'), nil
	case FormatMarkdown:
		return []byte(RenderMarkdown(nodes)), nil
	case FormatHTML:
		return []byte(RenderHTML(nodes)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

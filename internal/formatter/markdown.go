// Package formatter renders document trees into markdown, HTML, JSON and
// terminal previews.
package formatter

import (
	"regexp"
	"sort"
	"strings"

	"staffdir/internal/mdast"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
)

// blockMarkerRegex matches text that would open a list, heading, quote,
// fence or setext underline at the start of a line.
var blockMarkerRegex = regexp.MustCompile(`^( {0,3})([-+#=~]|[0-9]{1,9}[.)])`)

var destinationEscaper = strings.NewReplacer(
	"<", "%3C",
	">", "%3E",
	"\n", "%0A",
	"\r", "%0D",
)

// RenderMarkdown renders nodes as CommonMark. Div and container blocks
// become raw HTML wrappers with markdown content between them, which MyST
// and most CommonMark renderers accept.
func RenderMarkdown(nodes []mdast.Node) string {
	var sb strings.Builder

	for _, n := range nodes {
		writeMarkdownBlock(&sb, n)
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeMarkdownBlock(sb *strings.Builder, n mdast.Node) {
	switch v := n.(type) {
	case mdast.Heading:
		sb.WriteString(strings.Repeat("#", clampDepth(v.Depth)))
		sb.WriteString(" ")
		sb.WriteString(markdownInline(v.Children))
		sb.WriteString("\n\n")
	case mdast.Paragraph:
		sb.WriteString(escapeLineStart(markdownInline(v.Children)))
		sb.WriteString("\n\n")
	case mdast.List:
		for i, item := range v.Children {
			marker := "- "
			if v.Ordered {
				marker = itoa(i+1) + ". "
			}

			sb.WriteString(marker)
			sb.WriteString(markdownListItem(item, strings.Repeat(" ", len(marker))))
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
	case mdast.Div:
		sb.WriteString(`<div class="` + htmlAttr(v.Class) + "\">\n\n")

		for _, child := range v.Children {
			writeMarkdownBlock(sb, child)
		}

		sb.WriteString("</div>\n\n")
	case mdast.Container:
		sb.WriteString(`<div style="` + htmlAttr(styleAttr(v.Style)) + "\">\n\n")

		for _, child := range v.Children {
			writeMarkdownBlock(sb, child)
		}

		sb.WriteString("</div>\n\n")
	default:
		sb.WriteString(escapeLineStart(markdownInline([]mdast.Node{n})))
		sb.WriteString("\n\n")
	}
}

// markdownListItem renders each child on its own line, continuation lines
// indented to the item's content column.
func markdownListItem(item mdast.ListItem, indent string) string {
	parts := make([]string, 0, len(item.Children))

	for _, child := range item.Children {
		if p, ok := child.(mdast.Paragraph); ok {
			parts = append(parts, escapeLineStart(markdownInline(p.Children)))
		} else {
			parts = append(parts, escapeLineStart(markdownInline([]mdast.Node{child})))
		}
	}

	return strings.Join(parts, "\n"+indent)
}

func markdownInline(nodes []mdast.Node) string {
	var sb strings.Builder

	for _, n := range nodes {
		switch v := n.(type) {
		case mdast.Text:
			sb.WriteString(markdownText(v.Value))
		case mdast.Strong:
			sb.WriteString(wrapDelimiter("**", markdownInline(v.Children)))
		case mdast.Emphasis:
			sb.WriteString(wrapDelimiter("*", markdownInline(v.Children)))
		case mdast.Link:
			sb.WriteString("[" + markdownInline(v.Children) + "](" + markdownDestination(v.URL) + ")")
		case mdast.Image:
			alt := strings.Join(strings.Fields(v.Alt), " ")
			sb.WriteString("![" + markdownEscaper.Replace(alt) + "](" + markdownDestination(v.URL) + ")")
		default:
			sb.WriteString(markdownText(mdast.PlainText(n)))
		}
	}

	return sb.String()
}

// wrapDelimiter keeps surrounding whitespace outside emphasis markers so
// "About Me: " still parses as bold.
func wrapDelimiter(delim, content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return content
	}

	start := strings.Index(content, trimmed)
	end := start + len(trimmed)

	return content[:start] + delim + trimmed + delim + content[end:]
}

// markdownText escapes literal text. Line breaks become <br /> so the text
// never leaves the block it was rendered into.
func markdownText(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = markdownEscaper.Replace(line)
	}

	return strings.Join(lines, "<br />")
}

// escapeLineStart escapes a block marker at the start of rendered inline
// content placed at the beginning of a line.
func escapeLineStart(line string) string {
	m := blockMarkerRegex.FindStringSubmatchIndex(line)
	if m == nil {
		return line
	}

	// the marker's punctuation is the last byte of the second group
	i := m[5] - 1

	return line[:i] + `\` + line[i:]
}

func markdownDestination(url string) string {
	url = destinationEscaper.Replace(url)
	if strings.ContainsAny(url, " ()") {
		return "<" + url + ">"
	}

	return url
}

func clampDepth(depth int) int {
	switch {
	case depth < 1:
		return 1
	case depth > 6:
		return 6
	default:
		return depth
	}
}

func styleAttr(style map[string]string) string {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	decls := make([]string, 0, len(keys))
	for _, k := range keys {
		decls = append(decls, k+": "+style[k])
	}

	return strings.Join(decls, "; ")
}

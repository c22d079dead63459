package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"staffdir/internal/mdast"
)

// MinPreviewWidth is the narrowest terminal preview supported.
const MinPreviewWidth = 40

const photoColumnWidth = 18

// Card classes given special layout in previews.
const (
	cardClassPrefix = "staff-person-card"
	photoClass      = "staff-person-photo"
	infoClass       = "staff-person-info"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

// Preview renders nodes for a terminal of the given width. Cards become
// bordered boxes; the photo layout shows the image reference in a left column.
func Preview(nodes []mdast.Node, width int) string {
	if width < MinPreviewWidth {
		width = MinPreviewWidth
	}

	blocks := make([]string, 0, len(nodes))
	for _, n := range nodes {
		blocks = append(blocks, previewBlock(n, width))
	}

	return strings.Join(blocks, "\n") + "\n"
}

func previewBlock(n mdast.Node, width int) string {
	switch v := n.(type) {
	case mdast.Heading:
		if v.Depth >= 3 {
			return nameStyle.Render(previewLine(v.Children, width))
		}

		title := runewidth.Truncate(mdast.PlainText(v), width, "…")

		return sectionStyle.Render(title) + "\n" + strings.Repeat("─", runewidth.StringWidth(title))
	case mdast.Div:
		return previewDiv(v, width)
	case mdast.Container:
		return previewStack(v.Children, width)
	case mdast.List:
		return previewList(v, width)
	case mdast.Image:
		return mutedStyle.Render(previewImage(v, width))
	case mdast.Paragraph:
		return runewidth.Wrap(previewLine(v.Children, width), width)
	default:
		return runewidth.Wrap(previewLine([]mdast.Node{n}, width), width)
	}
}

func previewDiv(d mdast.Div, width int) string {
	inner := width - cardStyle.GetHorizontalFrameSize()
	box := cardStyle.Width(inner + cardStyle.GetHorizontalPadding())

	var photo, info *mdast.Div

	for _, child := range d.Children {
		if c, ok := child.(mdast.Div); ok {
			switch c.Class {
			case photoClass:
				photo = &c
			case infoClass:
				info = &c
			}
		}
	}

	if photo == nil || info == nil || inner < photoColumnWidth*2 {
		body := previewStack(d.Children, inner)
		if strings.HasPrefix(d.Class, cardClassPrefix) {
			return box.Render(body)
		}

		return body
	}

	left := lipgloss.NewStyle().
		Width(photoColumnWidth).
		MarginRight(1).
		Render(previewStack(photo.Children, photoColumnWidth))
	right := previewStack(info.Children, inner-photoColumnWidth-1)

	return box.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
}

func previewStack(children []mdast.Node, width int) string {
	lines := make([]string, 0, len(children))
	for _, child := range children {
		lines = append(lines, previewBlock(child, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func previewList(l mdast.List, width int) string {
	lines := make([]string, 0, len(l.Children))

	for i, item := range l.Children {
		marker := "• "
		if l.Ordered {
			marker = itoa(i+1) + ". "
		}

		pad := strings.Repeat(" ", runewidth.StringWidth(marker))
		text := runewidth.Wrap(previewLine(item.Children, width-len(pad)), width-len(pad))
		lines = append(lines, marker+strings.ReplaceAll(text, "\n", "\n"+pad))
	}

	return strings.Join(lines, "\n")
}

func previewImage(img mdast.Image, width int) string {
	label := img.Alt
	if label == "" {
		label = "image"
	}

	return runewidth.Wrap("["+label+"]", width) + "\n" + runewidth.Truncate(img.URL, width, "…")
}

// previewLine flattens inline nodes into one line of plain text. Link
// targets other than mailto are shown after their label.
func previewLine(nodes []mdast.Node, width int) string {
	var sb strings.Builder

	for _, n := range nodes {
		switch v := n.(type) {
		case mdast.Text:
			sb.WriteString(v.Value)
		case mdast.Link:
			label := previewLine(v.Children, width)
			sb.WriteString(label)

			if !strings.HasPrefix(v.URL, "mailto:") && v.URL != label {
				sb.WriteString(" <" + runewidth.Truncate(v.URL, width/2, "…") + ">")
			}
		case mdast.Image:
			sb.WriteString("[" + v.Alt + "]")
		case mdast.Paragraph:
			sb.WriteString(previewLine(v.Children, width))
			sb.WriteString(" ")
		default:
			sb.WriteString(previewLine(mdast.Children(n), width))
		}
	}

	return strings.TrimRight(sb.String(), " ")
}

package formatter

import (
	"html"
	"strconv"
	"strings"

	"staffdir/internal/mdast"
)

// RenderHTML renders nodes as an HTML fragment. Text and attribute values
// are escaped.
func RenderHTML(nodes []mdast.Node) string {
	var sb strings.Builder

	for _, n := range nodes {
		writeHTML(&sb, n)
	}

	return sb.String()
}

func writeHTML(sb *strings.Builder, n mdast.Node) {
	switch v := n.(type) {
	case mdast.Text:
		sb.WriteString(html.EscapeString(v.Value))
	case mdast.Image:
		sb.WriteString(`<img src="` + htmlAttr(v.URL) + `" alt="` + htmlAttr(v.Alt) + `">`)
	case mdast.Link:
		sb.WriteString(`<a href="` + htmlAttr(v.URL) + `">`)
		writeHTMLChildren(sb, v.Children)
		sb.WriteString("</a>")
	case mdast.Strong:
		writeHTMLElement(sb, "strong", v.Children)
	case mdast.Emphasis:
		writeHTMLElement(sb, "em", v.Children)
	case mdast.Paragraph:
		writeHTMLElement(sb, "p", v.Children)
		sb.WriteString("\n")
	case mdast.Heading:
		writeHTMLElement(sb, "h"+itoa(clampDepth(v.Depth)), v.Children)
		sb.WriteString("\n")
	case mdast.List:
		tag := "ul"
		if v.Ordered {
			tag = "ol"
		}

		sb.WriteString("<" + tag + ">\n")

		for _, item := range v.Children {
			writeHTML(sb, item)
		}

		sb.WriteString("</" + tag + ">\n")
	case mdast.ListItem:
		sb.WriteString("<li>")
		writeHTMLChildren(sb, v.Children)
		sb.WriteString("</li>\n")
	case mdast.Div:
		sb.WriteString(`<div class="` + htmlAttr(v.Class) + "\">\n")
		writeHTMLChildren(sb, v.Children)
		sb.WriteString("</div>\n")
	case mdast.Container:
		sb.WriteString(`<div style="` + htmlAttr(styleAttr(v.Style)) + "\">\n")
		writeHTMLChildren(sb, v.Children)
		sb.WriteString("</div>\n")
	}
}

func writeHTMLElement(sb *strings.Builder, tag string, children []mdast.Node) {
	sb.WriteString("<" + tag + ">")
	writeHTMLChildren(sb, children)
	sb.WriteString("</" + tag + ">")
}

func writeHTMLChildren(sb *strings.Builder, children []mdast.Node) {
	for _, child := range children {
		writeHTML(sb, child)
	}
}

func htmlAttr(s string) string {
	return html.EscapeString(s)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

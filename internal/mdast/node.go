// Package mdast defines the document tree handed to markup renderers.
//
// The node vocabulary is closed: every kind is a struct in this package and
// implements Node through an unexported marker method, so renderers can switch
// over all kinds exhaustively.
package mdast

// Kind is the wire tag of a node.
type Kind string

// Node kinds understood by renderers.
const (
	KindText      Kind = "text"
	KindLink      Kind = "link"
	KindParagraph Kind = "paragraph"
	KindStrong    Kind = "strong"
	KindEmphasis  Kind = "emphasis"
	KindImage     Kind = "image"
	KindHeading   Kind = "heading"
	KindList      Kind = "list"
	KindListItem  Kind = "listItem"
	KindContainer Kind = "container"
	KindDiv       Kind = "div"
)

// Node is one element of the document tree.
type Node interface {
	Kind() Kind
	isNode()
}

// Text is a leaf holding literal text.
type Text struct {
	Value string
}

// Link points at URL and renders its children as the label.
type Link struct {
	URL      string
	Children []Node
}

// Paragraph is a block of inline content.
type Paragraph struct {
	Children []Node
}

// Strong is bold inline content.
type Strong struct {
	Children []Node
}

// Emphasis is italic inline content.
type Emphasis struct {
	Children []Node
}

// Image is a leaf referencing a picture.
type Image struct {
	URL string
	Alt string
}

// Heading is a section title of the given depth (1-6).
type Heading struct {
	Depth    int
	Children []Node
}

// List holds list items, bulleted unless Ordered.
type List struct {
	Ordered  bool
	Children []ListItem
}

// ListItem is one entry of a List.
type ListItem struct {
	Children []Node
}

// Container is a generic block carrying inline style hints.
type Container struct {
	Style    map[string]string
	Children []Node
}

// Div is a block tagged with a renderer-interpreted class name.
type Div struct {
	Class    string
	Children []Node
}

func (Text) Kind() Kind      { return KindText }
func (Link) Kind() Kind      { return KindLink }
func (Paragraph) Kind() Kind { return KindParagraph }
func (Strong) Kind() Kind    { return KindStrong }
func (Emphasis) Kind() Kind  { return KindEmphasis }
func (Image) Kind() Kind     { return KindImage }
func (Heading) Kind() Kind   { return KindHeading }
func (List) Kind() Kind      { return KindList }
func (ListItem) Kind() Kind  { return KindListItem }
func (Container) Kind() Kind { return KindContainer }
func (Div) Kind() Kind       { return KindDiv }

func (Text) isNode()      {}
func (Link) isNode()      {}
func (Paragraph) isNode() {}
func (Strong) isNode()    {}
func (Emphasis) isNode()  {}
func (Image) isNode()     {}
func (Heading) isNode()   {}
func (List) isNode()      {}
func (ListItem) isNode()  {}
func (Container) isNode() {}
func (Div) isNode()       {}

// Children returns the child nodes of n, or nil for leaves.
func Children(n Node) []Node {
	switch v := n.(type) {
	case Link:
		return v.Children
	case Paragraph:
		return v.Children
	case Strong:
		return v.Children
	case Emphasis:
		return v.Children
	case Heading:
		return v.Children
	case List:
		items := make([]Node, len(v.Children))
		for i, item := range v.Children {
			items[i] = item
		}

		return items
	case ListItem:
		return v.Children
	case Container:
		return v.Children
	case Div:
		return v.Children
	default:
		return nil
	}
}

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn skips the children of the current node.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}

	for _, child := range Children(n) {
		Walk(child, fn)
	}
}

// PlainText concatenates every Text value under n.
func PlainText(n Node) string {
	var out []byte

	Walk(n, func(node Node) bool {
		if t, ok := node.(Text); ok {
			out = append(out, t.Value...)
		}

		return true
	})

	return string(out)
}

package mdast

// NewText builds a text leaf.
func NewText(value string) Text {
	return Text{Value: value}
}

// NewLink builds a link whose label is a single text node.
func NewLink(label, url string) Link {
	return Link{URL: url, Children: []Node{NewText(label)}}
}

// NewParagraph builds a paragraph.
func NewParagraph(children ...Node) Paragraph {
	return Paragraph{Children: children}
}

// NewStrong builds bold text.
func NewStrong(value string) Strong {
	return Strong{Children: []Node{NewText(value)}}
}

// NewEmphasis builds italic text.
func NewEmphasis(value string) Emphasis {
	return Emphasis{Children: []Node{NewText(value)}}
}

// NewImage builds an image leaf.
func NewImage(src, alt string) Image {
	return Image{URL: src, Alt: alt}
}

// NewHeading builds a heading with arbitrary inline children.
func NewHeading(depth int, children ...Node) Heading {
	return Heading{Depth: depth, Children: children}
}

// NewHeadingText builds a heading holding plain text.
func NewHeadingText(depth int, value string) Heading {
	return NewHeading(depth, NewText(value))
}

// NewList builds a list from prepared items.
func NewList(ordered bool, items ...ListItem) List {
	return List{Ordered: ordered, Children: items}
}

// NewListItem builds a list item.
func NewListItem(children ...Node) ListItem {
	return ListItem{Children: children}
}

// NewTextList builds a list with one text paragraph per item.
func NewTextList(ordered bool, items ...string) List {
	listItems := make([]ListItem, 0, len(items))
	for _, item := range items {
		listItems = append(listItems, NewListItem(NewParagraph(NewText(item))))
	}

	return NewList(ordered, listItems...)
}

// NewContainer builds a generic container with style hints.
func NewContainer(style map[string]string, children ...Node) Container {
	return Container{Style: style, Children: children}
}

// NewDiv builds a class-tagged block.
func NewDiv(class string, children ...Node) Div {
	return Div{Class: class, Children: children}
}

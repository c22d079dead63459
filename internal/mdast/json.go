package mdast

import (
	"encoding/json"
	"fmt"
)

// Marshal encodes nodes in the mdast-compatible wire form consumed by
// external renderers. Every parent node carries a "children" array, even
// when empty.
func Marshal(nodes []Node) ([]byte, error) {
	encoded, err := encodeAll(nodes)
	if err != nil {
		return nil, err
	}

	return json.Marshal(encoded)
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(nodes []Node, indent string) ([]byte, error) {
	encoded, err := encodeAll(nodes)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(encoded, "", indent)
}

func encodeAll(nodes []Node) ([]any, error) {
	out := make([]any, 0, len(nodes))

	for _, n := range nodes {
		m, err := encode(n)
		if err != nil {
			return nil, err
		}

		out = append(out, m)
	}

	return out, nil
}

func encode(n Node) (map[string]any, error) {
	m := map[string]any{"type": string(n.Kind())}

	switch v := n.(type) {
	case Text:
		m["value"] = v.Value

		return m, nil
	case Image:
		m["url"] = v.URL
		m["alt"] = v.Alt

		return m, nil
	case Link:
		m["url"] = v.URL
	case Heading:
		m["depth"] = v.Depth
	case List:
		m["ordered"] = v.Ordered
	case Container:
		style := map[string]string{}
		for k, val := range v.Style {
			style[k] = val
		}

		m["style"] = style
	case Div:
		m["class"] = v.Class
	case Paragraph, Strong, Emphasis, ListItem:
	default:
		return nil, fmt.Errorf("unknown node type %T", n)
	}

	children, err := encodeAll(Children(n))
	if err != nil {
		return nil, err
	}

	m["children"] = children

	return m, nil
}

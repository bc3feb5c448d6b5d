package tbrowser

import "strings"

// Parse tokenizes markup and builds its tree.
func Parse(markup string) *Node {
	return Build(Tokenize(markup))
}

// Build turns tokens into a tree under a synthetic root element.
//
// Malformed input never fails: a closing tag with nothing open is ignored,
// text outside any element is dropped, and elements still open when the
// tokens run out are never attached to the tree.
//
// Whitespace-only text still becomes a text node, with an empty value, so
// "<ul>\n  <li>x</li>\n</ul>" gives ul two empty text children around li.
func Build(tokens []Token) *Node {
	root := newElement(RootName, make(map[string]string))
	stack := make([]*Node, 0)

	for _, token := range tokens {
		switch {
		case token.IsClosingTag():
			if len(stack) == 0 {
				continue
			}

			completed := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent := root

			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}

			parent.Children = append(parent.Children, completed)
		case token.Kind == TagToken:
			stack = append(stack, parseTag(token.Data))
		default:
			if len(stack) == 0 {
				continue
			}

			current := stack[len(stack)-1]
			current.Children = append(current.Children, newText(strings.TrimSpace(token.Data)))
		}
	}

	return root
}

func parseTag(raw string) *Node {
	content := strings.TrimSuffix(strings.TrimPrefix(raw, "<"), ">")
	parts := strings.Fields(content)

	if len(parts) == 0 {
		return newElement("", make(map[string]string))
	}

	return newElement(parts[0], parseAttributes(parts[1:]))
}

// parseAttributes reads key=value fragments. Fragments without '=' are
// skipped and a repeated key keeps its last value.
func parseAttributes(fragments []string) map[string]string {
	attributes := make(map[string]string, len(fragments))

	for _, fragment := range fragments {
		key, value, ok := strings.Cut(fragment, "=")

		if !ok {
			continue
		}

		value = strings.TrimPrefix(value, `"`)
		attributes[key] = strings.TrimSuffix(value, `"`)
	}

	return attributes
}

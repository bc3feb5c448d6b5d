package tbrowser

import "strings"

// RootName is the tag name of the synthetic element returned by Build.
const RootName = "root"

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	}

	return "unknown"
}

// Node is either an element (Name, Attributes, Children) or a text node
// (Value). Text nodes never have children.
type Node struct {
	Type       NodeType
	Name       string
	Attributes map[string]string
	Value      string
	Children   []*Node
}

func newElement(name string, attributes map[string]string) *Node {
	return &Node{Type: ElementNode, Name: name, Attributes: attributes}
}

func newText(value string) *Node {
	return &Node{Type: TextNode, Value: value}
}

func (n *Node) IsElement() bool {
	return n.Type == ElementNode
}

func (n *Node) IsText() bool {
	return n.Type == TextNode
}

func (n *Node) Attr(key string) (string, bool) {
	value, ok := n.Attributes[key]
	return value, ok
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}

	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindAll returns the descendant elements called name, in document order.
func (n *Node) FindAll(name string) []*Node {
	children := make([]*Node, 0)

	for _, c := range n.Children {
		if c.IsElement() && c.Name == name {
			children = append(children, c)
		}

		children = append(children, c.FindAll(name)...)
	}

	return children
}

func (n *Node) First(name string) *Node {
	for _, c := range n.Children {
		if c.IsElement() && c.Name == name {
			return c
		}

		if found := c.First(name); found != nil {
			return found
		}
	}

	return nil
}

// InnerText joins the non-empty text below n with single spaces.
func (n *Node) InnerText() string {
	parts := make([]string, 0)

	n.Walk(func(c *Node) bool {
		if c.IsText() && c.Value != "" {
			parts = append(parts, c.Value)
		}
		return true
	})

	return strings.Join(parts, " ")
}

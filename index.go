package tbrowser

import (
	"sort"
	"strings"
)

// Index maps tag names, "#id" and ".class" keys to the elements below a
// root, each list in document order. The key "*" lists every element.
type Index struct {
	root  *Node
	all   []*Node
	tags  map[string][]*Node
	order map[*Node]int
}

func NewIndex(root *Node) *Index {
	idx := &Index{
		root:  root,
		all:   make([]*Node, 0),
		tags:  make(map[string][]*Node),
		order: make(map[*Node]int),
	}

	root.Walk(func(n *Node) bool {
		idx.order[n] = len(idx.order)

		if n == root || !n.IsElement() {
			return true
		}

		idx.all = append(idx.all, n)

		// Names starting with '#' or '.' would collide with id and class keys.
		if !strings.HasPrefix(n.Name, "#") && !strings.HasPrefix(n.Name, ".") {
			idx.addTag(n.Name, n)
		}

		if id := n.Attributes["id"]; id != "" {
			idx.addTag("#"+id, n)
		}

		if class, ok := n.Attributes["class"]; ok {
			idx.addClasses(class, n)
		}

		return true
	})

	return idx
}

func (idx *Index) addTag(id string, item *Node) {
	tags := idx.tags[id]

	if len(tags) > 0 && tags[len(tags)-1] == item {
		return
	}

	idx.tags[id] = append(tags, item)
}

func (idx *Index) addClasses(attr string, item *Node) {
	for _, class := range strings.Fields(attr) {
		idx.addTag("."+class, item)
	}
}

func (idx *Index) Root() *Node {
	return idx.root
}

// Get returns the elements stored under key, or nil.
func (idx *Index) Get(key string) []*Node {
	if key == "*" {
		return idx.all
	}

	return idx.tags[key]
}

// Keys lists the stored keys, sorted.
func (idx *Index) Keys() []string {
	keys := make([]string, 0, len(idx.tags))

	for k := range idx.tags {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func (idx *Index) sort(nodes []*Node) {
	sort.Slice(nodes, func(i, j int) bool {
		return idx.order[nodes[i]] < idx.order[nodes[j]]
	})
}

package tbrowser

import (
	"log"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type combinator int

const (
	descendant combinator = iota
	child
)

type step struct {
	combinator combinator
	qualifiers []string
}

// Selector is a compiled query. It understands compound selectors made of
// tag names, ".class", "#id" and "*", joined by whitespace (descendant) or
// '>' (child).
type Selector struct {
	query string
	steps []step
}

func Compile(query string) (*Selector, error) {
	s := &Selector{query: query}
	next := descendant
	pending := false
	length := len(query)

	for i := 0; i < length; {
		switch c := query[i]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '>':
			if len(s.steps) == 0 || pending {
				return nil, errors.Errorf("invalid query %q: unexpected '>' at offset %d", query, i)
			}

			next, pending = child, true
			i++
		default:
			qualifiers, end, err := parseQualifiers(query, i)

			if err != nil {
				return nil, errors.Wrapf(err, "invalid query %q", query)
			}

			s.steps = append(s.steps, step{combinator: next, qualifiers: qualifiers})
			next, pending = descendant, false
			i = end
		}
	}

	if len(s.steps) == 0 {
		return nil, errors.Errorf("invalid query %q: no selector", query)
	}

	if pending {
		return nil, errors.Errorf("invalid query %q: trailing '>'", query)
	}

	return s, nil
}

func MustCompile(query string) *Selector {
	s, err := Compile(query)

	if err != nil {
		log.Panicf("%v", err)
	}

	return s
}

func (s *Selector) String() string {
	return s.query
}

// Match returns the elements below root matching s, in document order.
func (s *Selector) Match(root *Node) []*Node {
	return s.MatchIndex(NewIndex(root))
}

// MatchIndex is Match over a prebuilt index.
func (s *Selector) MatchIndex(idx *Index) []*Node {
	first := s.steps[0]
	tags := filter(idx.Get(first.qualifiers[0]), first.qualifiers)

	for _, st := range s.steps[1:] {
		if len(tags) == 0 {
			return nil
		}

		seen := make(map[*Node]struct{})
		matched := make([]*Node, 0)

		for _, t := range tags {
			collect(t, st, seen, &matched)
		}

		idx.sort(matched)
		tags = matched
	}

	if len(tags) == 0 {
		return nil
	}

	return append([]*Node(nil), tags...)
}

// Query compiles selector and matches it below n.
func (n *Node) Query(selector string) ([]*Node, error) {
	s, err := Compile(selector)

	if err != nil {
		return nil, err
	}

	return s.Match(n), nil
}

func collect(t *Node, st step, seen map[*Node]struct{}, container *[]*Node) {
	add := func(c *Node) {
		if _, ok := seen[c]; ok || !matchQualifiers(st.qualifiers, c) {
			return
		}

		seen[c] = struct{}{}
		*container = append(*container, c)
	}

	if st.combinator == child {
		for _, c := range t.Children {
			add(c)
		}

		return
	}

	for _, c := range t.Children {
		c.Walk(func(d *Node) bool {
			add(d)
			return true
		})
	}
}

func filter(tags []*Node, qualifiers []string) []*Node {
	filtered := make([]*Node, 0, len(tags))

	for _, t := range tags {
		if matchQualifiers(qualifiers, t) {
			filtered = append(filtered, t)
		}
	}

	return filtered
}

func parseQualifiers(query string, i int) ([]string, int, error) {
	var qualifiers []string

	length := len(query)

	for i < length {
		start := i

		if query[i] == '*' {
			qualifiers = append(qualifiers, "*")
			i++
			continue
		}

		if query[i] == '.' || query[i] == '#' {
			i++
		}

		i = getQualifier(query, i)

		if i == start {
			break
		}

		if i == start+1 && (query[start] == '.' || query[start] == '#') {
			return nil, i, errors.Errorf("empty %q qualifier at offset %d", query[start], start)
		}

		qualifiers = append(qualifiers, query[start:i])
	}

	if len(qualifiers) == 0 {
		return nil, i, errors.Errorf("unexpected %q at offset %d", query[i], i)
	}

	sort.SliceStable(qualifiers, cmpQualifier(qualifiers))

	return qualifiers, i, nil
}

func getQualifier(query string, i int) int {
	for ; i < len(query) && isValidQualifierChar(query[i]); i++ {
	}

	return i
}

func isValidQualifierChar(c uint8) bool {
	return ('0' <= c && c <= '9') ||
		('A' <= c && c <= 'Z') ||
		('a' <= c && c <= 'z') ||
		c == '-' || c == '_'
}

// cmpQualifier moves the most selective qualifier to the front, since the
// first one picks the candidate list from the index.
func cmpQualifier(qualifiers []string) func(int, int) bool {
	rank := func(q string) int {
		switch q[0] {
		case '#':
			return 0
		case '.':
			return 2
		case '*':
			return 3
		}
		return 1
	}

	return func(a, b int) bool {
		return rank(qualifiers[a]) < rank(qualifiers[b])
	}
}

func matchQualifiers(qualifiers []string, t *Node) bool {
	if !t.IsElement() {
		return false
	}

	for _, qualifier := range qualifiers {
		switch qualifier[0] {
		case '*':
		case '.':
			if !hasClass(t.Attributes["class"], qualifier[1:]) {
				return false
			}
		case '#':
			if t.Attributes["id"] != qualifier[1:] {
				return false
			}
		default:
			if t.Name != qualifier {
				return false
			}
		}
	}

	return true
}

func hasClass(attr string, class string) bool {
	for _, c := range strings.Fields(attr) {
		if c == class {
			return true
		}
	}

	return false
}

package tbrowser

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Dump writes n and its descendants one per line, indented two spaces per
// level. Elements print as <name key="value">, with keys sorted; text prints
// as a quoted string.
func (n *Node) Dump(w io.Writer) error {
	return errors.Wrap(n.dump(w, 0), "dump tree")
}

func (n *Node) String() string {
	var b strings.Builder
	_ = n.dump(&b, 0)
	return b.String()
}

func (n *Node) dump(w io.Writer, depth int) error {
	indent := strings.Repeat("  ", depth)

	var err error

	if n.IsText() {
		_, err = fmt.Fprintf(w, "%s%q\n", indent, n.Value)
	} else {
		_, err = fmt.Fprintf(w, "%s<%s%s>\n", indent, n.Name, formatAttributes(n.Attributes))
	}

	if err != nil {
		return err
	}

	for _, c := range n.Children {
		if err = c.dump(w, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func formatAttributes(attributes map[string]string) string {
	if len(attributes) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attributes))

	for k := range attributes {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var b strings.Builder

	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, attributes[k])
	}

	return b.String()
}

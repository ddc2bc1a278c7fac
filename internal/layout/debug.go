package layout

import (
	"fmt"
	"io"
	"strings"
)

// Walk visits every node in the subtree in depth-first pre-order, including
// display:none nodes. Returning false from fn skips the node's children.
func Walk(n *Node, fn func(n *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(n *Node, depth int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, child := range n.children {
		walk(child, depth+1, fn)
	}
}

// Dump writes an indented description of the subtree's computed geometry,
// one node per line. Nodes without computed state (display:none, or never
// computed) print as skipped.
func Dump(w io.Writer, n *Node) {
	Walk(n, func(node *Node, depth int) bool {
		indent := strings.Repeat("  ", depth)
		label := node.ID
		if label == "" {
			label = "node"
		}
		c := node.computed
		if c == nil {
			fmt.Fprintf(w, "%s%s: (skipped)\n", indent, label)
			return true
		}
		if node.Style.ZIndex != 0 {
			fmt.Fprintf(w, "%s%s: x=%g y=%g w=%g h=%g z=%d\n",
				indent, label, c.X, c.Y, c.Width, c.Height, node.Style.ZIndex)
		} else {
			fmt.Fprintf(w, "%s%s: x=%g y=%g w=%g h=%g\n",
				indent, label, c.X, c.Y, c.Width, c.Height)
		}
		return true
	})
}

// DumpString is Dump into a string, for tests and error messages.
func DumpString(n *Node) string {
	var sb strings.Builder
	Dump(&sb, n)
	return sb.String()
}

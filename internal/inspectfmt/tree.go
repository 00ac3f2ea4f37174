// Package inspectfmt renders storage trees and footprints for the CLI.
package inspectfmt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"vartree/altset"
	"vartree/shape"
)

var (
	pairStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	leafStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Tree renders the storage tree with one line per node.
func Tree(t *shape.Tree, set *altset.Set, opts PrettyOpts) string {
	var b strings.Builder
	renderNode(&b, t, set, t.Root(), "", "", opts)
	return b.String()
}

func renderNode(b *strings.Builder, t *shape.Tree, set *altset.Set, id shape.NodeID, prefix, branch string, opts PrettyOpts) {
	n, ok := t.Node(id)
	if !ok {
		return
	}
	label := nodeLabel(n, set, opts)
	line := prefix + branch + label
	if opts.Width > 0 && runewidth.StringWidth(line) > opts.Width {
		line = runewidth.Truncate(line, opts.Width-3, "...")
	}
	b.WriteString(line)
	b.WriteByte('\n')
	if n.Kind != shape.NodePair {
		return
	}
	childPrefix := prefix
	switch branch {
	case "├── ":
		childPrefix += "│   "
	case "└── ":
		childPrefix += "    "
	}
	renderNode(b, t, set, n.Left, childPrefix, "├── ", opts)
	renderNode(b, t, set, n.Right, childPrefix, "└── ", opts)
}

func nodeLabel(n shape.Node, set *altset.Set, opts PrettyOpts) string {
	switch n.Kind {
	case shape.NodeLeaf:
		name := fmt.Sprintf("#%d", n.Alt)
		if alt, ok := set.At(n.Alt); ok {
			name = fmt.Sprintf("#%d %s (%v)", n.Alt, alt.Name, alt.Type)
		}
		if opts.Color {
			return leafStyle.Render("leaf ") + name
		}
		return "leaf " + name
	case shape.NodePair:
		label := fmt.Sprintf("size=%d depth=%d", n.Size, n.Depth)
		if opts.Color {
			return pairStyle.Render("pair ") + dimStyle.Render(label)
		}
		return "pair " + label
	default:
		return n.Kind.String()
	}
}

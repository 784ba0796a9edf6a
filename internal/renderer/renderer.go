package renderer

import (
	"fmt"
	"strings"

	"github.com/Akaiko1/code-reader/internal/scanner"
)

const (
	treeBranch     = "├── "
	treeLastBranch = "└── "
	treeSpacing    = "    "
	treeConnection = "│   "
)

// TreeRenderer renders a workspace tree as text.
type TreeRenderer interface {
	RenderTree(root *scanner.FileNode) string
}

// StandardTreeRenderer draws the tree with box-drawing connectors, one entry
// per line, directories suffixed with "/".
type StandardTreeRenderer struct {
	// OnlyExpanded limits the output to what the explorer currently shows.
	OnlyExpanded bool
}

// RenderTree renders root and its descendants.
func (r *StandardTreeRenderer) RenderTree(root *scanner.FileNode) string {
	if root == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(label(root) + "\n")
	r.renderChildren(&b, root, "")
	return b.String()
}

func (r *StandardTreeRenderer) renderChildren(b *strings.Builder, node *scanner.FileNode, prefix string) {
	if r.OnlyExpanded && !node.Expanded {
		return
	}
	for i, child := range node.Children {
		connector, next := treeBranch, treeConnection
		if i == len(node.Children)-1 {
			connector, next = treeLastBranch, treeSpacing
		}
		fmt.Fprintf(b, "%s%s%s\n", prefix, connector, label(child))
		if child.IsDir() {
			r.renderChildren(b, child, prefix+next)
		}
	}
}

func label(n *scanner.FileNode) string {
	if n.IsDir() {
		return n.Name + "/"
	}
	return n.Name
}

package cli

import (
	"strings"

	"github.com/Veraticus/cattree/internal/category"
)

// RenderTree draws the subtree rooted at root with box-drawing connectors,
// one category per line. The root is styled as a title and leaves subtly.
func RenderTree(root *category.Category) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(root.Name()))
	b.WriteString("\n")
	renderChildren(&b, root, "")
	return b.String()
}

func renderChildren(b *strings.Builder, node *category.Category, prefix string) {
	children := node.Children()
	for i, child := range children {
		connector, indent := "├── ", "│   "
		if i == len(children)-1 {
			connector, indent = "└── ", "    "
		}

		b.WriteString(BranchStyle.Render(prefix + connector))
		if child.IsLeaf() {
			b.WriteString(LeafStyle.Render(child.Name()))
		} else {
			b.WriteString(child.Name())
		}
		if child.Description != "" {
			b.WriteString(" ")
			b.WriteString(SubtleStyle.Render("(" + child.Description + ")"))
		}
		b.WriteString("\n")

		renderChildren(b, child, prefix+indent)
	}
}

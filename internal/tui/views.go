package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/cattree/internal/cli"
)

// View renders the current category, its children and the selection details.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(cli.FormatTitle(m.current.Path().String()))
	b.WriteString("\n\n")

	children := m.current.Children()
	if len(children) == 0 {
		b.WriteString(cli.SubtleStyle.Render("  (no children)"))
		b.WriteString("\n")
	}
	for i, child := range children {
		cursor := "  "
		if i == m.cursor {
			cursor = cli.PromptStyle.Render("> ")
		}

		name := cli.LeafStyle.Render(child.Name())
		if !child.IsLeaf() {
			name = child.Name() + cli.SubtleStyle.Render(fmt.Sprintf("/ (%d)", child.Size()-1))
		}
		b.WriteString(cursor + name + "\n")
	}

	if selected := m.Selected(); selected != nil {
		b.WriteString("\n")
		b.WriteString(m.renderDetails())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

func (m Model) renderDetails() string {
	selected := m.Selected()

	lines := []string{cli.SubtleStyle.Render(selected.Path().String())}
	if selected.Description != "" {
		lines = append(lines, selected.Description)
	}
	if selected.Image != "" {
		lines = append(lines, cli.SubtleStyle.Render("image: "+selected.Image))
	}

	box := cli.BoxStyle
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	return box.Render(strings.Join(lines, "\n")) + "\n"
}

// Package tui provides an interactive browser for category trees built on
// Bubble Tea.
package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/cattree/internal/category"
)

// Model shows the children of one category at a time. The cursor selects a
// child; opening it makes it the current category.
type Model struct {
	root     *category.Category
	current  *category.Category
	help     help.Model
	keymap   KeyMap
	cursor   int
	width    int
	height   int
	quitting bool
}

// NewModel creates a browser positioned at start, which must belong to the
// tree rooted at root.
func NewModel(root, start *category.Category) Model {
	if start == nil {
		start = root
	}
	return Model{
		root:    root,
		current: start,
		help:    help.New(),
		keymap:  DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	children := m.current.Children()

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(children)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Open):
		if len(children) == 0 {
			break
		}
		if next := children[m.cursor]; !next.IsLeaf() {
			m.current = next
			m.cursor = 0
		}

	case key.Matches(msg, m.keymap.Back):
		if m.current == m.root || m.current.Parent() == nil {
			break
		}
		from := m.current
		m.current = from.Parent()
		m.cursor = max(0, slices.Index(m.current.Children(), from))

	case key.Matches(msg, m.keymap.Home):
		m.current = m.root
		m.cursor = 0
	}

	return m, nil
}

// Current returns the category whose children are listed.
func (m Model) Current() *category.Category {
	return m.current
}

// Selected returns the child under the cursor, or nil for a leaf.
func (m Model) Selected() *category.Category {
	children := m.current.Children()
	if len(children) == 0 {
		return nil
	}
	return children[m.cursor]
}

package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/cattree/internal/category"
)

// Run browses the tree rooted at root, starting at start, until the user
// quits or ctx is canceled.
func Run(ctx context.Context, root, start *category.Category) error {
	if root == nil {
		return fmt.Errorf("tree is required")
	}

	p := tea.NewProgram(NewModel(root, start),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/cattree/internal/category"
	"github.com/Veraticus/cattree/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [path]",
		Short: "Explore the tree interactively",
		Long: `Open a full-screen browser over the tree, starting at the root or at path.
Use the arrow keys or h/j/k/l to move, enter to open a category and q to quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return readTree(cmd, func(root *category.Category) error {
				start := root
				if len(args) == 1 {
					var err error
					if start, err = mustResolve(root, args[0]); err != nil {
						return err
					}
				}
				return tui.Run(cmd.Context(), root, start)
			})
		},
	}
}

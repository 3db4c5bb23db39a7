package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cattree/internal/category"
	"github.com/Veraticus/cattree/internal/cli"
)

// nodeOrRoot resolves the optional path argument, defaulting to the root.
func nodeOrRoot(root *category.Category, args []string) (*category.Category, error) {
	if len(args) == 0 {
		return root, nil
	}
	return mustResolve(root, args[0])
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [path]",
		Short: "Draw the tree",
		Long:  `Draw the whole tree, or the subtree at path, one category per line.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return readTree(cmd, func(root *category.Category) error {
				node, err := nodeOrRoot(root, args)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), cli.RenderTree(node))
				return nil
			})
		},
	}
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Show one category",
		Long: `Look up a category by path and show its details.

The first segment of the path may name any category in the tree; the
following segments must then name direct children. With the tree
food/fruits/apple/red, "apple/red" and "red" both find the same category
while "food/apple" finds nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return readTree(cmd, func(root *category.Category) error {
				node, err := mustResolve(root, args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, cli.FormatTitle(node.Path().String()))
				fmt.Fprintf(out, "  Name:        %s\n", node.Name())
				if node.Description != "" {
					fmt.Fprintf(out, "  Description: %s\n", node.Description)
				}
				if node.Image != "" {
					fmt.Fprintf(out, "  Image:       %s\n", node.Image)
				}
				if parent := node.Parent(); parent != nil {
					fmt.Fprintf(out, "  Parent:      %s\n", parent.Path())
				}
				fmt.Fprintf(out, "  Children:    %d\n", len(node.Children()))
				fmt.Fprintf(out, "  Size:        %d\n", node.Size())
				switch {
				case node.IsRoot():
					fmt.Fprintln(out, cli.SubtleStyle.Render("  root"))
				case node.IsLeaf():
					fmt.Fprintln(out, cli.SubtleStyle.Render("  leaf"))
				}
				return nil
			})
		},
	}
}

func sizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size [path]",
		Short: "Count categories",
		Long:  `Count the categories in the tree, or in the subtree at path, including its top.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return readTree(cmd, func(root *category.Category) error {
				node, err := nodeOrRoot(root, args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), node.Size())
				return nil
			})
		},
	}
}

func leavesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaves [path]",
		Short: "List categories without children",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return readTree(cmd, func(root *category.Category) error {
				node, err := nodeOrRoot(root, args)
				if err != nil {
					return err
				}
				printPaths(cmd.OutOrStdout(), node.Leaves())
				return nil
			})
		},
	}
}

func depthCmd() *cobra.Command {
	var under string

	cmd := &cobra.Command{
		Use:   "depth <n>",
		Short: "List categories at a depth",
		Long:  `List the categories n levels below the root, or below --under. Depth 0 is the root itself.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			depth, err := strconv.Atoi(args[0])
			if err != nil {
				return treeError(fmt.Sprintf("depth %q is not a whole number", args[0]),
					fmt.Errorf("%w: %w", category.ErrInvalidDepth, err))
			}

			return readTree(cmd, func(root *category.Category) error {
				node := root
				if under != "" {
					if node, err = mustResolve(root, under); err != nil {
						return err
					}
				}
				nodes, err := node.GetByDepth(depth)
				if err != nil {
					return treeError(fmt.Sprintf("invalid depth %d", depth), err)
				}
				printPaths(cmd.OutOrStdout(), nodes)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&under, "under", "", "count depth from the category at this path")

	return cmd
}

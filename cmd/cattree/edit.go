package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cattree/internal/category"
	"github.com/Veraticus/cattree/internal/cli"
	"github.com/Veraticus/cattree/internal/common"
)

func addCmd() *cobra.Command {
	var (
		under       string
		wrap        string
		description string
		image       string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Long: `Add a category under the root, under the category at --under, or above
the category at --wrap. A wrapping category takes the place of the wrapped one
and adopts it as its only child.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editTree(cmd, func(root *category.Category) error {
				child, err := category.New(args[0],
					category.WithDescription(description),
					category.WithImage(image),
				)
				if err != nil {
					return treeError(fmt.Sprintf("cannot create category %q", args[0]), err)
				}

				if wrap != "" {
					target, err := mustResolve(root, wrap)
					if err != nil {
						return err
					}
					if target.IsRoot() {
						return common.NewUserError("cannot wrap the root; export the tree and edit it instead", category.ErrRootMove)
					}
					if err := target.InsertParent(child); err != nil {
						return treeError(fmt.Sprintf("cannot wrap %q in %q", wrap, child.Name()), err)
					}
				} else {
					parent := root
					if under != "" {
						if parent, err = mustResolve(root, under); err != nil {
							return err
						}
					}
					if err := parent.Add(child); err != nil {
						return treeError(fmt.Sprintf("cannot add %q under %q", child.Name(), parent.Path()), err)
					}
				}

				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Added "+child.Path().String()))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&under, "under", "", "path of the parent category (default: the root)")
	cmd.Flags().StringVar(&wrap, "wrap", "", "path of a category to insert the new category above")
	cmd.Flags().StringVar(&description, "description", "", "category description")
	cmd.Flags().StringVar(&image, "image", "", "category image")
	cmd.MarkFlagsMutuallyExclusive("under", "wrap")

	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a category and everything below it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editTree(cmd, func(root *category.Category) error {
				node, err := mustResolve(root, args[0])
				if err != nil {
					return err
				}
				from, size := node.Path(), node.Size()

				if err := root.Delete(args[0]); err != nil {
					return treeError(fmt.Sprintf("cannot delete %q", args[0]), err)
				}

				slog.Debug("deleted subtree", "path", from, "size", size)
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Deleted %s (%d categories)", from, size)))
				return nil
			})
		},
	}
}

func moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <path> <new-parent>",
		Short: "Move a category under another category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editTree(cmd, func(root *category.Category) error {
				node, err := mustResolve(root, args[0])
				if err != nil {
					return err
				}
				from := node.Path()

				if err := root.Move(args[0], args[1]); err != nil {
					return treeError(fmt.Sprintf("cannot move %q under %q", args[0], args[1]), err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Moved %s to %s", from, node.Path())))
				return nil
			})
		},
	}
}

func updateCmd() *cobra.Command {
	var (
		name        string
		description string
		image       string
	)

	cmd := &cobra.Command{
		Use:   "update <path>",
		Short: "Rename a category or change its details",
		Long: `Change the name, description or image of the category at path.

A new name may not repeat the name of any category above or below it, and may
not be part of the name of a sibling: "app" is refused next to "apple".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("name") && description == "" && image == "" {
				return common.NewUserError("must specify --name, --description or --image to update", nil)
			}

			return editTree(cmd, func(root *category.Category) error {
				node, err := mustResolve(root, args[0])
				if err != nil {
					return err
				}

				fields := category.UpdateFields{
					Description: description,
					Image:       image,
				}
				if cmd.Flags().Changed("name") {
					fields.Name = &name
				}
				if err := node.Update(fields); err != nil {
					return treeError(fmt.Sprintf("cannot update %q", args[0]), err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Updated "+node.Path().String()))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&image, "image", "", "new image")

	return cmd
}

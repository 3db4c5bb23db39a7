package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cattree/internal/category"
	"github.com/Veraticus/cattree/internal/cli"
	"github.com/Veraticus/cattree/internal/common"
	"github.com/Veraticus/cattree/internal/treefile"
)

func importCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Load a tree from a YAML file",
		Long: `Read a tree from a YAML document and store it under the name given with
--tree. Each node has a name and optional description, image and children:

  name: food
  children:
    - name: fruits
      children:
        - name: apple

An existing tree is only replaced with --force.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := treeName()

			root, err := treefile.ReadFile(args[0])
			if err != nil {
				if errors.Is(err, treefile.ErrEmptyDocument) {
					return common.NewUserError(fmt.Sprintf("%s holds no tree", args[0]), err)
				}
				return treeError(fmt.Sprintf("cannot import %s", args[0]), err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			exists, err := treeExists(ctx, store, name)
			if err != nil {
				return err
			}
			if exists && !force {
				return common.NewUserError(fmt.Sprintf("tree %q already exists; use --force to replace it", name), nil)
			}
			if exists {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning(fmt.Sprintf("Replacing existing tree %q", name)))
			}

			if err := store.SaveTree(ctx, name, root); err != nil {
				return fmt.Errorf("failed to save tree: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Imported %d categories into tree %q", root.Size(), name)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace an existing tree")

	return cmd
}

func exportCmd() *cobra.Command {
	var under string

	cmd := &cobra.Command{
		Use:   "export [file.yaml]",
		Short: "Write the tree as YAML",
		Long:  `Write the tree, or the subtree at --under, as a YAML document to a file or to standard output.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return readTree(cmd, func(root *category.Category) error {
				node := root
				if under != "" {
					var err error
					if node, err = mustResolve(root, under); err != nil {
						return err
					}
				}

				if len(args) == 0 {
					return treefile.Encode(cmd.OutOrStdout(), node)
				}
				if err := treefile.WriteFile(args[0], node); err != nil {
					return fmt.Errorf("failed to write %s: %w", args[0], err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Exported %d categories to %s", node.Size(), args[0])))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&under, "under", "", "export only the subtree at this path")

	return cmd
}

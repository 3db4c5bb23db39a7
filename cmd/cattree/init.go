package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cattree/internal/category"
	"github.com/Veraticus/cattree/internal/cli"
	"github.com/Veraticus/cattree/internal/common"
)

func initCmd() *cobra.Command {
	var (
		description string
		image       string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init <root-name>",
		Short: "Create a new tree",
		Long: `Create a tree holding only a root category and store it under the name
given with --tree. An existing tree is only replaced with --force.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := treeName()

			root, err := category.New(args[0],
				category.WithDescription(description),
				category.WithImage(image),
			)
			if err != nil {
				return treeError(fmt.Sprintf("cannot create root %q", args[0]), err)
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

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Created tree %q with root %q", name, root.Name())))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "root category description")
	cmd.Flags().StringVar(&image, "image", "", "root category image")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing tree")

	return cmd
}

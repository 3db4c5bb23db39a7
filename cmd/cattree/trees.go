package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Veraticus/cattree/internal/cli"
	"github.com/Veraticus/cattree/internal/common"
)

func treesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trees",
		Short: "List stored trees",
		Long:  `List every tree stored in the database with its root and size.`,
		Args:  cobra.NoArgs,
		RunE:  runTreesList,
	}

	cmd.AddCommand(deleteTreeCmd())

	return cmd
}

func runTreesList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	trees, err := store.ListTrees(ctx)
	if err != nil {
		return fmt.Errorf("failed to list trees: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(trees) == 0 {
		fmt.Fprintln(out, cli.FormatInfo("No trees found. Use 'cattree init' or 'cattree import' to create one."))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("Tree"),
		headerStyle.Render("Root"),
		headerStyle.Render("Size"),
		headerStyle.Render("Updated"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 10),
		strings.Repeat("-", 10),
		strings.Repeat("-", 4),
		strings.Repeat("-", 16))

	current := treeName()
	for _, info := range trees {
		label := info.Name
		if info.Name == current {
			label += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", label, info.RootName, info.Size, info.UpdatedAt.Local().Format(time.DateTime))
	}

	return nil
}

func deleteTreeCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			exists, err := treeExists(ctx, store, name)
			if err != nil {
				return err
			}
			if !exists {
				return common.NewUserError(fmt.Sprintf("no tree named %q", name), common.ErrNotFound)
			}

			if !yes {
				reader := cli.NewNonBlockingReader(cmd.InOrStdin())
				ok, err := cli.Confirm(ctx, reader, cmd.OutOrStdout(), fmt.Sprintf("Delete tree %q and all of its categories?", name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Canceled"))
					return nil
				}
			}

			if err := store.DeleteTree(ctx, name); err != nil {
				return fmt.Errorf("failed to delete tree: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Deleted tree %q", name)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

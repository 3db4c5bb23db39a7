package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cattree/internal/cli"
	"github.com/Veraticus/cattree/internal/common"
	"github.com/Veraticus/cattree/internal/config"
	"github.com/Veraticus/cattree/internal/treefile"
)

func backupCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "backup <dir>",
		Short: "Export every stored tree to a directory",
		Long: `Write each stored tree to <dir>/<tree>.yaml. The directory is created if it
does not exist and existing files are overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			dir := config.ExpandPath(args[0])

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			trees, err := store.ListTrees(ctx)
			if err != nil {
				return fmt.Errorf("failed to list trees: %w", err)
			}
			if len(trees) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("No trees to back up"))
				return nil
			}

			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create backup directory: %w", err)
			}

			var step func()
			if !quiet {
				bar := cli.NewProgressBar(cmd.ErrOrStderr(), len(trees), "Backing up trees...")
				step = func() { cli.Step(bar) }
			}

			for _, info := range trees {
				if err := ctx.Err(); err != nil {
					return err
				}
				root, err := store.LoadTree(ctx, info.Name)
				if err != nil {
					return fmt.Errorf("failed to load tree %q: %w", info.Name, err)
				}
				file := filepath.Join(dir, info.Name+".yaml")
				if err := treefile.WriteFile(file, root); err != nil {
					return fmt.Errorf("failed to write tree %q: %w", info.Name, err)
				}
				common.LogDebug("backed up tree", common.Fields{"tree": info.Name, "file": file, "size": root.Size()})
				if step != nil {
					step()
				}
			}

			common.LogInfo("backup complete", common.Fields{"trees": len(trees), "dir": dir})
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Backed up %d trees to %s", len(trees), dir)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not show a progress bar")

	return cmd
}

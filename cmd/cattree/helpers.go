package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cattree/internal/category"
	"github.com/Veraticus/cattree/internal/common"
	"github.com/Veraticus/cattree/internal/config"
	"github.com/Veraticus/cattree/internal/service"
	"github.com/Veraticus/cattree/internal/storage"
)

// initStorage opens the configured database and runs migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.DefaultDatabasePath
	if appConfig != nil {
		dbPath = appConfig.Database.Path
	}

	store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func treeName() string {
	if appConfig == nil {
		return config.DefaultTreeName
	}
	return appConfig.Tree.Name
}

// loadTree loads the selected tree, pointing the user at init or import when
// it does not exist yet.
func loadTree(ctx context.Context, store service.TreeStore) (*category.Category, error) {
	name := treeName()
	root, err := store.LoadTree(ctx, name)
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.NewUserError(
			fmt.Sprintf("no tree named %q; create one with 'cattree init' or 'cattree import'", name), err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tree %q: %w", name, err)
	}
	return root, nil
}

// treeExists reports whether a tree is stored under name.
func treeExists(ctx context.Context, store service.TreeStore, name string) (bool, error) {
	_, err := store.LoadTree(ctx, name)
	if errors.Is(err, common.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// readTree runs fn against the selected tree without saving it.
func readTree(cmd *cobra.Command, fn func(root *category.Category) error) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	root, err := loadTree(ctx, store)
	if err != nil {
		return err
	}
	return fn(root)
}

// editTree loads the selected tree, applies fn and saves the result. Nothing
// is saved when fn fails.
func editTree(cmd *cobra.Command, fn func(root *category.Category) error) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	root, err := loadTree(ctx, store)
	if err != nil {
		return err
	}
	if err := fn(root); err != nil {
		return err
	}
	if err := store.SaveTree(ctx, treeName(), root); err != nil {
		common.LogError(err, "failed to save edited tree", common.Fields{"tree": treeName()})
		return fmt.Errorf("failed to save tree: %w", err)
	}
	return nil
}

// mustResolve returns the category at path or a user-facing error.
func mustResolve(root *category.Category, path string) (*category.Category, error) {
	node, err := root.Get(path)
	if err != nil {
		return nil, treeError(fmt.Sprintf("invalid path %q", path), err)
	}
	if node == nil {
		return nil, treeError(fmt.Sprintf("no category at %q", path), category.ErrCategoryDoesNotExist)
	}
	return node, nil
}

// treeError turns errors from the category package into user errors.
// Anything else is returned as is.
func treeError(msg string, err error) error {
	for _, target := range []error{
		category.ErrDuplicateName,
		category.ErrCategoryDoesNotExist,
		category.ErrRootDelete,
		category.ErrRootMove,
		category.ErrInvalidPath,
		category.ErrInvalidName,
		category.ErrInvalidDepth,
		category.ErrSameNameParent,
		category.ErrParentLoop,
	} {
		if errors.Is(err, target) {
			return common.NewUserError(msg, err)
		}
	}
	return err
}

func printPaths(w io.Writer, nodes []*category.Category) {
	for _, node := range nodes {
		fmt.Fprintln(w, node.Path())
	}
}

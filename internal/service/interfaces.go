// Package service defines the interfaces between the command layer and the
// persistence layer.
package service

import (
	"context"

	"github.com/Veraticus/cattree/internal/category"
	"github.com/Veraticus/cattree/internal/model"
)

// TreeStore defines the contract for persisting category trees by name.
type TreeStore interface {
	// SaveTree stores the tree rooted at root under name, replacing any
	// tree previously stored under that name.
	SaveTree(ctx context.Context, name string, root *category.Category) error

	// LoadTree rebuilds the tree stored under name. It returns an error
	// wrapping common.ErrNotFound when there is none.
	LoadTree(ctx context.Context, name string) (*category.Category, error)

	ListTrees(ctx context.Context) ([]model.TreeInfo, error)
	DeleteTree(ctx context.Context, name string) error

	Migrate(ctx context.Context) error
	Close() error
}

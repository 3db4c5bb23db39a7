package categories

import (
	"context"
	"testing"

	"github.com/Veraticus/cattree/internal/category"
)

// Builder provides a fluent interface for constructing test category trees.
// Steps are recorded and applied in order by Build, which fails the test on
// the first step that the category package rejects.
type Builder interface {
	// WithCategory adds a category directly under the root.
	WithCategory(name CategoryName) Builder

	// WithCategories adds categories, in order, under the category at parent.
	WithCategories(parent string, names ...CategoryName) Builder

	// WithDescription sets the description of the category at path.
	WithDescription(path string, description string) Builder

	// WithFixture grafts a fresh copy of the fixture's top-level categories
	// under the root.
	WithFixture(fixture Fixture) Builder

	// Build creates the tree.
	Build() *category.Category

	// Save builds the tree and stores it under treeName.
	Save(ctx context.Context, store TreeSaver, treeName string) *category.Category
}

// TreeSaver is the part of the storage layer Builder.Save needs.
type TreeSaver interface {
	SaveTree(ctx context.Context, name string, root *category.Category) error
}

// CategoryName represents a strongly-typed category name.
type CategoryName string

// String returns the string representation of the category name.
func (c CategoryName) String() string {
	return string(c)
}

// Names used by the predefined fixtures.
const (
	CategoryFood       CategoryName = "food"
	CategoryFruits     CategoryName = "fruits"
	CategoryVegetables CategoryName = "vegetables"
	CategoryApple      CategoryName = "apple"
	CategoryGrape      CategoryName = "grape"
	CategoryPear       CategoryName = "pear"
	CategoryPepper     CategoryName = "pepper"
	CategoryCarrot     CategoryName = "carrot"
	CategoryTomato     CategoryName = "tomato"
	CategoryRed        CategoryName = "red"
	CategoryGreen      CategoryName = "green"
	CategoryYellow     CategoryName = "yellow"

	CategoryAnimal CategoryName = "animal"
	CategoryMammal CategoryName = "mammal"
	CategoryDog    CategoryName = "dog"
	CategoryCat    CategoryName = "cat"
	CategoryLion   CategoryName = "lion"
)

type step func(root *category.Category) error

// categoryBuilder implements the Builder interface.
type categoryBuilder struct {
	t     *testing.T
	root  CategoryName
	steps []step
}

// NewBuilder creates a builder for a tree whose root is named root.
func NewBuilder(t *testing.T, root CategoryName) Builder {
	t.Helper()
	return &categoryBuilder{
		t:    t,
		root: root,
	}
}

func (b *categoryBuilder) WithCategory(name CategoryName) Builder {
	b.steps = append(b.steps, func(root *category.Category) error {
		child, err := category.New(name.String())
		if err != nil {
			return err
		}
		return root.Add(child)
	})
	return b
}

func (b *categoryBuilder) WithCategories(parent string, names ...CategoryName) Builder {
	for _, name := range names {
		b.steps = append(b.steps, func(root *category.Category) error {
			child, err := category.New(name.String())
			if err != nil {
				return err
			}
			return root.AddTo(parent, child)
		})
	}
	return b
}

func (b *categoryBuilder) WithDescription(path string, description string) Builder {
	b.steps = append(b.steps, func(root *category.Category) error {
		node, err := root.Get(path)
		if err != nil {
			return err
		}
		if node == nil {
			return category.ErrCategoryDoesNotExist
		}
		return node.Update(category.UpdateFields{Description: description})
	})
	return b
}

func (b *categoryBuilder) WithFixture(fixture Fixture) Builder {
	b.steps = append(b.steps, func(root *category.Category) error {
		for _, child := range fixture.Tree().Children() {
			if err := root.Add(child); err != nil {
				return err
			}
		}
		return nil
	})
	return b
}

func (b *categoryBuilder) Build() *category.Category {
	b.t.Helper()

	root, err := category.New(b.root.String())
	if err != nil {
		b.t.Fatalf("failed to create root %q: %v", b.root, err)
	}
	for i, s := range b.steps {
		if err := s(root); err != nil {
			b.t.Fatalf("failed to apply builder step %d: %v", i+1, err)
		}
	}
	return root
}

func (b *categoryBuilder) Save(ctx context.Context, store TreeSaver, treeName string) *category.Category {
	b.t.Helper()

	root := b.Build()
	if err := store.SaveTree(ctx, treeName, root); err != nil {
		b.t.Fatalf("failed to save tree %q: %v", treeName, err)
	}
	return root
}

// MustGet resolves path under root or fails the test.
func MustGet(t *testing.T, root *category.Category, path string) *category.Category {
	t.Helper()
	node, err := root.Get(path)
	if err != nil {
		t.Fatalf("failed to resolve %q: %v", path, err)
	}
	if node == nil {
		t.Fatalf("category %q not found in test tree", path)
	}
	return node
}

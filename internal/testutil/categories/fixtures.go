package categories

import (
	"sort"

	"github.com/Veraticus/cattree/internal/category"
)

// Fixture represents a predefined category tree for testing.
type Fixture interface {
	// Name returns the fixture's descriptive name.
	Name() string

	// Description returns a detailed description of the fixture's purpose.
	Description() string

	// Size returns the number of categories in the tree, root included.
	Size() int

	// Version returns the fixture version for evolution support.
	Version() int

	// Tree returns a freshly built copy of the fixture tree.
	Tree() *category.Category
}

// node describes a fixture tree declaratively.
type node struct {
	name     CategoryName
	children []node
}

func leaf(name CategoryName) node {
	return node{name: name}
}

func branch(name CategoryName, children ...node) node {
	return node{name: name, children: children}
}

func (n node) size() int {
	size := 1
	for _, child := range n.children {
		size += child.size()
	}
	return size
}

func (n node) build() *category.Category {
	children := make([]*category.Category, 0, len(n.children))
	for _, child := range n.children {
		children = append(children, child.build())
	}
	return category.MustNew(n.name.String(), category.WithChildren(children...))
}

// fixture implements the Fixture interface.
type fixture struct {
	name        string
	description string
	root        node
	version     int
}

func (f *fixture) Name() string             { return f.name }
func (f *fixture) Description() string      { return f.description }
func (f *fixture) Size() int                { return f.root.size() }
func (f *fixture) Version() int             { return f.version }
func (f *fixture) Tree() *category.Category { return f.root.build() }

// Predefined fixtures for common test scenarios.
var (
	// FixtureFood is a three-level tree that reuses colour names in several
	// branches, which exercises first-match lookup.
	FixtureFood = &fixture{
		name:        "Food",
		description: "Fruits and vegetables with repeated leaf names across branches",
		version:     1,
		root: branch(CategoryFood,
			branch(CategoryFruits,
				branch(CategoryApple, leaf(CategoryRed), leaf(CategoryGreen), leaf(CategoryYellow)),
				branch(CategoryGrape, leaf("muscat"), leaf("shiraz"), leaf("merlot"), leaf("cabernet sauvignon")),
				branch(CategoryPear, leaf("asian"), leaf("european"), leaf("chinese")),
			),
			branch(CategoryVegetables,
				branch(CategoryPepper, leaf(CategoryRed), leaf(CategoryGreen), leaf(CategoryYellow)),
				leaf(CategoryCarrot),
				branch(CategoryTomato, leaf(CategoryRed), leaf(CategoryGreen)),
			),
		),
	}

	// FixtureAnimal is a small, narrow tree.
	FixtureAnimal = &fixture{
		name:        "Animal",
		description: "A short chain with one fork",
		version:     1,
		root: branch(CategoryAnimal,
			branch(CategoryMammal,
				leaf(CategoryDog),
				branch(CategoryCat, leaf(CategoryLion)),
			),
		),
	}

	// FixtureSingle is a lone root.
	FixtureSingle = &fixture{
		name:        "Single",
		description: "A tree with only a root",
		version:     1,
		root:        leaf("solo"),
	}
)

// FixtureRegistry manages available fixtures.
type FixtureRegistry struct {
	fixtures map[string]Fixture
}

// NewFixtureRegistry creates a registry holding the predefined fixtures.
func NewFixtureRegistry() *FixtureRegistry {
	r := &FixtureRegistry{fixtures: make(map[string]Fixture)}
	r.Register(FixtureFood)
	r.Register(FixtureAnimal)
	r.Register(FixtureSingle)
	return r
}

// Register adds a fixture, replacing any fixture with the same name.
func (r *FixtureRegistry) Register(f Fixture) {
	r.fixtures[f.Name()] = f
}

// Get retrieves a fixture by name.
func (r *FixtureRegistry) Get(name string) (Fixture, bool) {
	f, ok := r.fixtures[name]
	return f, ok
}

// All returns all registered fixtures ordered by name.
func (r *FixtureRegistry) All() []Fixture {
	all := make([]Fixture, 0, len(r.fixtures))
	for _, f := range r.fixtures {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all
}

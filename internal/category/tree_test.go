package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cattree/internal/category"
	"github.com/Veraticus/cattree/internal/testutil/categories"
)

func strPtr(s string) *string { return &s }

func TestGet(t *testing.T) {
	tree := categories.FixtureFood.Tree()

	tests := []struct {
		path     any
		name     string
		wantName string
		wantPath string
	}{
		{name: "root", path: "food", wantName: "food", wantPath: "food"},
		{name: "first level", path: "fruits", wantName: "fruits", wantPath: "food/fruits"},
		{name: "from root", path: "food/fruits", wantName: "fruits", wantPath: "food/fruits"},
		{name: "full path", path: "food/fruits/apple", wantName: "apple", wantPath: "food/fruits/apple"},
		{name: "full path to leaf", path: "food/fruits/apple/red", wantName: "red", wantPath: "food/fruits/apple/red"},
		{name: "partial path", path: "fruits/apple/red", wantName: "red", wantPath: "food/fruits/apple/red"},
		{name: "short path", path: "apple/red", wantName: "red", wantPath: "food/fruits/apple/red"},
		{name: "first match wins", path: "red", wantName: "red", wantPath: "food/fruits/apple/red"},
		{name: "other branch", path: "tomato/red", wantName: "red", wantPath: "food/vegetables/tomato/red"},
		{name: "leaf without children", path: "carrot", wantName: "carrot", wantPath: "food/vegetables/carrot"},
		{name: "segments", path: []string{"pepper", "green"}, wantName: "green", wantPath: "food/vegetables/pepper/green"},
		{name: "path value", path: category.MustPath("grape/cabernet sauvignon"), wantName: "cabernet sauvignon", wantPath: "food/fruits/grape/cabernet sauvignon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := tree.Get(tt.path)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, tt.wantName, found.Name())
			assert.Equal(t, tt.wantPath, found.Path().String())
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	tree := categories.FixtureFood.Tree()

	for _, path := range []string{
		"food/apple", // skips the fruits level
		"apple/red/small",
		"cars",
		"fruits/pepper",
	} {
		t.Run(path, func(t *testing.T) {
			found, err := tree.Get(path)
			require.NoError(t, err)
			assert.Nil(t, found)
		})
	}
}

func TestGet_SameNodeByShortAndLongPath(t *testing.T) {
	tree := categories.FixtureFood.Tree()

	short, err := tree.Get("red")
	require.NoError(t, err)
	long, err := tree.Get("apple/red")
	require.NoError(t, err)
	assert.Same(t, short, long)
}

func TestGet_InvalidPath(t *testing.T) {
	tree := categories.FixtureFood.Tree()

	_, err := tree.Get("food//fruits")
	assert.ErrorIs(t, err, category.ErrInvalidPath)

	_, err = tree.Get(12)
	assert.ErrorIs(t, err, category.ErrPathType)
}

func TestGet_FromSubtree(t *testing.T) {
	tree := categories.FixtureFood.Tree()
	vegetables := categories.MustGet(t, tree, "vegetables")

	red, err := vegetables.Get("red")
	require.NoError(t, err)
	require.NotNil(t, red)
	assert.Equal(t, "food/vegetables/pepper/red", red.Path().String())

	apple, err := vegetables.Get("apple")
	require.NoError(t, err)
	assert.Nil(t, apple, "lookups never leave the receiver's subtree")
}

func TestFindStart(t *testing.T) {
	tree := categories.FixtureFood.Tree()

	tests := []struct {
		path string
		want string
	}{
		{path: "food", want: "food"},
		{path: "fruits", want: "food/fruits"},
		{path: "food/fruits", want: "food"},
		{path: "food/apple", want: "food"},
		{path: "green", want: "food/fruits/apple/green"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			found := tree.FindStart(category.MustPath(tt.path))
			require.NotNil(t, found)
			assert.Equal(t, tt.want, found.Path().String())
		})
	}

	assert.Nil(t, tree.FindStart(category.MustPath("cars")))
}

func TestFind(t *testing.T) {
	tree := categories.FixtureFood.Tree()
	fruits := categories.MustGet(t, tree, "fruits")

	found := fruits.Find(category.MustPath("fruits/apple/red"))
	require.NotNil(t, found)
	assert.Equal(t, "food/fruits/apple/red", found.Path().String())

	assert.Nil(t, fruits.Find(category.MustPath("apple/red")), "first segment must name the receiver")
	assert.Nil(t, tree.Find(category.MustPath("food/apple")), "only immediate children are searched")
}

func TestAdd(t *testing.T) {
	animal := categories.FixtureAnimal.Tree()

	bird := category.MustNew("bird")
	require.NoError(t, animal.Add(bird))
	assert.Contains(t, animal.Children(), bird)
	assert.Same(t, animal, bird.Parent())

	wildDog := category.MustNew("wild_dog")
	require.NoError(t, animal.AddTo("dog", wildDog))
	assert.Contains(t, categories.MustGet(t, animal, "dog").Children(), wildDog)

	tiger := category.MustNew("tiger")
	require.NoError(t, animal.AddTo("cat", tiger))
	assert.Contains(t, categories.MustGet(t, animal, "cat").Children(), tiger)

	whiteLion := category.MustNew("white_lion")
	require.NoError(t, animal.AddTo("cat/lion", whiteLion))
	assert.Contains(t, categories.MustGet(t, animal, "cat/lion").Children(), whiteLion)
	assert.Equal(t, "animal/mammal/cat/lion/white_lion", whiteLion.Path().String())
}

func TestAdd_Errors(t *testing.T) {
	tests := []struct {
		add     func(root *category.Category) error
		wantErr error
		name    string
	}{
		{
			name:    "sibling with the same name",
			add:     func(root *category.Category) error { return root.AddTo("mammal", category.MustNew("dog")) },
			wantErr: category.ErrDuplicateName,
		},
		{
			name:    "ancestor with the same name",
			add:     func(root *category.Category) error { return root.AddTo("lion", category.MustNew("mammal")) },
			wantErr: category.ErrDuplicateName,
		},
		{
			name: "descendant repeats an ancestor name",
			add: func(root *category.Category) error {
				return root.AddTo("dog", category.MustNew("pack", category.WithChildren(category.MustNew("animal"))))
			},
			wantErr: category.ErrDuplicateName,
		},
		{
			name:    "nil child",
			add:     func(root *category.Category) error { return root.Add(nil) },
			wantErr: category.ErrNotACategory,
		},
		{
			name:    "missing parent",
			add:     func(root *category.Category) error { return root.AddTo("bird", category.MustNew("owl")) },
			wantErr: category.ErrCategoryDoesNotExist,
		},
		{
			name:    "invalid path",
			add:     func(root *category.Category) error { return root.AddTo("cat/", category.MustNew("owl")) },
			wantErr: category.ErrInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := categories.FixtureAnimal.Tree()
			require.ErrorIs(t, tt.add(root), tt.wantErr)
			assert.Equal(t, categories.FixtureAnimal.Size(), root.Size(), "tree unchanged")
		})
	}
}

func TestAddChild(t *testing.T) {
	animal := category.MustNew("animal")
	cat := category.MustNew("cat")
	require.NoError(t, animal.AddChild(cat))
	assert.Contains(t, animal.Children(), cat)
	assert.Same(t, animal, cat.Parent())

	assert.ErrorIs(t, animal.AddChild(category.MustNew("cat")), category.ErrDuplicateName)
	assert.ErrorIs(t, cat.AddChild(category.MustNew("cat")), category.ErrDuplicateName)
	assert.ErrorIs(t, animal.AddChild(nil), category.ErrNotACategory)

	// Re-parenting through AddChild detaches from the old parent.
	zoo := category.MustNew("zoo")
	require.NoError(t, zoo.AddChild(cat))
	assert.NotContains(t, animal.Children(), cat)
	assert.Same(t, zoo, cat.Parent())
}

func TestRemoveChild(t *testing.T) {
	cat := category.MustNew("cat")
	dog := category.MustNew("dog")
	animal := category.MustNew("animal", category.WithChildren(cat, dog))

	animal.RemoveChild(cat)
	assert.Equal(t, []*category.Category{dog}, animal.Children())
	assert.Nil(t, cat.Parent())

	// A look-alike is not removed.
	animal.RemoveChild(category.MustNew("dog"))
	assert.Equal(t, []*category.Category{dog}, animal.Children())
	assert.Same(t, animal, dog.Parent())

	// Removing twice is harmless.
	animal.RemoveChild(cat)
	assert.Equal(t, []*category.Category{dog}, animal.Children())
}

func TestDelete(t *testing.T) {
	tests := []struct {
		path       string
		parentPath string
		target     string
	}{
		{path: "mammal", parentPath: "animal", target: "mammal"},
		{path: "mammal/cat", parentPath: "mammal", target: "cat"},
		{path: "mammal/cat/lion", parentPath: "cat", target: "lion"},
		{path: "cat/lion", parentPath: "cat", target: "lion"},
		{path: "lion", parentPath: "cat", target: "lion"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			root := categories.FixtureAnimal.Tree()
			parent := categories.MustGet(t, root, tt.parentPath)
			target := categories.MustGet(t, root, tt.target)
			size := target.Size()

			require.NoError(t, root.Delete(tt.path))
			assert.NotContains(t, parent.Children(), target)
			assert.Nil(t, target.Parent())
			assert.Equal(t, categories.FixtureAnimal.Size()-size, root.Size())
			assert.Equal(t, size, target.Size(), "deleted subtree stays intact")
		})
	}
}

func TestDelete_Errors(t *testing.T) {
	root := categories.FixtureAnimal.Tree()

	assert.ErrorIs(t, root.Delete("animal"), category.ErrRootDelete)
	assert.ErrorIs(t, root.Delete("bird"), category.ErrCategoryDoesNotExist)
	assert.ErrorIs(t, root.Delete(""), category.ErrInvalidPath)
	assert.Equal(t, categories.FixtureAnimal.Size(), root.Size())
}

func TestMove(t *testing.T) {
	root := categories.FixtureAnimal.Tree()
	lion := categories.MustGet(t, root, "lion")
	dog := categories.MustGet(t, root, "dog")
	cat := categories.MustGet(t, root, "cat")

	require.NoError(t, root.Move("lion", "dog"))
	assert.Same(t, dog, lion.Parent())
	assert.Contains(t, dog.Children(), lion)
	assert.NotContains(t, cat.Children(), lion)
	assert.Equal(t, "animal/mammal/dog/lion", lion.Path().String())
	assert.Equal(t, categories.FixtureAnimal.Size(), root.Size())
}

func TestMove_Errors(t *testing.T) {
	tests := []struct {
		setup   func(root *category.Category) error
		wantErr error
		name    string
		path    string
		dest    string
	}{
		{name: "root", path: "animal", dest: "lion", wantErr: category.ErrRootMove},
		{name: "missing source", path: "bird", dest: "dog", wantErr: category.ErrCategoryDoesNotExist},
		{name: "missing destination", path: "lion", dest: "bird", wantErr: category.ErrCategoryDoesNotExist},
		{name: "invalid destination", path: "lion", dest: "dog/", wantErr: category.ErrInvalidPath},
		{name: "below itself", path: "cat", dest: "lion", wantErr: category.ErrDuplicateName},
		{
			name:    "sibling name taken",
			setup:   func(root *category.Category) error { return root.AddTo("mammal", category.MustNew("lion")) },
			path:    "cat/lion",
			dest:    "mammal",
			wantErr: category.ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := categories.FixtureAnimal.Tree()
			if tt.setup != nil {
				require.NoError(t, tt.setup(root))
			}
			node, err := root.Get(tt.path)
			require.NoError(t, err)
			var before string
			if node != nil {
				before = node.Path().String()
			}

			require.ErrorIs(t, root.Move(tt.path, tt.dest), tt.wantErr)
			if node != nil {
				assert.Equal(t, before, node.Path().String(), "failed move leaves the node in place")
			}
		})
	}
}

func TestMove_WithinParent(t *testing.T) {
	root := categories.FixtureAnimal.Tree()
	cat := categories.MustGet(t, root, "cat")

	require.NoError(t, root.Move("cat", "mammal"))
	assert.Equal(t, "animal/mammal/cat", cat.Path().String())
	assert.Len(t, categories.MustGet(t, root, "mammal").Children(), 2)
}

func TestUpdate(t *testing.T) {
	root := categories.FixtureAnimal.Tree()
	cat := categories.MustGet(t, root, "cat")

	require.NoError(t, cat.Update(category.UpdateFields{
		Name:        strPtr("cats"),
		Description: "some description",
	}))
	assert.Equal(t, "cats", cat.Name())
	assert.Equal(t, "some description", cat.Description)

	found, err := root.Get("animal/mammal/cats/lion")
	require.NoError(t, err)
	assert.Same(t, categories.MustGet(t, root, "lion"), found)

	require.NoError(t, cat.Update(category.UpdateFields{Image: "cat.png"}))
	assert.Equal(t, "cat.png", cat.Image)
	assert.Equal(t, "some description", cat.Description, "empty fields are left alone")
	assert.Equal(t, "cats", cat.Name())
}

func TestUpdate_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		target  string
		newName string
	}{
		{name: "parent name", target: "cat", newName: "mammal", wantErr: category.ErrDuplicateName},
		{name: "root name", target: "cat", newName: "animal", wantErr: category.ErrDuplicateName},
		{name: "sibling name", target: "cat", newName: "dog", wantErr: category.ErrDuplicateName},
		{name: "part of a sibling name", target: "cat", newName: "do", wantErr: category.ErrDuplicateName},
		{name: "descendant name", target: "cat", newName: "lion", wantErr: category.ErrDuplicateName},
		{name: "empty name", target: "cat", newName: "", wantErr: category.ErrInvalidName},
		{name: "name with separator", target: "cat", newName: "big/cat", wantErr: category.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := categories.FixtureAnimal.Tree()
			node := categories.MustGet(t, root, tt.target)

			err := node.Update(category.UpdateFields{
				Name:        strPtr(tt.newName),
				Description: "changed",
				Image:       "cat.png",
			})
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.target, node.Name(), "a refused rename keeps the name")
			assert.Equal(t, "changed", node.Description, "description is applied before the name checks")
			assert.Equal(t, "cat.png", node.Image)
		})
	}
}

func TestUpdate_RenameInFoodTree(t *testing.T) {
	tree := categories.FixtureFood.Tree()
	apple := categories.MustGet(t, tree, "fruits/apple")

	require.ErrorIs(t, apple.Update(category.UpdateFields{Name: strPtr("pea")}), category.ErrDuplicateName)

	require.NoError(t, apple.Update(category.UpdateFields{Name: strPtr("quince")}))
	found, err := tree.Get("food/fruits/quince/green")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Same(t, apple, found.Parent())

	old, err := tree.Get("fruits/apple")
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestLeaves(t *testing.T) {
	tree := categories.FixtureFood.Tree()
	apple := categories.MustGet(t, tree, "fruits/apple")

	assert.Equal(t, []*category.Category{
		categories.MustGet(t, tree, "apple/red"),
		categories.MustGet(t, tree, "apple/green"),
		categories.MustGet(t, tree, "apple/yellow"),
	}, apple.Leaves())

	carrot := categories.MustGet(t, tree, "carrot")
	assert.Equal(t, []*category.Category{carrot}, carrot.Leaves())

	assert.Len(t, tree.Leaves(), 16)
	for _, leaf := range tree.Leaves() {
		assert.True(t, leaf.IsLeaf())
	}
}

func TestSize(t *testing.T) {
	tree := categories.FixtureFood.Tree()

	assert.Equal(t, 24, tree.Size())

	tests := []struct {
		path string
		want int
	}{
		{path: "food", want: 24},
		{path: "fruits/apple", want: 4},
		{path: "vegetables/carrot", want: 1},
		{path: "grape", want: 5},
	}
	for _, tt := range tests {
		size, err := tree.SizeOf(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, size, tt.path)
	}

	_, err := tree.SizeOf("cars")
	assert.ErrorIs(t, err, category.ErrCategoryDoesNotExist)
}

func TestGetByDepth(t *testing.T) {
	tree := categories.FixtureFood.Tree()

	depth0, err := tree.GetByDepth(0)
	require.NoError(t, err)
	assert.Equal(t, []*category.Category{tree}, depth0)

	depth1, err := tree.GetByDepth(1)
	require.NoError(t, err)
	assert.Equal(t, []*category.Category{
		categories.MustGet(t, tree, "fruits"),
		categories.MustGet(t, tree, "vegetables"),
	}, depth1)

	depth2, err := tree.GetByDepth(2)
	require.NoError(t, err)
	names := make([]string, 0, len(depth2))
	for _, c := range depth2 {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"apple", "grape", "pear", "pepper", "carrot", "tomato"}, names)

	depth3, err := tree.GetByDepth(3)
	require.NoError(t, err)
	assert.Len(t, depth3, 15)

	depth4, err := tree.GetByDepth(4)
	require.NoError(t, err)
	assert.Empty(t, depth4)

	_, err = tree.GetByDepth(-1)
	assert.ErrorIs(t, err, category.ErrInvalidDepth)
}

func TestInsertParent(t *testing.T) {
	t.Run("on top of a root", func(t *testing.T) {
		animal := category.MustNew("animal")
		cat := category.MustNew("cat")
		require.NoError(t, cat.InsertParent(animal))

		assert.Same(t, animal, cat.Parent())
		assert.Equal(t, []*category.Category{cat}, animal.Children())
		assert.True(t, animal.IsRoot())
	})

	t.Run("in place of the previous parent", func(t *testing.T) {
		lion := category.MustNew("lion")
		tiger := category.MustNew("tiger")
		animal := category.MustNew("animal", category.WithChildren(lion, tiger))

		cat := category.MustNew("cat")
		require.NoError(t, lion.InsertParent(cat))

		assert.Same(t, cat, lion.Parent())
		assert.Equal(t, []*category.Category{lion}, cat.Children())
		assert.Equal(t, []*category.Category{cat, tiger}, animal.Children(), "cat takes lion's slot")
		assert.Same(t, animal, cat.Parent())
	})

	t.Run("errors", func(t *testing.T) {
		root := categories.FixtureAnimal.Tree()
		lion := categories.MustGet(t, root, "lion")

		assert.ErrorIs(t, lion.InsertParent(nil), category.ErrNotACategory)
		assert.ErrorIs(t, lion.InsertParent(lion), category.ErrParentLoop)
		assert.ErrorIs(t, lion.InsertParent(category.MustNew("lion")), category.ErrSameNameParent)
		assert.ErrorIs(t, lion.InsertParent(category.MustNew("mammal")), category.ErrDuplicateName)
		assert.Equal(t, "animal/mammal/cat/lion", lion.Path().String())
	})
}

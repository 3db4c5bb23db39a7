package testutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/cattree/internal/testutil"
	"github.com/Veraticus/cattree/internal/testutil/categories"
)

func TestSetupTestDBWithTree(t *testing.T) {
	db := testutil.SetupTestDBWithTree(t, "default", categories.FixtureFood)

	root := db.MustLoadTree("default")
	assert.Equal(t, "food", root.Name())
	assert.Equal(t, 24, root.Size())
}

func TestSetupTestDBWithBuilder(t *testing.T) {
	db := testutil.SetupTestDBWithBuilder(t, "mini", categories.CategoryFood, func(b categories.Builder) categories.Builder {
		return b.WithCategory(categories.CategoryFruits).
			WithCategories("fruits", categories.CategoryApple)
	})

	root := db.MustLoadTree("mini")
	apple := categories.MustGet(t, root, "fruits/apple")
	assert.Equal(t, "food/fruits/apple", apple.Path().String())
}

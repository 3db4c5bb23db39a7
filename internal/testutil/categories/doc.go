// Package categories provides test infrastructure for building category
// trees. It offers predefined fixture trees and a fluent builder so tests
// do not have to assemble nodes by hand.
//
// # Basic Usage
//
// The simplest way to get a populated tree:
//
//	func TestMyFeature(t *testing.T) {
//		root := categories.FixtureFood.Tree()
//		apple := categories.MustGet(t, root, "fruits/apple")
//		// ...
//	}
//
// Every call to Tree returns a fresh copy, so tests may mutate it freely.
//
// # Custom Trees
//
//	root := categories.NewBuilder(t, categories.CategoryFood).
//		WithCategory(categories.CategoryFruits).
//		WithCategories("fruits", categories.CategoryApple, categories.CategoryPear).
//		WithDescription("fruits/apple", "crunchy").
//		Build()
//
// Build fails the test on the first rejected step.
//
// # Stored Trees
//
// Save builds the tree and stores it through anything with a SaveTree
// method, usually the storage returned by testutil.SetupTestDB.
package categories

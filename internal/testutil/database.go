// Package testutil provides test utilities for the cattree project.
// It offers in-memory storage with proper test isolation and seeded trees.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/cattree/internal/category"
	"github.com/Veraticus/cattree/internal/storage"
	"github.com/Veraticus/cattree/internal/testutil/categories"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a new in-memory test database. It automatically
// handles migrations and cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	// Create in-memory SQLite storage
	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	// Run migrations
	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Register cleanup
	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		t:       t,
	}
}

// SetupTestDBWithTree creates a test database holding a copy of fixture
// stored under treeName.
//
// Example:
//
//	db := testutil.SetupTestDBWithTree(t, "default", categories.FixtureFood)
func SetupTestDBWithTree(t *testing.T, treeName string, fixture categories.Fixture) *TestDB {
	t.Helper()

	db := SetupTestDB(t)
	if err := db.Storage.SaveTree(context.Background(), treeName, fixture.Tree()); err != nil {
		t.Fatalf("failed to seed tree %q: %v", treeName, err)
	}
	return db
}

// SetupTestDBWithBuilder creates a test database and stores the tree built
// by configure under treeName.
//
// Example:
//
//	db := testutil.SetupTestDBWithBuilder(t, "default", "food", func(b categories.Builder) categories.Builder {
//		return b.WithCategory(categories.CategoryFruits)
//	})
func SetupTestDBWithBuilder(t *testing.T, treeName string, root categories.CategoryName, configure func(categories.Builder) categories.Builder) *TestDB {
	t.Helper()

	db := SetupTestDB(t)
	builder := categories.NewBuilder(t, root)
	if configure != nil {
		builder = configure(builder)
	}
	builder.Save(context.Background(), db.Storage, treeName)
	return db
}

// MustLoadTree loads the tree stored under name or fails the test.
func (db *TestDB) MustLoadTree(name string) *category.Category {
	db.t.Helper()

	root, err := db.Storage.LoadTree(context.Background(), name)
	if err != nil {
		db.t.Fatalf("failed to load tree %q: %v", name, err)
	}
	return root
}

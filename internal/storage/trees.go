package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/cattree/internal/category"
	"github.com/Veraticus/cattree/internal/common"
	"github.com/Veraticus/cattree/internal/model"
)

// SaveTree stores the tree rooted at root under name, replacing whatever was
// stored under that name before. Every node gets a fresh row ID; child order
// is kept in the position column.
func (s *SQLiteStorage) SaveTree(ctx context.Context, name string, root *category.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}
	if err := validateTree(root); err != nil {
		return err
	}

	rootID := uuid.NewString()
	now := time.Now()

	err := s.withWriteTx(ctx, func(tx *sql.Tx) error {
		upsert := `
			INSERT INTO trees (name, root_id, created_at, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				root_id = excluded.root_id,
				updated_at = excluded.updated_at`
		if _, err := tx.ExecContext(ctx, upsert, name, rootID, now, now); err != nil {
			return fmt.Errorf("failed to save tree: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE tree = ?`, name); err != nil {
			return fmt.Errorf("failed to clear tree categories: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO categories (id, tree, parent_id, name, description, image, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare category insert: %w", err)
		}
		defer stmt.Close()

		return insertCategory(ctx, stmt, name, root, rootID, sql.NullString{}, 0)
	})
	if err != nil {
		return err
	}

	slog.Info("saved category tree", "tree", name, "size", root.Size())
	return nil
}

func insertCategory(ctx context.Context, stmt *sql.Stmt, tree string, node *category.Category, id string, parentID sql.NullString, position int) error {
	if _, err := stmt.ExecContext(ctx, id, tree, parentID, node.Name(), node.Description, node.Image, position); err != nil {
		return fmt.Errorf("failed to insert category %q: %w", node.Path(), err)
	}
	for i, child := range node.Children() {
		if err := insertCategory(ctx, stmt, tree, child, uuid.NewString(), sql.NullString{String: id, Valid: true}, i); err != nil {
			return err
		}
	}
	return nil
}

// categoryRow is one stored node before it is linked into a tree.
type categoryRow struct {
	id          string
	name        string
	description string
	image       string
}

// LoadTree rebuilds the tree stored under name. The tree is reassembled
// through category.Add, so stored data that breaks a naming rule is reported
// as corrupted rather than loaded.
func (s *SQLiteStorage) LoadTree(ctx context.Context, name string) (*category.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var rootID string
	err := s.db.QueryRowContext(ctx, `SELECT root_id FROM trees WHERE name = ?`, name).Scan(&rootID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: tree %q", common.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query tree: %w", err)
	}

	query := `
		SELECT id, parent_id, name, description, image
		FROM categories
		WHERE tree = ?
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	nodes := make(map[string]categoryRow)
	children := make(map[string][]string)
	for rows.Next() {
		var row categoryRow
		var parentID sql.NullString
		if err := rows.Scan(&row.id, &parentID, &row.name, &row.description, &row.image); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		nodes[row.id] = row
		if parentID.Valid {
			children[parentID.String] = append(children[parentID.String], row.id)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	visited := make(map[string]bool, len(nodes))
	root, err := buildCategory(rootID, nodes, children, visited)
	if err != nil {
		return nil, fmt.Errorf("%w: tree %q: %w", common.ErrDatabaseCorrupted, name, err)
	}
	if len(visited) != len(nodes) {
		return nil, fmt.Errorf("%w: tree %q has %d unreachable categories", common.ErrDatabaseCorrupted, name, len(nodes)-len(visited))
	}

	slog.Debug("loaded category tree", "tree", name, "size", len(nodes))
	return root, nil
}

func buildCategory(id string, nodes map[string]categoryRow, children map[string][]string, visited map[string]bool) (*category.Category, error) {
	row, ok := nodes[id]
	if !ok {
		return nil, fmt.Errorf("category %s is missing", id)
	}
	if visited[id] {
		return nil, fmt.Errorf("category %s is reachable twice", id)
	}
	visited[id] = true

	node, err := category.New(row.name,
		category.WithDescription(row.description),
		category.WithImage(row.image),
	)
	if err != nil {
		return nil, err
	}
	for _, childID := range children[id] {
		child, err := buildCategory(childID, nodes, children, visited)
		if err != nil {
			return nil, err
		}
		if err := node.Add(child); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// ListTrees returns a summary of every stored tree, ordered by name.
func (s *SQLiteStorage) ListTrees(ctx context.Context) ([]model.TreeInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT t.name, t.created_at, t.updated_at,
			COALESCE((SELECT c.name FROM categories c WHERE c.id = t.root_id), ''),
			(SELECT COUNT(*) FROM categories c WHERE c.tree = t.name)
		FROM trees t
		ORDER BY t.name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trees: %w", err)
	}
	defer rows.Close()

	var trees []model.TreeInfo
	for rows.Next() {
		var info model.TreeInfo
		if err := rows.Scan(&info.Name, &info.CreatedAt, &info.UpdatedAt, &info.RootName, &info.Size); err != nil {
			return nil, fmt.Errorf("failed to scan tree: %w", err)
		}
		trees = append(trees, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trees: %w", err)
	}

	slog.Debug("retrieved trees", "count", len(trees))
	return trees, nil
}

// DeleteTree removes the tree stored under name.
func (s *SQLiteStorage) DeleteTree(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	return s.withWriteTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE tree = ?`, name); err != nil {
			return fmt.Errorf("failed to delete tree categories: %w", err)
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM trees WHERE name = ?`, name)
		if err != nil {
			return fmt.Errorf("failed to delete tree: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check deleted rows: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: tree %q", common.ErrNotFound, name)
		}
		slog.Info("deleted category tree", "tree", name)
		return nil
	})
}

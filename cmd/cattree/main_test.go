package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cattree/internal/category"
	"github.com/Veraticus/cattree/internal/storage"
	"github.com/Veraticus/cattree/internal/testutil/categories"
)

// runCmd executes the root command against the database at dbPath.
func runCmd(t *testing.T, dbPath, stdin string, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--db", dbPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

// seedDB stores a copy of fixture under treeName in a fresh database file.
func seedDB(t *testing.T, treeName string, fixture categories.Fixture) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cattree.db")
	if fixture == nil {
		return dbPath
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.SaveTree(ctx, treeName, fixture.Tree()))
	return dbPath
}

func loadDB(t *testing.T, dbPath, treeName string) *category.Category {
	t.Helper()
	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	root, err := store.LoadTree(context.Background(), treeName)
	require.NoError(t, err)
	return root
}

func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name {
			return sub
		}
	}
	return nil
}

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{
		"init", "show", "get", "add", "delete", "move", "update",
		"size", "leaves", "depth", "import", "export", "trees", "backup", "browse", "version",
	} {
		assert.NotNil(t, findSubcommand(cmd, name), "%s subcommand should exist", name)
	}

	for _, flag := range []string{"config", "log-level", "log-format", "tree", "db"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "--%s flag should exist", flag)
	}

	tree := cmd.PersistentFlags().Lookup("tree")
	assert.Equal(t, "default", tree.DefValue)
}

func TestAddCmd_Flags(t *testing.T) {
	cmd := addCmd()

	for _, flag := range []string{"under", "wrap", "description", "image"} {
		assert.NotNil(t, cmd.Flag(flag), "--%s flag should exist", flag)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, seedDB(t, "", nil), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "cattree dev\n", out)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := runCmd(t, seedDB(t, "", nil), "", "--log-level", "loud", "version")
	assertUserError(t, err, nil)
}

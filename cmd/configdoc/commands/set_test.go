package commands_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/configdoc/pkg/configdoc"
	"github.com/macropower/configdoc/pkg/configstore"
)

func collect(t *testing.T, db, locale string) []configdoc.Entry {
	t.Helper()

	s, err := configstore.Open(db)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, s.Close())
	}()

	entries, err := s.Collect(context.Background(), locale)
	require.NoError(t, err)

	return entries
}

func TestInstallAndSetCmd(t *testing.T) {
	db := filepath.Join(t.TempDir(), "configdoc.db")

	_, _, err := execute(t, "--database", db, "config:set", "store_name", "--title", "Store name")
	require.ErrorIs(t, err, configdoc.ErrNotInstalled)

	_, stderr, err := execute(t, "--database", db, "install")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, _, err = execute(t, "--database", db, "config:set", "store_name", "--value", "My shop", "--title", "Store name")
	require.NoError(t, err)

	_, _, err = execute(t, "--database", db, "config:set", "store_name", "-l", "fr-FR", "--title", "Nom")
	require.NoError(t, err)

	_, _, err = execute(t, "--database", db, "config:set", "session_timeout", "--value", "3600")
	require.NoError(t, err)

	_, _, err = execute(t, "--database", db, "config:set", "store_name", "--description", "Shown in titles")
	require.NoError(t, err)

	assert.Equal(t, []configdoc.Entry{
		{Name: "store_name", Description: "Shown in titles"},
		{Name: "session_timeout"},
	}, collect(t, db, "en_US"))

	assert.Equal(t, []configdoc.Entry{
		{Name: "store_name", Title: "Nom"},
		{Name: "session_timeout"},
	}, collect(t, db, "fr_FR"))

	stdout, _, err := execute(t, "--database", db, "config:export", "-l", "fr_FR")
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"name":"store_name","title":"Nom","description":""},{"name":"session_timeout","title":"","description":""}]`,
		stdout,
	)
}

func TestSetCmd_Args(t *testing.T) {
	_, _, err := execute(t, "config:set")
	require.Error(t, err)
}

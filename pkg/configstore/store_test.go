package configstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/configdoc/pkg/configdoc"
	"github.com/macropower/configdoc/pkg/configstore"
)

func newInstalledStore(t *testing.T) *configstore.Store {
	t.Helper()

	s, err := configstore.Open(filepath.Join(t.TempDir(), "config.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	require.NoError(t, s.Install(context.Background()))

	return s
}

func TestInstalled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "config.db")

	s, err := configstore.Open(path)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, s.Close())
	}()

	installed, err := s.Installed(ctx)
	require.NoError(t, err)
	assert.False(t, installed)

	_, err = os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist, "checking installation should not create the database")

	require.NoError(t, s.Install(ctx))
	require.NoError(t, s.Install(ctx), "install should be idempotent")

	installed, err = s.Installed(ctx)
	require.NoError(t, err)
	assert.True(t, installed)
}

func TestInstalled_Memory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s, err := configstore.Open(configstore.MemoryPath)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, s.Close())
	}()

	installed, err := s.Installed(ctx)
	require.NoError(t, err)
	assert.False(t, installed)

	require.NoError(t, s.Install(ctx))

	installed, err = s.Installed(ctx)
	require.NoError(t, err)
	assert.True(t, installed)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newInstalledStore(t)

	require.NoError(t, s.Set(ctx, configstore.Variable{
		Name:        "store_name",
		Value:       "My shop",
		Locale:      "en_US",
		Title:       "Store name",
		Description: "The name shown in page titles",
	}))
	require.NoError(t, s.Set(ctx, configstore.Variable{
		Name:   "store_name",
		Value:  "My shop",
		Locale: "fr_FR",
		Title:  "Nom de la boutique",
	}))
	require.NoError(t, s.SetValue(ctx, "session_timeout", "3600"))
	require.NoError(t, s.Set(ctx, configstore.Variable{
		Name:   "currency_rate_update_url",
		Locale: "fr_FR",
		Title:  "URL des taux",
	}))

	tcs := map[string]struct {
		locale string
		want   []configdoc.Entry
	}{
		"en_US": {
			locale: "en_US",
			want: []configdoc.Entry{
				{Name: "store_name", Title: "Store name", Description: "The name shown in page titles"},
				{Name: "session_timeout"},
				{Name: "currency_rate_update_url"},
			},
		},
		"fr_FR": {
			locale: "fr_FR",
			want: []configdoc.Entry{
				{Name: "store_name", Title: "Nom de la boutique"},
				{Name: "session_timeout"},
				{Name: "currency_rate_update_url", Title: "URL des taux"},
			},
		},
		"missing locale": {
			locale: "de_DE",
			want: []configdoc.Entry{
				{Name: "store_name"},
				{Name: "session_timeout"},
				{Name: "currency_rate_update_url"},
			},
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := s.Collect(ctx, tc.locale)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCollect_Empty(t *testing.T) {
	t.Parallel()

	s := newInstalledStore(t)

	got, err := s.Collect(context.Background(), "en_US")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollect_NotInstalled(t *testing.T) {
	t.Parallel()

	s, err := configstore.Open(configstore.MemoryPath)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, s.Close())
	}()

	_, err = s.Collect(context.Background(), "en_US")
	require.ErrorIs(t, err, configdoc.ErrStoreAccess)
}

func TestSet_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newInstalledStore(t)

	require.NoError(t, s.Set(ctx, configstore.Variable{Name: "a", Title: "first"}))
	require.NoError(t, s.Set(ctx, configstore.Variable{Name: "b", Title: "second"}))
	require.NoError(t, s.Set(ctx, configstore.Variable{Name: "a", Title: "updated", Description: "desc"}))

	got, err := s.Collect(ctx, configdoc.DefaultLocale)
	require.NoError(t, err)
	assert.Equal(t, []configdoc.Entry{
		{Name: "a", Title: "updated", Description: "desc"},
		{Name: "b", Title: "second"},
	}, got)
}

func TestSet_InvalidVariable(t *testing.T) {
	t.Parallel()

	s := newInstalledStore(t)

	err := s.Set(context.Background(), configstore.Variable{Title: "no name"})
	require.ErrorIs(t, err, configstore.ErrInvalidVariable)

	err = s.SetValue(context.Background(), "", "x")
	require.ErrorIs(t, err, configstore.ErrInvalidVariable)
}

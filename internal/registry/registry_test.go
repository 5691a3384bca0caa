package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketscout/compete-cli/internal/model"
)

func openDrivers(t *testing.T) map[string]Registry {
	t.Helper()
	dir := t.TempDir()

	sq, err := NewSQLite(filepath.Join(dir, "competitors.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sq.Close() })

	return map[string]Registry{
		"file":   NewFile(filepath.Join(dir, "competitors.json")),
		"sqlite": sq,
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	t.Parallel()

	for name, reg := range openDrivers(t) {
		reg := reg
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			require.NoError(t, reg.Migrate(ctx))

			c := model.Competitor{
				Name:     "Acme",
				URL:      "https://acme.test",
				Twitter:  "acmecorp",
				LinkedIn: "https://linkedin.test/company/acme",
			}
			require.NoError(t, reg.Add(ctx, c))

			got, err := reg.Get(ctx, "Acme")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "https://acme.test", got.URL)
			assert.Equal(t, "acmecorp", got.Twitter)
			assert.False(t, got.CreatedAt.IsZero(), "Add stamps CreatedAt")
		})
	}
}

func TestRegistryGetMissing(t *testing.T) {
	t.Parallel()

	for name, reg := range openDrivers(t) {
		reg := reg
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			require.NoError(t, reg.Migrate(ctx))

			got, err := reg.Get(ctx, "Nobody")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestRegistryAddUpserts(t *testing.T) {
	t.Parallel()

	for name, reg := range openDrivers(t) {
		reg := reg
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			require.NoError(t, reg.Migrate(ctx))

			created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
			require.NoError(t, reg.Add(ctx, model.Competitor{
				Name: "Acme", URL: "https://old.test", CreatedAt: created,
			}))
			require.NoError(t, reg.Add(ctx, model.Competitor{
				Name: "Acme", URL: "https://new.test", CreatedAt: created,
			}))

			got, err := reg.Get(ctx, "Acme")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "https://new.test", got.URL)

			all, err := reg.List(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 1, "re-adding the same name must not duplicate")
		})
	}
}

func TestRegistryAddRejectsEmptyName(t *testing.T) {
	t.Parallel()

	for name, reg := range openDrivers(t) {
		reg := reg
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			require.NoError(t, reg.Migrate(ctx))
			assert.Error(t, reg.Add(ctx, model.Competitor{URL: "https://anon.test"}))
		})
	}
}

func TestRegistryListSorted(t *testing.T) {
	t.Parallel()

	for name, reg := range openDrivers(t) {
		reg := reg
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			require.NoError(t, reg.Migrate(ctx))

			for _, n := range []string{"Zenith", "Acme", "Midway"} {
				require.NoError(t, reg.Add(ctx, model.Competitor{Name: n}))
			}

			all, err := reg.List(ctx)
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, "Acme", all[0].Name)
			assert.Equal(t, "Midway", all[1].Name)
			assert.Equal(t, "Zenith", all[2].Name)
		})
	}
}

func TestRegistryRemove(t *testing.T) {
	t.Parallel()

	for name, reg := range openDrivers(t) {
		reg := reg
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			require.NoError(t, reg.Migrate(ctx))
			require.NoError(t, reg.Add(ctx, model.Competitor{Name: "Acme"}))

			removed, err := reg.Remove(ctx, "Acme")
			require.NoError(t, err)
			assert.True(t, removed)

			got, err := reg.Get(ctx, "Acme")
			require.NoError(t, err)
			assert.Nil(t, got)

			removed, err = reg.Remove(ctx, "Acme")
			require.NoError(t, err)
			assert.False(t, removed, "removing a missing name reports false")
		})
	}
}

func TestFileRegistryMissingFileReadsEmpty(t *testing.T) {
	t.Parallel()

	reg := NewFile(filepath.Join(t.TempDir(), "nested", "competitors.json"))
	all, err := reg.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFileRegistryCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "competitors.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	reg := NewFile(path)
	_, err := reg.List(context.Background())
	assert.Error(t, err)
}

func TestFileRegistryDocumentShape(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "competitors.json")
	reg := NewFile(path)
	ctx := context.Background()
	require.NoError(t, reg.Add(ctx, model.Competitor{Name: "Acme", URL: "https://acme.test"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"competitors"`)
	assert.Contains(t, string(data), `"Acme"`)
}

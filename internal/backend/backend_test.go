package backend

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offjournal/internal/config"
)

func testConfig(t *testing.T, index bool) *config.Config {
	t.Helper()
	return &config.Config{DataDir: t.TempDir(), Index: index}
}

func TestOpen_WithIndex(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, true)

	b, err := Open(ctx, cfg, nil)
	require.NoError(t, err)
	defer b.Close()

	require.NotNil(t, b.Index)
	assert.FileExists(t, cfg.IndexPath())

	entry, err := b.Entries.Create("Lighthouse walk")
	require.NoError(t, err)

	// written behind the index's back
	path, err := b.Entries.Path(entry.ID)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("saw seals near the pier"), 0644))

	require.NoError(t, b.SyncIndex(ctx))

	results, err := b.Index.Search("seals")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entry.ID, results[0].ID)
}

func TestOpen_IndexesExistingEntries(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, true)

	first, err := Open(ctx, cfg, nil)
	require.NoError(t, err)
	_, err = first.Entries.Create("Rainy Sunday")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(ctx, cfg, nil)
	require.NoError(t, err)
	defer second.Close()

	results, err := second.Index.Search("rainy")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestOpen_WithoutIndex(t *testing.T) {
	b, err := Open(context.Background(), testConfig(t, false), nil)
	require.NoError(t, err)
	defer b.Close()

	assert.Nil(t, b.Index)
	assert.Error(t, b.SyncIndex(context.Background()))
	assert.NotNil(t, b.Server)
}

//go:build unit

package sqlitecache_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fieldservice/internal/infra/sqlitecache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "assigned_at.db")
	id := uuid.New()
	first := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	c, err := sqlitecache.Open(path)
	require.NoError(t, err)

	stored, created, err := c.PutIfAbsent(ctx, id, first)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, stored.Equal(first))
	require.NoError(t, c.Close())

	reopened, err := sqlitecache.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	stored, created, err = reopened.PutIfAbsent(ctx, id, first.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, created, "existing time must win")
	assert.True(t, stored.Equal(first))

	require.NoError(t, reopened.Delete(ctx, id))
	_, ok, err := reopened.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_InMemory(t *testing.T) {
	ctx := context.Background()
	c, err := sqlitecache.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	_, ok, err := c.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Delete(ctx, uuid.New()))
}

package container

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_EmptyRedisHostLeavesCacheNil(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", filepath.Join(t.TempDir(), "catalog.db"))
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("REDIS_HOST", "")

	c, err := NewContainer(context.Background())
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	assert.Nil(t, c.Redis)
	assert.Nil(t, c.Cache)
}

func TestOpenScope_CloseReleasesSession(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", filepath.Join(t.TempDir(), "catalog.db"))
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("REDIS_HOST", "")

	c, err := NewContainer(context.Background())
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	scope, err := c.OpenScope(context.Background())
	require.NoError(t, err)

	require.NoError(t, scope.Close())
	assert.True(t, scope.Session.Released())
	assert.NoError(t, scope.Close())
}

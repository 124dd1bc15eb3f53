package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rondas/internal/config"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("fs", func(t *testing.T) {
		store, err := Open(ctx, config.StorageConfig{BlobDriver: "fs", FSRoot: t.TempDir()})
		require.NoError(t, err)
		assert.Equal(t, DriverFS, store.Driver())
	})

	t.Run("memory", func(t *testing.T) {
		store, err := Open(ctx, config.StorageConfig{BlobDriver: "memory"})
		require.NoError(t, err)
		assert.Equal(t, DriverMemory, store.Driver())
	})

	t.Run("s3 requires bucket", func(t *testing.T) {
		_, err := Open(ctx, config.StorageConfig{BlobDriver: "s3"})
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Open(ctx, config.StorageConfig{BlobDriver: "gopher"})
		assert.Error(t, err)
	})
}

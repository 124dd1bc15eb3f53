package archive

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rondas/internal/blob"
)

func newTestArchiver(store blob.Store) *Archiver {
	a := New(store)
	a.now = func() time.Time {
		return time.Date(2026, 1, 13, 8, 45, 12, 0, time.UTC)
	}
	return a
}

func TestArchiver_Archive(t *testing.T) {
	ctx := context.Background()

	t.Run("keys are namespaced and order preserving", func(t *testing.T) {
		store := blob.NewMemory()
		a := newTestArchiver(store)

		paths, err := a.Archive(ctx, "operacao__cava", []Photo{
			{Filename: "Portão Danificado.JPG", ContentType: "image/jpeg", Data: strings.NewReader("p1")},
			{Filename: "detalhe.png", ContentType: "image/png", Data: strings.NewReader("p2")},
		})
		require.NoError(t, err)
		require.Len(t, paths, 2)

		assert.Equal(t, "rondas/2026-01-13/operacao__cava/operacao__cava_20260113_084512_port_o_danificado.jpg", paths[0])
		assert.Equal(t, "rondas/2026-01-13/operacao__cava/operacao__cava_20260113_084512_detalhe.png", paths[1])

		data, ok := store.Get(paths[0])
		require.True(t, ok)
		assert.Equal(t, "p1", string(data))
	})

	t.Run("empty input performs no writes", func(t *testing.T) {
		store := blob.NewMemory()
		a := newTestArchiver(store)

		paths, err := a.Archive(ctx, "adm__portaria", nil)
		require.NoError(t, err)
		assert.Empty(t, paths)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("rejects non image content types before any write", func(t *testing.T) {
		store := blob.NewMemory()
		a := newTestArchiver(store)

		_, err := a.Archive(ctx, "adm__portaria", []Photo{
			{Filename: "ok.jpg", ContentType: "image/jpeg", Data: strings.NewReader("x")},
			{Filename: "nota.pdf", ContentType: "application/pdf", Data: strings.NewReader("y")},
		})
		assert.ErrorIs(t, err, ErrUnsupportedMediaType)
		assert.Equal(t, 0, store.Len(), "validation failures must not leave blobs behind")
	})

	t.Run("write failure aborts the whole archive", func(t *testing.T) {
		store := blob.NewMemory()
		a := newTestArchiver(store)

		// Same filename twice collides on the create-only key.
		_, err := a.Archive(ctx, "adm__cozinha", []Photo{
			{Filename: "foto.jpg", ContentType: "image/jpeg", Data: strings.NewReader("a")},
			{Filename: "foto.jpg", ContentType: "image/jpeg", Data: strings.NewReader("b")},
		})
		assert.ErrorIs(t, err, blob.ErrExists)
	})
}

// Package archive turns uploaded photo blobs into durable, namespaced blob
// store writes and hands back the stored keys in upload order.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"rondas/internal/blob"
	"rondas/internal/util"
)

var ErrUnsupportedMediaType = errors.New("unsupported media type")

// allowedContentTypes restricts uploads to the photo formats field devices
// produce. The permissive octet-stream fallback is deliberately rejected.
var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

// Photo is one uploaded blob before archiving. Only the derived storage key
// survives; the bytes are never kept outside the blob store.
type Photo struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

type Archiver struct {
	store blob.Store
	now   func() time.Time
}

func New(store blob.Store) *Archiver {
	return &Archiver{store: store, now: time.Now}
}

// Archive persists each photo under rondas/<day>/<rondaID>/ and returns the
// stored keys, index-aligned with the input. All-or-nothing: the first failed
// write aborts the whole operation so a half-archived round is never
// recorded. An empty input performs no writes.
func (a *Archiver) Archive(ctx context.Context, rondaID string, photos []Photo) ([]string, error) {
	if len(photos) == 0 {
		return nil, nil
	}

	for i, p := range photos {
		if _, ok := allowedContentTypes[p.ContentType]; !ok {
			return nil, fmt.Errorf("%w: foto %d (%s)", ErrUnsupportedMediaType, i+1, p.ContentType)
		}
	}

	now := a.now()
	ts := now.Format("20060102_150405")
	day := now.Format("2006-01-02")

	paths := make([]string, 0, len(photos))
	for _, p := range photos {
		filename := util.SafeFilename(fmt.Sprintf("%s_%s_%s", rondaID, ts, p.Filename))
		key := fmt.Sprintf("rondas/%s/%s/%s", day, rondaID, filename)

		ref, err := a.store.Put(ctx, key, p.Data, blob.PutOptions{ContentType: p.ContentType})
		if err != nil {
			return nil, fmt.Errorf("store foto %s: %w", filename, err)
		}
		paths = append(paths, ref)
	}

	return paths, nil
}

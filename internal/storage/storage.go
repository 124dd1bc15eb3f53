// Package storage bundles the configured record and blob backends into one
// process-lifetime resource: opened once at startup, shared by every request,
// closed at shutdown.
package storage

import (
	"context"
	"fmt"

	"rondas/internal/blob"
	"rondas/internal/config"
	"rondas/internal/repository"
)

type Backend struct {
	Records repository.RecordStore
	Blobs   blob.Store
}

func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	records, err := repository.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	blobs, err := blob.Open(ctx, cfg.Storage)
	if err != nil {
		records.Close()
		return nil, fmt.Errorf("open blob store: %w", err)
	}

	return &Backend{Records: records, Blobs: blobs}, nil
}

func (b *Backend) Close() error {
	return b.Records.Close()
}

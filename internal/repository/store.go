package repository

import (
	"context"
	"errors"
	"fmt"

	"rondas/internal/config"
	"rondas/internal/domain"
)

var ErrInvalidStatus = errors.New("invalid ronda status")

// RecordStore is the append-only round log. No update, no delete, no dedup;
// each Append is one independent single-row write with whatever atomicity the
// backing medium natively provides.
type RecordStore interface {
	// Append persists the round, assigning its id and confirming the
	// server-side timestamp on the passed record.
	Append(ctx context.Context, ronda *domain.Ronda) error
	Close() error
}

// Open selects a record store from the configured driver.
func Open(cfg *config.Config) (RecordStore, error) {
	switch cfg.Storage.RecordDriver {
	case "postgres":
		db, err := NewDatabase(cfg)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(db), nil
	case "sqlite":
		return NewSQLiteStore(cfg.Storage.SQLitePath)
	case "csv":
		return NewCSVStore(cfg.Storage.CSVPath)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown record driver %q", cfg.Storage.RecordDriver)
	}
}

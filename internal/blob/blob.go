// Package blob provides the photo storage backends. All drivers share one
// contract: a create-only Put that durably stores the bytes under a key and
// returns that key as the stable reference persisted with the round record.
// References are internal keys, never public links; photos stay private.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"rondas/internal/config"
)

type Driver string

const (
	DriverFS     Driver = "fs"
	DriverS3     Driver = "s3"
	DriverMemory Driver = "memory"
)

var (
	// ErrExists indicates a create-only Put hit an existing key.
	ErrExists = errors.New("blob already exists")
	// ErrUnsupported indicates an operation the driver cannot provide.
	ErrUnsupported = errors.New("unsupported operation")
)

type PutOptions struct {
	ContentType string
}

// Store is the capability surface the photo archiver depends on.
type Store interface {
	// Put durably writes the blob under key and returns the stable
	// reference for it. Writing to an existing key fails with ErrExists.
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (string, error)

	// PresignURL mints a short-lived fetch URL for operational inspection.
	// Drivers without a signing facility return ErrUnsupported; persisted
	// records never contain these URLs.
	PresignURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	Driver() Driver
}

// Open selects a blob store from the configured driver.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch Driver(cfg.BlobDriver) {
	case DriverFS:
		return NewFilesystem(cfg.FSRoot)
	case DriverS3:
		return NewS3(ctx, cfg.S3)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %q", cfg.BlobDriver)
	}
}
